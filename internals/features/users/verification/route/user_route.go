package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/users/verification/controller"
	"fizika_backend/internals/middlewares"
)

func VerificationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVerificationController(db)

	r := router.Group("/verification")
	r.Post("/request", middlewares.SMSRateLimiter(), ctrl.RequestCode)
	r.Post("/verify", ctrl.VerifyCode)
}
