package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/users/profile/controller"
)

func ProfileUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	r := router.Group("/profile")
	r.Get("/", ctrl.GetMyProfile)
	r.Put("/", ctrl.UpdateMyProfile)
}
