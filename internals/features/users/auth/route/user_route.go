package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/users/auth/controller"
	"fizika_backend/internals/middlewares"
	authMiddleware "fizika_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r := app.Group("/api/auth")
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/refresh-token", ctrl.RefreshToken)
	r.Post("/logout", ctrl.Logout)
	r.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
