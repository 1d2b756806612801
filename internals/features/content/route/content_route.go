package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/content/controller"
)

// Public read endpoints
func ContentPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContentController(db)

	r := router.Group("/content")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
}

// Teacher-only write endpoints
func ContentTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContentController(db)

	r := router.Group("/content")
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
