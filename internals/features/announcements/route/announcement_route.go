package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/announcements/controller"
)

func AnnouncementPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	r := router.Group("/announcements")
	r.Get("/", ctrl.GetActive)
}

func AnnouncementTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	r := router.Group("/announcements")
	r.Get("/", ctrl.GetAll)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
