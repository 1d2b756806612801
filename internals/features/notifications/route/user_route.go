package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/notifications/controller"
)

func NotificationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	r := router.Group("/notifications")
	r.Get("/", ctrl.GetMyNotifications)
	r.Patch("/:id/read", ctrl.MarkAsRead)
	r.Patch("/read-all", ctrl.MarkAllAsRead)
}
