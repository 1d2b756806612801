package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/chat/controller"
	"fizika_backend/internals/middlewares"
)

func ChatUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChatController(db)

	r := router.Group("/chat")
	r.Post("/", middlewares.ChatRateLimiter(), ctrl.Stream)
	r.Get("/history", ctrl.GetHistory)
}
