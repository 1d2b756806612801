package route

import (
	"github.com/gofiber/fiber/v2"

	"fizika_backend/internals/features/presence/controller"
	"fizika_backend/internals/features/presence/service"
)

func PresenceUserRoutes(router fiber.Router, hub *service.Hub) {
	ctrl := controller.NewPresenceController(hub)

	r := router.Group("/presence")
	r.Get("/online", ctrl.GetOnlineUsers)
	r.Use("/ws", ctrl.UpgradeGuard)
	r.Get("/ws", ctrl.Channel())
}
