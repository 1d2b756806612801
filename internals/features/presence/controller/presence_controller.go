package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"fizika_backend/internals/features/presence/service"
	helper "fizika_backend/internals/helpers"
)

type PresenceController struct {
	Hub *service.Hub
}

func NewPresenceController(hub *service.Hub) *PresenceController {
	return &PresenceController{Hub: hub}
}

// ======================
// Upgrade guard: auth locals must survive into the websocket handler
// ======================
func (ctrl *PresenceController) UpgradeGuard(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	c.Locals("presence_user_id", userID.String())
	if name, ok := c.Locals("full_name").(string); ok {
		c.Locals("presence_user_name", name)
	}
	return c.Next()
}

// ======================
// Websocket channel: broadcasts membership snapshots on join/leave
// ======================
func (ctrl *PresenceController) Channel() fiber.Handler {
	return websocket.New(func(ws *websocket.Conn) {
		idStr, _ := ws.Locals("presence_user_id").(string)
		userID, err := uuid.Parse(idStr)
		if err != nil {
			ws.Close()
			return
		}
		fullName, _ := ws.Locals("presence_user_name").(string)

		snapshots, leave := ctrl.Hub.Join(userID, fullName)
		defer leave()

		// writer: push snapshots until the channel closes
		done := make(chan struct{})
		go func() {
			defer close(done)
			for snap := range snapshots {
				if err := ws.WriteJSON(snap); err != nil {
					return
				}
			}
		}()

		// reader: clients send nothing meaningful, this just detects closes
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}
		ws.Close()
		<-done
		log.Printf("[INFO] presence disconnect user=%s", userID)
	})
}

// ======================
// REST: currently online users
// ======================
func (ctrl *PresenceController) GetOnlineUsers(c *fiber.Ctx) error {
	members := ctrl.Hub.Members()
	return helper.Success(c, "Online users retrieved", fiber.Map{
		"members": members,
		"count":   len(members),
	})
}
