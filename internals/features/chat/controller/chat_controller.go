package controller

import (
	"bufio"
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"fizika_backend/internals/features/chat/dto"
	"fizika_backend/internals/features/chat/model"
	"fizika_backend/internals/features/chat/service"
	helper "fizika_backend/internals/helpers"
)

type ChatController struct {
	DB      *gorm.DB
	Gateway *service.GatewayClient
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db, Gateway: service.NewGatewayClient()}
}

var validate = validator.New()

// ======================
// Streaming chat: proxies the gateway stream through as SSE while the
// decoder + builder assemble the assistant reply server-side. The full
// exchange is persisted once the stream ends.
// ======================
func (ctrl *ChatController) Stream(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// advisory errors must arrive before any stream bytes
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	upstream, err := ctrl.Gateway.Stream(ctx, req.Messages)
	if err != nil {
		cancel()
		switch {
		case errors.Is(err, service.ErrRateLimited):
			return helper.Error(c, fiber.StatusTooManyRequests, err.Error())
		case errors.Is(err, service.ErrCreditsExhausted):
			return helper.Error(c, fiber.StatusPaymentRequired, err.Error())
		default:
			log.Println("[ERROR] AI gateway:", err)
			return helper.Error(c, fiber.StatusInternalServerError, service.ErrGatewayFailure.Error())
		}
	}

	question := req.Messages[len(req.Messages)-1].Content

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	db := ctrl.DB
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer upstream.Close()

		decoder := &service.StreamDecoder{}
		builder := &service.TranscriptBuilder{}

		buf := make([]byte, 4096)
		for {
			n, readErr := upstream.Read(buf)
			if n > 0 {
				chunk := buf[:n]
				// forward raw bytes downstream untouched
				if _, err := w.Write(chunk); err != nil {
					break
				}
				if err := w.Flush(); err != nil {
					break
				}
				for _, payload := range decoder.Feed(chunk) {
					builder.Apply(payload)
				}
			}
			if readErr != nil || decoder.Done() {
				break
			}
		}

		persistExchange(db, userID, question, builder.AssistantText())
	}))
	return nil
}

func persistExchange(db *gorm.DB, userID uuid.UUID, question, answer string) {
	if answer == "" {
		return
	}
	if err := db.Create(&model.ChatLogModel{
		UserID:   userID,
		Question: question,
		Answer:   answer,
	}).Error; err != nil {
		log.Println("[ERROR] failed to persist chat log:", err)
	}
}

// ======================
// Recent chat history for the current user
// ======================
func (ctrl *ChatController) GetHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var rows []model.ChatLogModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(30).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve chat history")
	}
	return helper.Success(c, "Chat history retrieved", rows)
}
