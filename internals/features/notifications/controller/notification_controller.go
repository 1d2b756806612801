package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/notifications/dto"
	"fizika_backend/internals/features/notifications/model"
	helper "fizika_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ======================
// List my notifications (latest 20)
// ======================
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var rows []model.NotificationModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve notifications")
	}

	var unread int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unread).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count unread")
	}

	result := make([]dto.NotificationDTO, 0, len(rows))
	for _, n := range rows {
		result = append(result, dto.ToNotificationDTO(n))
	}

	return helper.Success(c, "Notifications retrieved", fiber.Map{
		"notifications": result,
		"unread_count":  unread,
	})
}

// ======================
// Mark one as read
// ======================
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark as read")
	}
	return helper.Success(c, "Notification marked as read", nil)
}

// ======================
// Mark all as read
// ======================
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark all as read")
	}
	return helper.Success(c, "All notifications marked as read", nil)
}
