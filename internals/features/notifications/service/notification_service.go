package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fizika_backend/internals/features/notifications/model"
)

// Notify inserts one notification for a single user. Extra is marshalled
// into the jsonb data column (nil is fine).
func Notify(db *gorm.DB, userID uuid.UUID, notifType, title, message string, extra map[string]any) error {
	var data datatypes.JSON
	if len(extra) > 0 {
		raw, err := json.Marshal(extra)
		if err != nil {
			return err
		}
		data = datatypes.JSON(raw)
	}
	return db.Create(&model.NotificationModel{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Data:    data,
	}).Error
}

// NotifyMany fans one notification out to a list of users in a single insert.
func NotifyMany(db *gorm.DB, userIDs []uuid.UUID, notifType, title, message string, extra map[string]any) error {
	if len(userIDs) == 0 {
		return nil
	}
	var data datatypes.JSON
	if len(extra) > 0 {
		raw, err := json.Marshal(extra)
		if err != nil {
			return err
		}
		data = datatypes.JSON(raw)
	}
	rows := make([]model.NotificationModel, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, model.NotificationModel{
			UserID:  id,
			Type:    notifType,
			Title:   title,
			Message: message,
			Data:    data,
		})
	}
	return db.CreateInBatches(rows, 200).Error
}

// NotifyStudents fans out to every user except the excluded one (the author).
// Failures only log: notifications must never fail the main write.
func NotifyStudents(db *gorm.DB, exclude uuid.UUID, notifType, title, message string, extra map[string]any) {
	var ids []uuid.UUID
	if err := db.Table("users").
		Where("is_active = true AND id <> ?", exclude).
		Pluck("id", &ids).Error; err != nil {
		log.Printf("[ERROR] notification fan-out failed to list users: %v", err)
		return
	}
	if err := NotifyMany(db, ids, notifType, title, message, extra); err != nil {
		log.Printf("[ERROR] notification fan-out failed: %v", err)
	}
}
