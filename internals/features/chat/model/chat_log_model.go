package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatLogModel stores one completed assistant exchange
type ChatLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatLogModel) TableName() string {
	return "chat_logs"
}
