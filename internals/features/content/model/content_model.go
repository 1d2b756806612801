package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentModel represents the content table (lessons, summaries, exercises)
type ContentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ContentType string    `gorm:"type:varchar(20);not null;index" json:"content_type"`
	Level       string    `gorm:"type:varchar(30);not null;index" json:"level"`
	Difficulty  int       `gorm:"not null;default:1" json:"difficulty"`
	FileURL     *string   `gorm:"type:text" json:"file_url,omitempty"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ContentModel) TableName() string {
	return "content"
}
