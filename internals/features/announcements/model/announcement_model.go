package model

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementModel represents the announcements table
type AnnouncementModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Level     *string   `gorm:"type:varchar(30);index" json:"level,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
