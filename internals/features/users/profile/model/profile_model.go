package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel represents the profiles table
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	FullName      string    `gorm:"size:100;not null" json:"full_name"`
	Phone         *string   `gorm:"size:20" json:"phone,omitempty"`
	Level         *string   `gorm:"type:varchar(20)" json:"level,omitempty"`
	PhoneVerified bool      `gorm:"not null;default:false" json:"phone_verified"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
