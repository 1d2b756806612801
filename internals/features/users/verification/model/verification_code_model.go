package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCodeModel represents the phone_verification_codes table
type VerificationCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	Attempts  int       `gorm:"not null;default:0" json:"attempts"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (VerificationCodeModel) TableName() string {
	return "phone_verification_codes"
}
