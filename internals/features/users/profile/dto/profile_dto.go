package dto

import (
	"time"

	"fizika_backend/internals/features/users/profile/model"
)

// ====================
// Response DTO
// ====================

type ProfileDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	FullName      string    `json:"full_name"`
	Phone         *string   `json:"phone,omitempty"`
	Level         *string   `json:"level,omitempty"`
	PhoneVerified bool      `json:"phone_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ====================
// Request DTO
// ====================

type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=9,max=15"`
	Level    *string `json:"level,omitempty" validate:"omitempty,oneof=second_year baccalaureate"`
}

// ====================
// Converter
// ====================

func ToProfileDTO(p model.ProfileModel) ProfileDTO {
	return ProfileDTO{
		ID:            p.ID.String(),
		UserID:        p.UserID.String(),
		FullName:      p.FullName,
		Phone:         p.Phone,
		Level:         p.Level,
		PhoneVerified: p.PhoneVerified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
