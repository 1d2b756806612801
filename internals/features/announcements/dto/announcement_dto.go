package dto

import (
	"time"

	"fizika_backend/internals/features/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title   string  `json:"title" validate:"required,min=3,max=200"`
	Content string  `json:"content" validate:"required,max=4000"`
	Level   *string `json:"level" validate:"omitempty,oneof=second_year baccalaureate"`
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=3,max=200"`
	Content  *string `json:"content" validate:"omitempty,max=4000"`
	Level    *string `json:"level" validate:"omitempty,oneof=second_year baccalaureate"`
	IsActive *bool   `json:"is_active"`
}

type AnnouncementDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Level     *string   `json:"level,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ToAnnouncementDTO(m model.AnnouncementModel) AnnouncementDTO {
	return AnnouncementDTO{
		ID:        m.ID.String(),
		Title:     m.Title,
		Content:   m.Content,
		Level:     m.Level,
		IsActive:  m.IsActive,
		CreatedBy: m.CreatedBy.String(),
		CreatedAt: m.CreatedAt,
	}
}
