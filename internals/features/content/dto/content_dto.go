package dto

import (
	"time"

	"fizika_backend/internals/features/content/model"
)

type CreateContentRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	ContentType string  `json:"content_type" form:"content_type" validate:"required,oneof=lesson summary exercise"`
	Level       string  `json:"level" form:"level" validate:"required,oneof=second_year baccalaureate"`
	Difficulty  int     `json:"difficulty" form:"difficulty" validate:"omitempty,min=1,max=5"`
}

type UpdateContentRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=3,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=2000"`
	ContentType *string `json:"content_type" form:"content_type" validate:"omitempty,oneof=lesson summary exercise"`
	Level       *string `json:"level" form:"level" validate:"omitempty,oneof=second_year baccalaureate"`
	Difficulty  *int    `json:"difficulty" form:"difficulty" validate:"omitempty,min=1,max=5"`
}

type ContentDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	ContentType string    `json:"content_type"`
	Level       string    `json:"level"`
	Difficulty  int       `json:"difficulty"`
	FileURL     *string   `json:"file_url,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToContentDTO(m model.ContentModel) ContentDTO {
	return ContentDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		ContentType: m.ContentType,
		Level:       m.Level,
		Difficulty:  m.Difficulty,
		FileURL:     m.FileURL,
		CreatedBy:   m.CreatedBy.String(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
