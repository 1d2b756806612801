package dto

import (
	"time"

	"fizika_backend/internals/features/comments/model"
	"fizika_backend/internals/features/comments/service"
)

type CreateCommentRequest struct {
	ContentID  *string `json:"content_id" validate:"omitempty,uuid"`
	ParentID   *string `json:"parent_id" validate:"omitempty,uuid"`
	Message    string  `json:"message" validate:"required,min=1,max=1000"`
	IsQuestion bool    `json:"is_question"`
}

type CommentDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	ContentID  *string   `json:"content_id,omitempty"`
	ParentID   *string   `json:"parent_id,omitempty"`
	Message    string    `json:"message"`
	IsQuestion bool      `json:"is_question"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReplyDTO struct {
	CommentDTO
	IsTeacher bool `json:"is_teacher"`
}

type QuestionThreadDTO struct {
	CommentDTO
	IsAnswered bool       `json:"is_answered"`
	Replies    []ReplyDTO `json:"replies"`
}

func ToCommentDTO(m model.CommentModel, authorName string) CommentDTO {
	d := CommentDTO{
		ID:         m.ID.String(),
		UserID:     m.UserID.String(),
		AuthorName: authorName,
		Message:    m.Message,
		IsQuestion: m.IsQuestion,
		CreatedAt:  m.CreatedAt,
	}
	if m.ContentID != nil {
		s := m.ContentID.String()
		d.ContentID = &s
	}
	if m.ParentID != nil {
		s := m.ParentID.String()
		d.ParentID = &s
	}
	return d
}

func ToQuestionThreadDTO(q service.ClassifiedQuestion, names map[string]string) QuestionThreadDTO {
	out := QuestionThreadDTO{
		CommentDTO: ToCommentDTO(q.Question, names[q.Question.UserID.String()]),
		IsAnswered: q.IsAnswered,
		Replies:    make([]ReplyDTO, 0, len(q.Replies)),
	}
	for _, r := range q.Replies {
		out.Replies = append(out.Replies, ReplyDTO{
			CommentDTO: ToCommentDTO(r.Comment, names[r.Comment.UserID.String()]),
			IsTeacher:  r.IsTeacher,
		})
	}
	return out
}
