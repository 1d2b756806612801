package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel represents the comments table. A row is one of:
//   - a content comment (content_id set, is_question false)
//   - a standalone question (is_question true, parent_id null)
//   - a reply (parent_id set)
type CommentModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ContentID  *uuid.UUID `gorm:"type:uuid;index" json:"content_id,omitempty"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	IsQuestion bool       `gorm:"not null;default:false;index" json:"is_question"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
