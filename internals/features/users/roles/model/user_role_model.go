package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel represents the user_roles table
type UserRoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
