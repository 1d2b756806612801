package dto

import "time"

type GrantTeacherRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TeacherDTO struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	GrantedAt time.Time `json:"granted_at"`
}
