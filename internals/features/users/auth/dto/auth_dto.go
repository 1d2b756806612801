package dto

// ====================
// Request DTO
// ====================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=9,max=15"`
	Level    string `json:"level,omitempty" validate:"omitempty,oneof=second_year baccalaureate"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ====================
// Response DTO
// ====================

type AuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}
