package dto

type RequestCodeRequest struct {
	Phone string `json:"phone" validate:"required,min=9,max=15"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}
