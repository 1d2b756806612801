package dto

import (
	"time"

	"fizika_backend/internals/features/payments/model"
)

type SubmitPaymentRequest struct {
	Amount               int     `json:"amount" form:"amount" validate:"omitempty,min=1"`
	Method               string  `json:"method" form:"method" validate:"required,oneof=ccp golden_card"`
	MonthPaidFor         string  `json:"month_paid_for" form:"month_paid_for" validate:"required,len=7"`
	TransactionReference *string `json:"transaction_reference" form:"transaction_reference" validate:"omitempty,max=100"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type PaymentDTO struct {
	ID                   string     `json:"id"`
	UserID               string     `json:"user_id"`
	StudentName          string     `json:"student_name,omitempty"`
	Amount               int        `json:"amount"`
	Method               string     `json:"method"`
	MonthPaidFor         string     `json:"month_paid_for"`
	TransactionReference *string    `json:"transaction_reference,omitempty"`
	ReceiptURL           *string    `json:"receipt_url,omitempty"`
	Status               string     `json:"status"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason      *string    `json:"rejection_reason,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func ToPaymentDTO(m model.PaymentModel, studentName string) PaymentDTO {
	return PaymentDTO{
		ID:                   m.ID.String(),
		UserID:               m.UserID.String(),
		StudentName:          studentName,
		Amount:               m.Amount,
		Method:               m.Method,
		MonthPaidFor:         m.MonthPaidFor,
		TransactionReference: m.TransactionReference,
		ReceiptURL:           m.ReceiptURL,
		Status:               m.Status,
		ReviewedAt:           m.ReviewedAt,
		RejectionReason:      m.RejectionReason,
		CreatedAt:            m.CreatedAt,
	}
}
