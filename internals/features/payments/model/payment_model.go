package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel represents the payments table: manual monthly subscription
// confirmations (CCP / golden card transfers reviewed by the teacher).
type PaymentModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount               int        `gorm:"not null" json:"amount"`
	Method               string     `gorm:"type:varchar(20);not null" json:"method"`
	MonthPaidFor         string     `gorm:"type:varchar(7);not null" json:"month_paid_for"`
	TransactionReference *string    `gorm:"size:100" json:"transaction_reference,omitempty"`
	ReceiptURL           *string    `gorm:"type:text" json:"receipt_url,omitempty"`
	Status               string     `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	ReviewedBy           *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason      *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
