package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fizika_backend/internals/features/users/verification/model"
)

const (
	codeTTL     = 10 * time.Minute
	maxAttempts = 5
)

// GenerateCode creates a 6-digit numeric code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IssueCode stores a fresh verification code for a user, replacing any
// previous pending code for the same user.
func IssueCode(db *gorm.DB, userID uuid.UUID, phone string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&model.VerificationCodeModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.VerificationCodeModel{
			UserID:    userID,
			Phone:     NormalizePhone(phone),
			Code:      code,
			ExpiresAt: time.Now().UTC().Add(codeTTL),
		}).Error
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// CheckCode verifies a submitted code. Wrong submissions burn an attempt;
// the row is removed on success or when attempts run out.
func CheckCode(db *gorm.DB, userID uuid.UUID, code string) (bool, error) {
	var vc model.VerificationCodeModel
	if err := db.First(&vc, "user_id = ? AND expires_at > NOW()", userID).Error; err != nil {
		return false, err
	}

	if vc.Code != code {
		vc.Attempts++
		if vc.Attempts >= maxAttempts {
			_ = db.Delete(&vc).Error
		} else {
			_ = db.Save(&vc).Error
		}
		return false, nil
	}

	if err := db.Delete(&vc).Error; err != nil {
		return false, err
	}
	return true, nil
}
