package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authModel "fizika_backend/internals/features/users/auth/model"
	verificationModel "fizika_backend/internals/features/users/verification/model"
)

// StartCleanupScheduler periodically removes expired blacklist entries,
// refresh tokens and verification codes.
func StartCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Sweeping expired auth rows...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			if err := db.Where("expired_at < ?", deleteBefore).
				Delete(&authModel.TokenBlacklistModel{}).Error; err != nil {
				log.Printf("[CLEANUP ERROR] blacklist: %v", err)
			}
			if err := db.Where("expires_at < NOW()").
				Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
				log.Printf("[CLEANUP ERROR] refresh tokens: %v", err)
			}
			if err := db.Where("expires_at < NOW()").
				Delete(&verificationModel.VerificationCodeModel{}).Error; err != nil {
				log.Printf("[CLEANUP ERROR] verification codes: %v", err)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
