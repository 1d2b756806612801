package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fizika_backend/internals/configs"
	authModel "fizika_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// SignAccessToken issues the short-lived access JWT with the role claim baked in.
func SignAccessToken(userID uuid.UUID, fullName, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"full_name": fullName,
		"role":      role,
		"exp":       time.Now().UTC().Add(AccessTTL).Unix(),
		"iat":       time.Now().UTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// SignRefreshToken issues the long-lived refresh JWT.
func SignRefreshToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().UTC().Add(RefreshTTL).Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ComputeRefreshHash HMACs the refresh token so only the hash hits the DB.
func ComputeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func StoreRefreshToken(db *gorm.DB, userID uuid.UUID, token string) error {
	return db.Create(&authModel.RefreshTokenModel{
		UserID:    userID,
		TokenHash: ComputeRefreshHash(token),
		ExpiresAt: time.Now().UTC().Add(RefreshTTL),
	}).Error
}

func DeleteRefreshToken(db *gorm.DB, token string) error {
	return db.Where("token_hash = ?", ComputeRefreshHash(token)).
		Delete(&authModel.RefreshTokenModel{}).Error
}

func RefreshTokenExists(db *gorm.DB, token string) (bool, error) {
	var count int64
	err := db.Model(&authModel.RefreshTokenModel{}).
		Where("token_hash = ? AND expires_at > NOW()", ComputeRefreshHash(token)).
		Count(&count).Error
	return count > 0, err
}

// BlacklistToken marks an access token as unusable until its natural expiry.
func BlacklistToken(db *gorm.DB, token string) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(AccessTTL),
	}).Error
}

// ParseRefreshToken validates a refresh JWT and returns its subject.
func ParseRefreshToken(token string) (uuid.UUID, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, jwt.ErrTokenMalformed
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}
