package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	"fizika_backend/internals/features/users/auth/dto"
	profileModel "fizika_backend/internals/features/users/profile/model"
	roleService "fizika_backend/internals/features/users/roles/service"
	userModel "fizika_backend/internals/features/users/user/model"
	helper "fizika_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var existing userModel.UserModel
	if err := db.First(&existing, "email = ?", email).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	hash, err := HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Email:    email,
		Password: hash,
		FullName: strings.TrimSpace(body.FullName),
	}

	// user + profile + student role in one transaction
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := profileModel.ProfileModel{
			UserID:   user.ID,
			FullName: user.FullName,
		}
		if p := strings.TrimSpace(body.Phone); p != "" {
			profile.Phone = &p
		}
		if l := strings.TrimSpace(body.Level); l != "" {
			profile.Level = &l
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return roleService.GrantRole(tx, user.ID, constants.RoleStudent)
	})
	if err != nil {
		log.Println("[ERROR] register tx failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", dto.AuthUser{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Role:     constants.RoleStudent,
	})
}

/* ==========================
   LOGIN
========================== */
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(body.Email))).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !CheckPassword(user.Password, body.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	role, err := roleService.ResolveRole(db, user.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve role")
	}

	accessToken, err := SignAccessToken(user.ID, user.FullName, role)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refreshToken, err := SignRefreshToken(user.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}
	if err := StoreRefreshToken(db, user.ID, refreshToken); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setRefreshCookie(c, refreshToken)

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken: accessToken,
		User: dto.AuthUser{
			ID:       user.ID.String(),
			Email:    user.Email,
			FullName: user.FullName,
			Role:     role,
		},
	})
}

/* ==========================
   REFRESH TOKEN
========================== */
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	userID, err := ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	exists, err := RefreshTokenExists(db, refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token unknown")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	role, err := roleService.ResolveRole(db, user.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve role")
	}

	// ROTATE: delete the old token, issue a new pair
	if err := DeleteRefreshToken(db, refreshCookie); err != nil {
		log.Printf("[refresh] delete old token failed: %v", err)
	}

	accessToken, err := SignAccessToken(user.ID, user.FullName, role)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	newRefresh, err := SignRefreshToken(user.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}
	if err := StoreRefreshToken(db, user.ID, newRefresh); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setRefreshCookie(c, newRefresh)

	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token": accessToken,
	})
}

/* ==========================
   LOGOUT
========================== */
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if raw := helper.GetRawAccessToken(c); raw != "" {
		if err := BlacklistToken(db, raw); err != nil {
			log.Printf("[logout] blacklist failed: %v", err)
		}
	}
	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		if err := DeleteRefreshToken(db, refresh); err != nil {
			log.Printf("[logout] delete refresh failed: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})

	return helper.Success(c, "Logout successful", nil)
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().Add(RefreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}
