package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/users/profile/dto"
	"fizika_backend/internals/features/users/profile/model"
	helper "fizika_backend/internals/helpers"
)

type ProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Validate: validator.New()}
}

// ======================
// Get own profile
// ======================
func (ctrl *ProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var profile model.ProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve profile")
	}

	return helper.Success(c, "Profile retrieved", dto.ToProfileDTO(profile))
}

// ======================
// Update own profile
// ======================
func (ctrl *ProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile model.ProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Profile not found")
	}

	if body.FullName != nil {
		profile.FullName = *body.FullName
	}
	if body.Phone != nil {
		// changing the phone resets verification
		if profile.Phone == nil || *profile.Phone != *body.Phone {
			profile.PhoneVerified = false
		}
		profile.Phone = body.Phone
	}
	if body.Level != nil {
		profile.Level = body.Level
	}

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.Success(c, "Profile updated", dto.ToProfileDTO(profile))
}
