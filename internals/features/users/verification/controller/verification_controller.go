package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileModel "fizika_backend/internals/features/users/profile/model"
	"fizika_backend/internals/features/users/verification/dto"
	"fizika_backend/internals/features/users/verification/service"
	helper "fizika_backend/internals/helpers"
)

type VerificationController struct {
	DB       *gorm.DB
	Sender   service.SMSSender
	Validate *validator.Validate
}

func NewVerificationController(db *gorm.DB) *VerificationController {
	return &VerificationController{
		DB:       db,
		Sender:   service.NewSMSSender(),
		Validate: validator.New(),
	}
}

// ======================
// Request a verification code
// ======================
func (ctrl *VerificationController) RequestCode(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.RequestCodeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	code, err := service.IssueCode(ctrl.DB, userID, body.Phone)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue verification code")
	}

	msg := fmt.Sprintf("رمز التحقق الخاص بك هو: %s", code)
	if err := ctrl.Sender.Send(body.Phone, msg); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send SMS")
	}

	return helper.Success(c, "Verification code sent", nil)
}

// ======================
// Verify a code
// ======================
func (ctrl *VerificationController) VerifyCode(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.VerifyCodeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := service.CheckCode(ctrl.DB, userID, body.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No pending verification code")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify code")
	}
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Incorrect verification code")
	}

	if err := ctrl.DB.Model(&profileModel.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("phone_verified", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.Success(c, "Phone verified", nil)
}
