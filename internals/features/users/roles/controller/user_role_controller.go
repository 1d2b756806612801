package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	"fizika_backend/internals/features/users/roles/dto"
	roleService "fizika_backend/internals/features/users/roles/service"
	userModel "fizika_backend/internals/features/users/user/model"
	helper "fizika_backend/internals/helpers"
)

type UserRoleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserRoleController(db *gorm.DB) *UserRoleController {
	return &UserRoleController{DB: db, Validate: validator.New()}
}

// ======================
// List teachers
// ======================
func (ctrl *UserRoleController) GetTeachers(c *fiber.Ctx) error {
	var rows []dto.TeacherDTO
	if err := ctrl.DB.Table("user_roles").
		Select("user_roles.user_id, users.email, users.full_name, user_roles.created_at AS granted_at").
		Joins("JOIN users ON users.id = user_roles.user_id").
		Where("user_roles.role = ?", constants.RoleTeacher).
		Order("user_roles.created_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve teachers")
	}
	return helper.Success(c, "Teachers retrieved", rows)
}

// ======================
// Grant teacher role by email
// ======================
func (ctrl *UserRoleController) GrantTeacher(c *fiber.Ctx) error {
	var body dto.GrantTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "email = ?", body.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No account found for this email")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := roleService.GrantRole(ctrl.DB, user.ID, constants.RoleTeacher); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to grant teacher role")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher role granted", fiber.Map{
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// ======================
// Revoke teacher role
// ======================
func (ctrl *UserRoleController) RevokeTeacher(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	// Do not let the teacher lock themselves out.
	if self, _ := c.Locals("user_id").(string); self == userID {
		return helper.Error(c, fiber.StatusBadRequest, "You cannot revoke your own teacher role")
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := roleService.RevokeRole(ctrl.DB, uid, constants.RoleTeacher); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to revoke teacher role")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
