package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	"fizika_backend/internals/features/announcements/dto"
	"fizika_backend/internals/features/announcements/model"
	notifService "fizika_backend/internals/features/notifications/service"
	helper "fizika_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validate = validator.New()

// ======================
// Public: active announcements, newest first, optionally level-scoped.
// A level filter also includes announcements without a level (global ones).
// ======================
func (ctrl *AnnouncementController) GetActive(c *fiber.Ctx) error {
	tx := ctrl.DB.Model(&model.AnnouncementModel{}).Where("is_active = true")
	if level := c.Query("level"); level != "" {
		if level != constants.LevelSecondYear && level != constants.LevelBaccalaureate {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid level filter")
		}
		tx = tx.Where("level IS NULL OR level = ?", level)
	}

	var rows []model.AnnouncementModel
	if err := tx.Order("created_at DESC").Limit(50).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}

	result := make([]dto.AnnouncementDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToAnnouncementDTO(m))
	}
	return helper.Success(c, "Announcements retrieved", result)
}

// ======================
// Teacher: all announcements including inactive
// ======================
func (ctrl *AnnouncementController) GetAll(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.TeacherOpts)

	var total int64
	if err := ctrl.DB.Model(&model.AnnouncementModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var rows []model.AnnouncementModel
	if err := ctrl.DB.
		Order("created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}

	result := make([]dto.AnnouncementDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToAnnouncementDTO(m))
	}
	return helper.Success(c, "Announcements retrieved", fiber.Map{
		"announcements": result,
		"pagination":    helper.BuildMeta(total, params),
	})
}

// ======================
// Teacher: create
// ======================
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.AnnouncementModel{
		Title:     req.Title,
		Content:   req.Content,
		Level:     req.Level,
		IsActive:  true,
		CreatedBy: userID,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	extra := map[string]any{"announcement_id": m.ID.String()}
	if m.Level != nil {
		extra["level"] = *m.Level
	}
	go notifService.NotifyStudents(ctrl.DB, userID, "announcement", "إعلان جديد", m.Title, extra)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Announcement created", dto.ToAnnouncementDTO(m))
}

// ======================
// Teacher: update (partial)
// ======================
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.AnnouncementModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve announcement")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if req.Level != nil {
		m.Level = req.Level
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.Success(c, "Announcement updated", dto.ToAnnouncementDTO(m))
}

// ======================
// Teacher: delete
// ======================
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.AnnouncementModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.Success(c, "Announcement deleted", nil)
}
