package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	"fizika_backend/internals/features/content/dto"
	"fizika_backend/internals/features/content/model"
	notifService "fizika_backend/internals/features/notifications/service"
	helper "fizika_backend/internals/helpers"
)

type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

var validate = validator.New()

var contentSortColumns = map[string]string{
	"created_at": "created_at",
	"title":      "title",
	"difficulty": "difficulty",
}

// ======================
// Public: list content with level/type filters + pagination
// ======================
func (ctrl *ContentController) GetAll(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.Model(&model.ContentModel{})
	if level := c.Query("level"); level != "" {
		if level != constants.LevelSecondYear && level != constants.LevelBaccalaureate {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid level filter")
		}
		tx = tx.Where("level = ?", level)
	}
	if ct := c.Query("type"); ct != "" {
		switch ct {
		case constants.ContentLesson, constants.ContentSummary, constants.ContentExercise:
			tx = tx.Where("content_type = ?", ct)
		default:
			return helper.Error(c, fiber.StatusBadRequest, "Invalid content type filter")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count content")
	}

	var rows []model.ContentModel
	if err := tx.
		Order(params.SafeOrderClause(contentSortColumns, "created_at")).
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	result := make([]dto.ContentDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToContentDTO(m))
	}

	return helper.Success(c, "Content retrieved", fiber.Map{
		"content":    result,
		"pagination": helper.BuildMeta(total, params),
	})
}

// ======================
// Public: get one
// ======================
func (ctrl *ContentController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ContentModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}
	return helper.Success(c, "Content retrieved", dto.ToContentDTO(m))
}

// ======================
// Teacher: create (multipart, optional file)
// ======================
func (ctrl *ContentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Difficulty == 0 {
		req.Difficulty = 1
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.ContentModel{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		Level:       req.Level,
		Difficulty:  req.Difficulty,
		CreatedBy:   userID,
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if !constants.IsAllowedContentFile(fh.Filename) {
			return helper.Error(c, fiber.StatusBadRequest, "Unsupported file type")
		}
		fileURL, err := helper.UploadFile(helper.BucketContentFiles, m.ContentType, fh)
		if err != nil {
			log.Println("[ERROR] content file upload failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload file")
		}
		m.FileURL = &fileURL
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create content")
	}

	go notifService.NotifyStudents(ctrl.DB, userID,
		"content",
		"محتوى جديد",
		"تمت إضافة "+m.Title,
		map[string]any{"content_id": m.ID.String(), "content_type": m.ContentType, "level": m.Level},
	)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Content created", dto.ToContentDTO(m))
}

// ======================
// Teacher: update (partial, optional file replace)
// ======================
func (ctrl *ContentController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ContentModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	var req dto.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.ContentType != nil {
		m.ContentType = *req.ContentType
	}
	if req.Level != nil {
		m.Level = *req.Level
	}
	if req.Difficulty != nil {
		m.Difficulty = *req.Difficulty
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if !constants.IsAllowedContentFile(fh.Filename) {
			return helper.Error(c, fiber.StatusBadRequest, "Unsupported file type")
		}
		if m.FileURL != nil {
			if bucket, path, err := helper.ExtractStoragePath(*m.FileURL); err == nil {
				if err := helper.DeleteFromStorage(bucket, path); err != nil {
					log.Println("[ERROR] failed to delete old content file:", err)
				}
			}
		}
		fileURL, err := helper.UploadFile(helper.BucketContentFiles, m.ContentType, fh)
		if err != nil {
			log.Println("[ERROR] content file upload failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload file")
		}
		m.FileURL = &fileURL
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update content")
	}
	return helper.Success(c, "Content updated", dto.ToContentDTO(m))
}

// ======================
// Teacher: delete (storage object included)
// ======================
func (ctrl *ContentController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ContentModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	if m.FileURL != nil {
		if bucket, path, err := helper.ExtractStoragePath(*m.FileURL); err == nil {
			if err := helper.DeleteFromStorage(bucket, path); err != nil {
				log.Println("[ERROR] failed to delete content file:", err)
			}
		}
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete content")
	}
	return helper.Success(c, "Content deleted", nil)
}
