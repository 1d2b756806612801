package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fizika_backend/internals/features/comments/dto"
	"fizika_backend/internals/features/comments/model"
	"fizika_backend/internals/features/comments/service"
	notifService "fizika_backend/internals/features/notifications/service"
	roleService "fizika_backend/internals/features/users/roles/service"
	helper "fizika_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

var validate = validator.New()

// ======================
// Create comment / question / reply
// ======================
func (ctrl *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.CommentModel{
		UserID:     userID,
		Message:    req.Message,
		IsQuestion: req.IsQuestion,
	}
	if req.ContentID != nil {
		id, err := uuid.Parse(*req.ContentID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid content_id")
		}
		m.ContentID = &id
	}

	var parent *model.CommentModel
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid parent_id")
		}
		var p model.CommentModel
		if err := ctrl.DB.First(&p, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.Error(c, fiber.StatusNotFound, "Parent comment not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify parent")
		}
		parent = &p
		m.ParentID = &id
		// replies are never questions themselves and inherit the thread's scope
		m.IsQuestion = false
		m.ContentID = p.ContentID
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	// Notify the parent author on reply (skip self-replies).
	if parent != nil && parent.UserID != userID {
		go func(target uuid.UUID, commentID string) {
			if err := notifService.Notify(ctrl.DB, target,
				"reply",
				"رد جديد على سؤالك",
				"تلقيت رداً جديداً على سؤالك",
				map[string]any{"comment_id": commentID},
			); err != nil {
				log.Println("[ERROR] reply notification failed:", err)
			}
		}(parent.UserID, m.ID.String())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comment created", dto.ToCommentDTO(m, ""))
}

// ======================
// Thread for one content item (comments + replies, oldest first)
// ======================
func (ctrl *CommentController) GetByContent(c *fiber.Ctx) error {
	contentID := c.Params("contentId")
	if _, err := uuid.Parse(contentID); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var rows []model.CommentModel
	if err := ctrl.DB.
		Where("content_id = ?", contentID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}

	names, err := ctrl.authorNames(rows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve authors")
	}

	result := make([]dto.CommentDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToCommentDTO(m, names[m.UserID.String()]))
	}
	return helper.Success(c, "Comments retrieved", result)
}

// ======================
// Question board: standalone questions, threaded and classified
// ======================
func (ctrl *CommentController) GetQuestionBoard(c *fiber.Ctx) error {
	return ctrl.questionDashboard(c, c.Query("filter"))
}

// ======================
// Teacher dashboard: same threading, filter=answered|unanswered
// ======================
func (ctrl *CommentController) GetQuestionDashboard(c *fiber.Ctx) error {
	return ctrl.questionDashboard(c, c.Query("filter"))
}

func (ctrl *CommentController) questionDashboard(c *fiber.Ctx, filter string) error {
	if filter != "" && filter != "answered" && filter != "unanswered" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid filter")
	}

	questions, replies, err := ctrl.loadQuestionsAndReplies()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	teachers, err := roleService.TeacherUserIDs(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve teachers")
	}

	classified, unanswered := service.ClassifyQuestions(questions, replies, teachers)

	names, err := ctrl.authorNames(append(append([]model.CommentModel{}, questions...), replies...))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve authors")
	}

	result := make([]dto.QuestionThreadDTO, 0, len(classified))
	for _, q := range classified {
		if filter == "answered" && !q.IsAnswered {
			continue
		}
		if filter == "unanswered" && q.IsAnswered {
			continue
		}
		result = append(result, dto.ToQuestionThreadDTO(q, names))
	}

	return helper.Success(c, "Questions retrieved", fiber.Map{
		"questions":        result,
		"unanswered_count": unanswered,
	})
}

// ======================
// Unanswered badge count
// ======================
func (ctrl *CommentController) GetUnansweredCount(c *fiber.Ctx) error {
	questions, replies, err := ctrl.loadQuestionsAndReplies()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}
	teachers, err := roleService.TeacherUserIDs(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve teachers")
	}
	count := service.CountUnanswered(questions, replies, teachers)
	return helper.Success(c, "Unanswered count retrieved", fiber.Map{"unanswered_count": count})
}

// ======================
// Delete own comment (teachers may delete any)
// ======================
func (ctrl *CommentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var m model.CommentModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve comment")
	}

	if m.UserID != userID && !helper.IsTeacher(c) {
		return helper.Error(c, fiber.StatusForbidden, "You can only delete your own comments")
	}

	// replies go with the comment
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CommentModel{}, "parent_id = ?", m.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}
	return helper.Success(c, "Comment deleted", nil)
}

/* ======== internals ======== */

func (ctrl *CommentController) loadQuestionsAndReplies() ([]model.CommentModel, []model.CommentModel, error) {
	var questions []model.CommentModel
	if err := ctrl.DB.
		Where("is_question = true AND parent_id IS NULL").
		Order("created_at DESC, id ASC").
		Find(&questions).Error; err != nil {
		return nil, nil, err
	}

	var replies []model.CommentModel
	if err := ctrl.DB.
		Where("parent_id IS NOT NULL").
		Order("created_at ASC, id ASC").
		Find(&replies).Error; err != nil {
		return nil, nil, err
	}
	return questions, replies, nil
}

func (ctrl *CommentController) authorNames(rows []model.CommentModel) (map[string]string, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, m := range rows {
		if _, ok := seen[m.UserID]; ok {
			continue
		}
		seen[m.UserID] = struct{}{}
		ids = append(ids, m.UserID)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var users []struct {
		ID       uuid.UUID
		FullName string
	}
	if err := ctrl.DB.Table("users").
		Select("id, full_name").
		Where("id IN ?", ids).
		Scan(&users).Error; err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.String()] = u.FullName
	}
	return names, nil
}
