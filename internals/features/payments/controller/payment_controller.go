package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	"fizika_backend/internals/features/payments/dto"
	"fizika_backend/internals/features/payments/model"
	helper "fizika_backend/internals/helpers"
)

// Monthly subscription price in DZD.
const defaultAmount = 2500

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// ======================
// Student: submit payment confirmation (multipart, optional receipt image)
// ======================
func (ctrl *PaymentController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Amount == 0 {
		req.Amount = defaultAmount
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if _, err := time.Parse("2006-01", req.MonthPaidFor); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "month_paid_for must be YYYY-MM")
	}

	// one pending/confirmed submission per month
	var existing int64
	if err := ctrl.DB.Model(&model.PaymentModel{}).
		Where("user_id = ? AND month_paid_for = ? AND status <> ?", userID, req.MonthPaidFor, constants.PaymentRejected).
		Count(&existing).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check existing payments")
	}
	if existing > 0 {
		return helper.Error(c, fiber.StatusConflict, "A payment for this month was already submitted")
	}

	m := model.PaymentModel{
		UserID:               userID,
		Amount:               req.Amount,
		Method:               req.Method,
		MonthPaidFor:         req.MonthPaidFor,
		TransactionReference: req.TransactionReference,
		Status:               constants.PaymentPending,
	}

	if fh, err := c.FormFile("receipt"); err == nil && fh != nil {
		receiptURL, err := helper.UploadReceiptImage("receipts", fh)
		if err != nil {
			log.Println("[ERROR] receipt upload failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload receipt")
		}
		m.ReceiptURL = &receiptURL
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit payment")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment submitted", dto.ToPaymentDTO(m, ""))
}

// ======================
// Student: own payment history
// ======================
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var rows []model.PaymentModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	result := make([]dto.PaymentDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToPaymentDTO(m, ""))
	}
	return helper.Success(c, "Payments retrieved", result)
}

// ======================
// Teacher: list payments (filter by status), joined with student names
// ======================
func (ctrl *PaymentController) GetAll(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.TeacherOpts)

	tx := ctrl.DB.Model(&model.PaymentModel{})
	if status := c.Query("status"); status != "" {
		switch status {
		case constants.PaymentPending, constants.PaymentConfirmed, constants.PaymentRejected:
			tx = tx.Where("status = ?", status)
		default:
			return helper.Error(c, fiber.StatusBadRequest, "Invalid status filter")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []model.PaymentModel
	if err := tx.
		Order("created_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	names, err := ctrl.studentNames(rows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve students")
	}

	result := make([]dto.PaymentDTO, 0, len(rows))
	for _, m := range rows {
		result = append(result, dto.ToPaymentDTO(m, names[m.UserID]))
	}
	return helper.Success(c, "Payments retrieved", fiber.Map{
		"payments":   result,
		"pagination": helper.BuildMeta(total, params),
	})
}

// ======================
// Teacher: confirm
// ======================
func (ctrl *PaymentController) Confirm(c *fiber.Ctx) error {
	return ctrl.review(c, constants.PaymentConfirmed, nil)
}

// ======================
// Teacher: reject with reason
// ======================
func (ctrl *PaymentController) Reject(c *fiber.Ctx) error {
	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctrl.review(c, constants.PaymentRejected, &req.Reason)
}

func (ctrl *PaymentController) review(c *fiber.Ctx, status string, reason *string) error {
	teacherID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var m model.PaymentModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve payment")
	}
	if m.Status != constants.PaymentPending {
		return helper.Error(c, fiber.StatusConflict, "Payment was already reviewed")
	}

	now := time.Now()
	m.Status = status
	m.ReviewedBy = &teacherID
	m.ReviewedAt = &now
	m.RejectionReason = reason

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update payment")
	}
	return helper.Success(c, "Payment "+status, dto.ToPaymentDTO(m, ""))
}

func (ctrl *PaymentController) studentNames(rows []model.PaymentModel) (map[uuid.UUID]string, error) {
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
		return map[uuid.UUID]string{}, nil
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

	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}
