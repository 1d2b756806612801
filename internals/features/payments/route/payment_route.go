package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/payments/controller"
)

func PaymentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	r := router.Group("/payments")
	r.Post("/", ctrl.Submit)
	r.Get("/", ctrl.GetMyPayments)
}

func PaymentTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	r := router.Group("/payments")
	r.Get("/", ctrl.GetAll)
	r.Patch("/:id/confirm", ctrl.Confirm)
	r.Patch("/:id/reject", ctrl.Reject)
}
