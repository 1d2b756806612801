package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/comments/controller"
)

// Authenticated user endpoints
func CommentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	r := router.Group("/comments")
	r.Post("/", ctrl.Create)
	r.Get("/content/:contentId", ctrl.GetByContent)
	r.Delete("/:id", ctrl.Delete)

	q := router.Group("/questions")
	q.Get("/", ctrl.GetQuestionBoard)
}

// Teacher dashboard endpoints
func CommentTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	q := router.Group("/questions")
	q.Get("/", ctrl.GetQuestionDashboard)
	q.Get("/unanswered-count", ctrl.GetUnansweredCount)
}
