package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/features/users/roles/controller"
)

// TeacherRoutes: teacher-role management, mounted under the teacher group.
func TeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserRoleController(db)

	r := router.Group("/teachers")
	r.Get("/", ctrl.GetTeachers)
	r.Post("/", ctrl.GrantTeacher)
	r.Delete("/:user_id", ctrl.RevokeTeacher)
}
