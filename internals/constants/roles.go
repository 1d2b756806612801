package constants

import "fmt"

// Application roles (user_roles.role)
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Student levels (profiles.level, content.level, announcements.level)
const (
	LevelSecondYear    = "second_year"
	LevelBaccalaureate = "baccalaureate"
)

// Content types
const (
	ContentLesson   = "lesson"
	ContentSummary  = "summary"
	ContentExercise = "exercise"
)

// Payment methods & statuses
const (
	PaymentMethodCCP        = "ccp"
	PaymentMethodGoldenCard = "golden_card"

	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentRejected  = "rejected"
)

const ErrOnlyTeacherCanAccess = "❌ Only the teacher can access %s."

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeacherCanAccess, feature)
}

var (
	AllRoles    = []string{RoleStudent, RoleTeacher}
	TeacherOnly = []string{RoleTeacher}
)
