package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	announcementRoute "fizika_backend/internals/features/announcements/route"
	chatRoute "fizika_backend/internals/features/chat/route"
	commentRoute "fizika_backend/internals/features/comments/route"
	contentRoute "fizika_backend/internals/features/content/route"
	notificationRoute "fizika_backend/internals/features/notifications/route"
	paymentRoute "fizika_backend/internals/features/payments/route"
	presenceRoute "fizika_backend/internals/features/presence/route"
	presenceService "fizika_backend/internals/features/presence/service"
	authRoute "fizika_backend/internals/features/users/auth/route"
	profileRoute "fizika_backend/internals/features/users/profile/route"
	roleRoute "fizika_backend/internals/features/users/roles/route"
	verificationRoute "fizika_backend/internals/features/users/verification/route"
	authMiddleware "fizika_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	contentRoute.ContentPublicRoutes(public, db)
	announcementRoute.AnnouncementPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	profileRoute.ProfileUserRoutes(user, db)
	verificationRoute.VerificationUserRoutes(user, db)
	commentRoute.CommentUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)
	chatRoute.ChatUserRoutes(user, db)

	hub := presenceService.NewHub()
	presenceRoute.PresenceUserRoutes(user, hub)

	// ===================== TEACHER =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("this area"), constants.RoleTeacher),
	)
	contentRoute.ContentTeacherRoutes(teacher, db)
	announcementRoute.AnnouncementTeacherRoutes(teacher, db)
	commentRoute.CommentTeacherRoutes(teacher, db)
	paymentRoute.PaymentTeacherRoutes(teacher, db)
	roleRoute.TeacherRoutes(teacher, db)

	log.Println("[INFO] All routes ready")
}
