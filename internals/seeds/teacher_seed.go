package seeds

import (
	"log"

	"gorm.io/gorm"

	"fizika_backend/internals/configs"
	"fizika_backend/internals/constants"
	roleModel "fizika_backend/internals/features/users/roles/model"
	authService "fizika_backend/internals/features/users/auth/service"
	userModel "fizika_backend/internals/features/users/user/model"
)

// SeedTeacherAccount bootstraps the platform owner account from env. Runs on
// every start and is idempotent: an existing account is left untouched.
func SeedTeacherAccount(db *gorm.DB) {
	email := configs.GetEnv("TEACHER_EMAIL")
	password := configs.GetEnv("TEACHER_PASSWORD")
	fullName := configs.GetEnv("TEACHER_FULL_NAME", "Hazil Rafik")
	if email == "" || password == "" {
		log.Println("[INFO] TEACHER_EMAIL/TEACHER_PASSWORD not set, skipping teacher seed")
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		err := tx.Where("email = ?", email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			hash, err := authService.HashPassword(password)
			if err != nil {
				return err
			}
			user = userModel.UserModel{
				Email:    email,
				Password: hash,
				FullName: fullName,
				IsActive: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			log.Printf("[INFO] teacher account created: %s", email)
		} else if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&roleModel.UserRoleModel{}).
			Where("user_id = ? AND role = ?", user.ID, constants.RoleTeacher).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&roleModel.UserRoleModel{
				UserID: user.ID,
				Role:   constants.RoleTeacher,
			}).Error; err != nil {
				return err
			}
			log.Printf("[INFO] teacher role granted: %s", email)
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] teacher seed failed: %v", err)
	}
}
