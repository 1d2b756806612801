package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fizika_backend/internals/constants"
	"fizika_backend/internals/features/users/roles/model"
)

// ResolveRole returns the highest role of a user (teacher wins over student).
func ResolveRole(db *gorm.DB, userID uuid.UUID) (string, error) {
	var roles []string
	if err := db.Model(&model.UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles).Error; err != nil {
		return "", err
	}
	for _, r := range roles {
		if r == constants.RoleTeacher {
			return constants.RoleTeacher, nil
		}
	}
	return constants.RoleStudent, nil
}

// IsTeacher checks teacher role membership directly against the DB.
func IsTeacher(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.UserRoleModel{}).
		Where("user_id = ? AND role = ?", userID, constants.RoleTeacher).
		Count(&count).Error
	return count > 0, err
}

// TeacherUserIDs returns the set of user ids holding the teacher role.
// This is the privileged-author set consumed by the question classifier.
func TeacherUserIDs(db *gorm.DB) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := db.Model(&model.UserRoleModel{}).
		Where("role = ?", constants.RoleTeacher).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// GrantRole inserts a role row if the user does not already hold it.
func GrantRole(db *gorm.DB, userID uuid.UUID, role string) error {
	var existing model.UserRoleModel
	err := db.Where("user_id = ? AND role = ?", userID, role).First(&existing).Error
	if err == nil {
		return nil // already granted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&model.UserRoleModel{UserID: userID, Role: role}).Error
}

// RevokeRole removes a role row.
func RevokeRole(db *gorm.DB, userID uuid.UUID, role string) error {
	return db.Where("user_id = ? AND role = ?", userID, role).
		Delete(&model.UserRoleModel{}).Error
}
