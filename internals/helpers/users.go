package helper

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/helpers/apperr"
)

// CheckUserRole fails with a validation error on field unless userID is an
// existing user holding one of roles.
func CheckUserRole(tx *gorm.DB, userID uuid.UUID, field string, roles ...string) error {
	var got []string
	if err := tx.Table("users").Where("user_id = ?", userID).Pluck("user_role", &got).Error; err != nil {
		return err
	}
	if len(got) == 0 {
		return apperr.Validation(field, "user does not exist")
	}
	for _, r := range roles {
		if got[0] == r {
			return nil
		}
	}
	return apperr.Validation(field, "user must have role "+strings.Join(roles, " or "))
}
