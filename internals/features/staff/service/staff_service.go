package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/staff/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

// CheckStaffUser rejects accounts that cannot hold a staff profile.
func CheckStaffUser(tx *gorm.DB, userID uuid.UUID) error {
	var roles []string
	if err := tx.Table("users").Where("user_id = ?", userID).Pluck("user_role", &roles).Error; err != nil {
		return err
	}
	if len(roles) == 0 {
		return apperr.Validation("staff_user_id", "user does not exist")
	}
	switch roles[0] {
	case constants.RoleStudent, constants.RoleParent:
		return apperr.Validation("staff_user_id", "students and parents cannot have a staff profile")
	}
	return nil
}

func CheckStaffDates(m *model.StaffModel) error {
	if m.StaffLeavingDate != nil && dbtime.Before(*m.StaffLeavingDate, m.StaffJoiningDate) {
		return apperr.Validation("staff_leaving_date", "leaving date cannot be before joining date")
	}
	return nil
}

// OverallRating is the mean of the ratings given, rounded to 2 decimals.
func OverallRating(r *model.PerformanceReviewModel) float64 {
	sum := r.PerformanceReviewPunctuality + r.PerformanceReviewCommunication +
		r.PerformanceReviewTeamwork + r.PerformanceReviewDiscipline
	n := 4
	if r.PerformanceReviewTeachingQuality != nil {
		sum += *r.PerformanceReviewTeachingQuality
		n++
	}
	return helper.Round2(float64(sum) / float64(n))
}
