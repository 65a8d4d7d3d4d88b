package controller

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/accounts/dto"
	"schooloffice_backend/internals/features/accounts/model"
	"schooloffice_backend/internals/features/accounts/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

func UserResource() *crud.Resource[model.UserModel, dto.UserRequest] {
	return &crud.Resource[model.UserModel, dto.UserRequest]{
		Name:    "user",
		Area:    constants.AreaAccounts,
		OrderBy: "user_name",
		Search:  []string{"users.user_name", "users.user_first_name", "users.user_last_name", "users.user_email"},
		Filters: []crud.Filter{
			{Param: "role", Column: "user_role", Kind: crud.FilterEnum},
			{Param: "is_active", Column: "user_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{
			{Field: "user_name", Columns: []string{"user_name"}, Message: "a user with this username already exists"},
			{Field: "user_email", Columns: []string{"user_email"}, Message: "a user with this email already exists"},
		},
		Keep: []string{"user_google_id", "user_last_login_at"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.UserModel) error {
			if m.UserPasswordHash == "" {
				if old == nil {
					return apperr.Validation("user_password", "this field is required")
				}
				m.UserPasswordHash = old.UserPasswordHash
			}
			// SUPER_ADMIN accounts are managed by super admins only
			if w.Role != constants.RoleSuperAdmin &&
				(m.UserRole == constants.RoleSuperAdmin || (old != nil && old.UserRole == constants.RoleSuperAdmin)) {
				return apperr.Forbidden("only a super admin may manage super admin accounts")
			}
			return nil
		},
		BeforeDelete: func(w crud.WriteContext, m *model.UserModel) error {
			if m.UserID == w.Actor {
				return apperr.Conflict("you cannot delete your own account")
			}
			return nil
		},
	}
}

func CampusResource() *crud.Resource[model.CampusModel, dto.CampusRequest] {
	return &crud.Resource[model.CampusModel, dto.CampusRequest]{
		Name:    "campus",
		Area:    constants.AreaAccounts,
		OrderBy: "campus_name",
		Search:  []string{"campuses.campus_name", "campuses.campus_code", "campuses.campus_city"},
		Filters: []crud.Filter{{Param: "is_active", Column: "campus_is_active", Kind: crud.FilterBool}},
		Unique:  []crud.Unique{{Field: "campus_code", Columns: []string{"campus_code"}, Message: "a campus with this code already exists"}},
	}
}

func AcademicYearResource() *crud.Resource[model.AcademicYearModel, dto.AcademicYearRequest] {
	return &crud.Resource[model.AcademicYearModel, dto.AcademicYearRequest]{
		Name:    "academic year",
		Area:    constants.AreaAccounts,
		OrderBy: "academic_year_start_date DESC",
		Search:  []string{"academic_years.academic_year_name"},
		Filters: []crud.Filter{
			{Param: "campus", Column: "academic_year_campus_id", Kind: crud.FilterUUID},
			{Param: "is_current", Column: "academic_year_is_current", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{
			Field:   "academic_year_name",
			Columns: []string{"academic_year_name", "academic_year_campus_id"},
			Message: "this campus already has an academic year with this name",
		}},
		BeforeWrite: func(w crud.WriteContext, old, m *model.AcademicYearModel) error {
			if dbtime.Before(m.AcademicYearEndDate, m.AcademicYearStartDate) {
				return apperr.Validation("academic_year_end_date", "end date must be on or after start date")
			}
			if !m.AcademicYearIsCurrent {
				return nil
			}
			keep := m.AcademicYearID
			return service.ClearCurrentYears(w.Tx, m.AcademicYearCampusID, keep)
		},
	}
}

func HolidayResource() *crud.Resource[model.HolidayModel, dto.HolidayRequest] {
	return &crud.Resource[model.HolidayModel, dto.HolidayRequest]{
		Name:    "holiday",
		Area:    constants.AreaAccounts,
		OrderBy: "holiday_date",
		Search:  []string{"holidays.holiday_name"},
		Filters: []crud.Filter{
			{Param: "campus", Column: "holiday_campus_id", Kind: crud.FilterUUID},
			{Param: "academic_year", Column: "holiday_academic_year_id", Kind: crud.FilterUUID},
		},
		BeforeWrite: func(w crud.WriteContext, _ *model.HolidayModel, m *model.HolidayModel) error {
			if m.HolidayEndDate != nil && dbtime.Before(*m.HolidayEndDate, m.HolidayDate) {
				return apperr.Validation("holiday_end_date", "end date must be on or after the holiday date")
			}
			return sameCampusYear(w.Tx, m.HolidayAcademicYearID, m.HolidayCampusID)
		},
	}
}

func sameCampusYear(tx *gorm.DB, yearID, campusID uuid.UUID) error {
	var n int64
	if err := tx.Model(&model.AcademicYearModel{}).
		Where("academic_year_id = ? AND academic_year_campus_id = ?", yearID, campusID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.Validation("holiday_academic_year_id", "academic year does not belong to this campus")
	}
	return nil
}
