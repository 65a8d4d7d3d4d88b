package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	return database.Schema{
		Models: []any{
			&UserModel{}, &CampusModel{}, &AcademicYearModel{}, &HolidayModel{},
			&TokenBlacklist{}, &RefreshToken{},
		},
		ForeignKeys: []database.ForeignKey{
			database.FK("campuses", "campus_principal_id", "users", "user_id", database.SetNull),
			database.FK("academic_years", "academic_year_campus_id", "campuses", "campus_id", database.Cascade),
			database.FK("holidays", "holiday_academic_year_id", "academic_years", "academic_year_id", database.Cascade),
			database.FK("holidays", "holiday_campus_id", "campuses", "campus_id", database.Cascade),
			database.FK("refresh_tokens", "refresh_token_user_id", "users", "user_id", database.Cascade),
		},
		Statements: []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_academic_years_current_per_campus
			   ON academic_years (academic_year_campus_id) WHERE academic_year_is_current`,
			database.Check("academic_years", "ck_academic_years_range", "academic_year_end_date >= academic_year_start_date"),
			database.Check("holidays", "ck_holidays_range", "holiday_end_date IS NULL OR holiday_end_date >= holiday_date"),
			database.Check("users", "ck_users_gender", "user_gender IS NULL OR user_gender IN ('M','F','O')"),
		},
	}
}
