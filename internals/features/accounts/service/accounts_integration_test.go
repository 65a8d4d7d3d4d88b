//go:build integration

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/accounts/dto"
	"schooloffice_backend/internals/features/accounts/model"
	"schooloffice_backend/internals/features/accounts/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/testing/testdb"
)

func seedCampus(t *testing.T, db *gorm.DB, code string) model.CampusModel {
	c := model.CampusModel{
		CampusName: "Main " + code, CampusCode: code, CampusAddress: "1 Road", CampusCity: "City",
		CampusState: "State", CampusCountry: "Country", CampusPostalCode: "0000",
		CampusPhone: "000", CampusEmail: code + "@school.test", CampusIsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedYear(t *testing.T, db *gorm.DB, campus uuid.UUID, name string, current bool) model.AcademicYearModel {
	y := model.AcademicYearModel{
		AcademicYearName:      name,
		AcademicYearStartDate: dbtime.ParseDate("2025-04-01"),
		AcademicYearEndDate:   dbtime.ParseDate("2026-03-31"),
		AcademicYearIsCurrent: current,
		AcademicYearCampusID:  campus,
	}
	require.NoError(t, db.Create(&y).Error)
	return y
}

func TestSetCurrentAcademicYear(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses")
	ctx := context.Background()

	a := seedCampus(t, db, "A")
	b := seedCampus(t, db, "B")
	y1 := seedYear(t, db, a.CampusID, "2024-25", true)
	y2 := seedYear(t, db, a.CampusID, "2025-26", false)
	other := seedYear(t, db, b.CampusID, "2025-26", true)

	got, err := service.SetCurrentAcademicYear(ctx, db, y2.AcademicYearID)
	require.NoError(t, err)
	assert.True(t, got.AcademicYearIsCurrent)

	// idempotent
	_, err = service.SetCurrentAcademicYear(ctx, db, y2.AcademicYearID)
	require.NoError(t, err)

	var current []uuid.UUID
	require.NoError(t, db.Model(&model.AcademicYearModel{}).
		Where("academic_year_is_current").Order("academic_year_campus_id").
		Pluck("academic_year_id", &current).Error)
	assert.ElementsMatch(t, []uuid.UUID{y2.AcademicYearID, other.AcademicYearID}, current)

	var reloaded model.AcademicYearModel
	require.NoError(t, db.First(&reloaded, "academic_year_id = ?", y1.AcademicYearID).Error)
	assert.False(t, reloaded.AcademicYearIsCurrent)

	_, err = service.SetCurrentAcademicYear(ctx, db, uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestPartialUniqueIndexRejectsSecondCurrent(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses")

	c := seedCampus(t, db, "C")
	seedYear(t, db, c.CampusID, "one", true)
	dup := model.AcademicYearModel{
		AcademicYearName: "two", AcademicYearStartDate: dbtime.ParseDate("2026-04-01"),
		AcademicYearEndDate: dbtime.ParseDate("2027-03-31"), AcademicYearIsCurrent: true,
		AcademicYearCampusID: c.CampusID,
	}
	err := db.Create(&dup).Error
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestLoginRefreshLogout(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "users", "token_blacklist", "refresh_tokens")
	configs.JWTSecret, configs.JWTRefreshSecret = "a-secret", "r-secret"
	ctx := context.Background()

	pw := "password123"
	email := "t@school.test"
	u := dto.UserRequest{UserName: "teacher1", UserEmail: &email, UserPassword: &pw, UserRole: "TEACHER"}.ToModel()
	require.NoError(t, db.Create(&u).Error)

	_, err := service.Login(ctx, db, dto.LoginRequest{Identifier: "teacher1", Password: "wrong"}, service.ClientMeta{})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	s, err := service.Login(ctx, db, dto.LoginRequest{Identifier: "T@School.test", Password: pw}, service.ClientMeta{IP: "127.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, u.UserID, s.User.UserID)

	s2, err := service.Refresh(ctx, db, s.Tokens.RefreshToken, service.ClientMeta{})
	require.NoError(t, err)
	// rotated: the old refresh token no longer works
	_, err = service.Refresh(ctx, db, s.Tokens.RefreshToken, service.ClientMeta{})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	require.NoError(t, service.Logout(ctx, db, s2.Tokens.AccessToken, s2.Tokens.RefreshToken))
	var n int64
	db.Model(&model.TokenBlacklist{}).Where("token_blacklist_token = ?", s2.Tokens.AccessToken).Count(&n)
	assert.EqualValues(t, 1, n)

	removed, err := service.PurgeExpiredTokens(ctx, db, time.Now().Add(30*24*time.Hour))
	require.NoError(t, err)
	assert.Positive(t, removed)
}

func TestChangePassword(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "users")
	ctx := context.Background()

	pw := "oldpassword"
	u := dto.UserRequest{UserName: "cp", UserPassword: &pw}.ToModel()
	require.NoError(t, db.Create(&u).Error)

	err := service.ChangePassword(ctx, db, u.UserID, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newpassword"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	require.NoError(t, service.ChangePassword(ctx, db, u.UserID, dto.ChangePasswordRequest{CurrentPassword: pw, NewPassword: "newpassword"}))
	reloaded, err := service.FindUser(ctx, db, u.UserID)
	require.NoError(t, err)
	assert.NoError(t, dto.CheckPassword(reloaded.UserPasswordHash, "newpassword"))
}
