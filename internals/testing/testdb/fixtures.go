//go:build integration

package testdb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	accountModel "schooloffice_backend/internals/features/accounts/model"
	staffModel "schooloffice_backend/internals/features/staff/model"
	studentModel "schooloffice_backend/internals/features/students/model"
	"schooloffice_backend/internals/helpers/dbtime"
)

func Campus(t *testing.T, db *gorm.DB, code string) accountModel.CampusModel {
	t.Helper()
	c := accountModel.CampusModel{
		CampusName: "Campus " + code, CampusCode: code, CampusAddress: "1 Road", CampusCity: "City",
		CampusState: "State", CampusCountry: "Country", CampusPostalCode: "0000",
		CampusPhone: "000", CampusEmail: code + "@school.test", CampusIsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func User(t *testing.T, db *gorm.DB, name, role string) accountModel.UserModel {
	t.Helper()
	u := accountModel.UserModel{
		UserName: name, UserPasswordHash: "x", UserRole: role,
		UserFirstName: name, UserLastName: "Test", UserIsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func AcademicYear(t *testing.T, db *gorm.DB, campus uuid.UUID) accountModel.AcademicYearModel {
	t.Helper()
	y := accountModel.AcademicYearModel{
		AcademicYearName:      "2025-26",
		AcademicYearStartDate: dbtime.ParseDate("2025-04-01"),
		AcademicYearEndDate:   dbtime.ParseDate("2026-03-31"),
		AcademicYearIsCurrent: true,
		AcademicYearCampusID:  campus,
	}
	require.NoError(t, db.Create(&y).Error)
	return y
}

// Student creates an ACTIVE student with its own STUDENT user.
func Student(t *testing.T, db *gorm.DB, campus uuid.UUID, admission string) studentModel.StudentModel {
	t.Helper()
	u := User(t, db, "student-"+admission, constants.RoleStudent)
	s := studentModel.StudentModel{
		StudentUserID:                   u.UserID,
		StudentAdmissionNumber:          admission,
		StudentAdmissionDate:            dbtime.ParseDate("2025-04-01"),
		StudentCampusID:                 campus,
		StudentStatus:                   studentModel.StudentActive,
		StudentFatherName:               "Father",
		StudentFatherPhone:              "0300",
		StudentMotherName:               "Mother",
		StudentEmergencyContactName:     "Father",
		StudentEmergencyContactPhone:    "0300",
		StudentEmergencyContactRelation: "Father",
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

// Staff creates an active staff member whose user has role.
func Staff(t *testing.T, db *gorm.DB, campus uuid.UUID, employeeID, role string, basic decimal.Decimal) staffModel.StaffModel {
	t.Helper()
	u := User(t, db, "staff-"+employeeID, role)
	s := staffModel.StaffModel{
		StaffUserID:                   u.UserID,
		StaffEmployeeID:               employeeID,
		StaffCampusID:                 campus,
		StaffEmploymentType:           "PERMANENT",
		StaffJoiningDate:              dbtime.ParseDate("2024-01-01"),
		StaffIsActive:                 true,
		StaffNationality:              "Pakistani",
		StaffEmergencyContactName:     "Contact",
		StaffEmergencyContactPhone:    "0300",
		StaffEmergencyContactRelation: "Spouse",
		StaffBasicSalary:              basic,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}
