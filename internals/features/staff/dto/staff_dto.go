package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/features/staff/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== DEPARTMENT / DESIGNATION ===================== */

type DepartmentRequest struct {
	DepartmentName        string     `json:"department_name"        validate:"notblank,max=100"`
	DepartmentCode        string     `json:"department_code"        validate:"notblank,max=20"`
	DepartmentDescription *string    `json:"department_description"`
	DepartmentHeadID      *uuid.UUID `json:"department_head_id"`
	DepartmentIsActive    *bool      `json:"department_is_active"`
}

func (r DepartmentRequest) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		DepartmentName:        strings.TrimSpace(r.DepartmentName),
		DepartmentCode:        helper.Upper(r.DepartmentCode),
		DepartmentDescription: helper.TrimPtr(r.DepartmentDescription),
		DepartmentHeadID:      helper.UUIDPtr(r.DepartmentHeadID),
		DepartmentIsActive:    helper.ValueOr(r.DepartmentIsActive, true),
	}
}

type DesignationRequest struct {
	DesignationName        string  `json:"designation_name"        validate:"notblank,max=100"`
	DesignationCode        string  `json:"designation_code"        validate:"notblank,max=20"`
	DesignationDescription *string `json:"designation_description"`
	DesignationIsActive    *bool   `json:"designation_is_active"`
}

func (r DesignationRequest) ToModel() model.DesignationModel {
	return model.DesignationModel{
		DesignationName:        strings.TrimSpace(r.DesignationName),
		DesignationCode:        helper.Upper(r.DesignationCode),
		DesignationDescription: helper.TrimPtr(r.DesignationDescription),
		DesignationIsActive:    helper.ValueOr(r.DesignationIsActive, true),
	}
}

/* ===================== STAFF ===================== */

type StaffRequest struct {
	StaffUserID         uuid.UUID  `json:"staff_user_id"         validate:"required"`
	StaffEmployeeID     string     `json:"staff_employee_id"     validate:"notblank,max=50"`
	StaffCampusID       uuid.UUID  `json:"staff_campus_id"       validate:"required"`
	StaffDepartmentID   *uuid.UUID `json:"staff_department_id"`
	StaffDesignationID  *uuid.UUID `json:"staff_designation_id"`
	StaffEmploymentType string     `json:"staff_employment_type" validate:"omitempty,oneof=PERMANENT CONTRACT TEMPORARY PART_TIME"`
	StaffJoiningDate    string     `json:"staff_joining_date"    validate:"required,datetime=2006-01-02"`
	StaffLeavingDate    *string    `json:"staff_leaving_date"    validate:"omitempty,datetime=2006-01-02"`
	StaffIsActive       *bool      `json:"staff_is_active"`

	StaffMaritalStatus *string `json:"staff_marital_status" validate:"omitempty,oneof=SINGLE MARRIED DIVORCED WIDOWED"`
	StaffBloodGroup    *string `json:"staff_blood_group"    validate:"omitempty,max=5"`
	StaffNationality   *string `json:"staff_nationality"    validate:"omitempty,max=50"`
	StaffReligion      *string `json:"staff_religion"       validate:"omitempty,max=50"`

	StaffEmergencyContactName     string `json:"staff_emergency_contact_name"     validate:"notblank,max=200"`
	StaffEmergencyContactPhone    string `json:"staff_emergency_contact_phone"    validate:"notblank,max=20"`
	StaffEmergencyContactRelation string `json:"staff_emergency_contact_relation" validate:"notblank,max=50"`

	StaffBasicSalary     decimal.Decimal `json:"staff_basic_salary"        validate:"gte=0"`
	StaffBankName        *string         `json:"staff_bank_name"           validate:"omitempty,max=100"`
	StaffBankAccountNo   *string         `json:"staff_bank_account_number" validate:"omitempty,max=50"`
	StaffBankIFSCCode    *string         `json:"staff_bank_ifsc_code"      validate:"omitempty,max=20"`
	StaffQualification   *string         `json:"staff_qualification"       validate:"omitempty,max=200"`
	StaffExperienceYears int             `json:"staff_experience_years"    validate:"gte=0,lte=70"`
	StaffResumeURL       *string         `json:"staff_resume_url"          validate:"omitempty,max=2048"`
	StaffIDProofURL      *string         `json:"staff_id_proof_url"        validate:"omitempty,max=2048"`
}

func (r StaffRequest) ToModel() model.StaffModel {
	m := model.StaffModel{
		StaffUserID:         r.StaffUserID,
		StaffEmployeeID:     helper.Upper(r.StaffEmployeeID),
		StaffCampusID:       r.StaffCampusID,
		StaffDepartmentID:   helper.UUIDPtr(r.StaffDepartmentID),
		StaffDesignationID:  helper.UUIDPtr(r.StaffDesignationID),
		StaffEmploymentType: "PERMANENT",
		StaffJoiningDate:    dbtime.ParseDate(r.StaffJoiningDate),
		StaffLeavingDate:    dbtime.ParseDatePtr(r.StaffLeavingDate),
		StaffIsActive:       helper.ValueOr(r.StaffIsActive, true),

		StaffMaritalStatus: helper.UpperPtr(r.StaffMaritalStatus),
		StaffBloodGroup:    helper.UpperPtr(r.StaffBloodGroup),
		StaffNationality:   "Pakistani",
		StaffReligion:      helper.TrimPtr(r.StaffReligion),

		StaffEmergencyContactName:     strings.TrimSpace(r.StaffEmergencyContactName),
		StaffEmergencyContactPhone:     strings.TrimSpace(r.StaffEmergencyContactPhone),
		StaffEmergencyContactRelation: strings.TrimSpace(r.StaffEmergencyContactRelation),

		StaffBasicSalary:     helper.Cents(r.StaffBasicSalary),
		StaffBankName:        helper.TrimPtr(r.StaffBankName),
		StaffBankAccountNo:   helper.TrimPtr(r.StaffBankAccountNo),
		StaffBankIFSCCode:    helper.UpperPtr(r.StaffBankIFSCCode),
		StaffQualification:   helper.TrimPtr(r.StaffQualification),
		StaffExperienceYears: r.StaffExperienceYears,
		StaffResumeURL:       helper.TrimPtr(r.StaffResumeURL),
		StaffIDProofURL:      helper.TrimPtr(r.StaffIDProofURL),
	}
	if r.StaffEmploymentType != "" {
		m.StaffEmploymentType = r.StaffEmploymentType
	}
	if n := helper.TrimPtr(r.StaffNationality); n != nil {
		m.StaffNationality = *n
	}
	return m
}

/* ===================== ATTENDANCE ===================== */

type StaffAttendanceRequest struct {
	StaffAttendanceStaffID  uuid.UUID `json:"staff_attendance_staff_id"  validate:"required"`
	StaffAttendanceDate     string    `json:"staff_attendance_date"      validate:"required,datetime=2006-01-02"`
	StaffAttendanceCheckIn  *string   `json:"staff_attendance_check_in"  validate:"omitempty,datetime=15:04"`
	StaffAttendanceCheckOut *string   `json:"staff_attendance_check_out" validate:"omitempty,datetime=15:04"`
	StaffAttendanceStatus   string    `json:"staff_attendance_status"    validate:"required,oneof=PRESENT ABSENT LATE HALF_DAY LEAVE HOLIDAY"`
	StaffAttendanceRemarks  *string   `json:"staff_attendance_remarks"`
}

func (r StaffAttendanceRequest) ToModel() model.StaffAttendanceModel {
	return model.StaffAttendanceModel{
		StaffAttendanceStaffID:  r.StaffAttendanceStaffID,
		StaffAttendanceDate:     dbtime.ParseDate(r.StaffAttendanceDate),
		StaffAttendanceCheckIn:  dbtime.ParseClockPtr(r.StaffAttendanceCheckIn),
		StaffAttendanceCheckOut: dbtime.ParseClockPtr(r.StaffAttendanceCheckOut),
		StaffAttendanceStatus:   r.StaffAttendanceStatus,
		StaffAttendanceRemarks:  helper.TrimPtr(r.StaffAttendanceRemarks),
	}
}
