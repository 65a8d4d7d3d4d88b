package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

/* =========================================================
   DEPARTMENT / DESIGNATION
========================================================= */

type DepartmentModel struct {
	DepartmentID          uuid.UUID  `gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_id"`
	DepartmentName        string     `gorm:"column:department_name;type:varchar(100);not null" json:"department_name"`
	DepartmentCode        string     `gorm:"column:department_code;type:varchar(20);not null;uniqueIndex:uq_departments_code" json:"department_code"`
	DepartmentDescription *string    `gorm:"column:department_description;type:text" json:"department_description,omitempty"`
	DepartmentHeadID      *uuid.UUID `gorm:"column:department_head_id;type:uuid" json:"department_head_id,omitempty"`
	DepartmentIsActive    bool       `gorm:"column:department_is_active;not null;default:true" json:"department_is_active"`

	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"column:department_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }

type DesignationModel struct {
	DesignationID          uuid.UUID `gorm:"column:designation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"designation_id"`
	DesignationName        string    `gorm:"column:designation_name;type:varchar(100);not null" json:"designation_name"`
	DesignationCode        string    `gorm:"column:designation_code;type:varchar(20);not null;uniqueIndex:uq_designations_code" json:"designation_code"`
	DesignationDescription *string   `gorm:"column:designation_description;type:text" json:"designation_description,omitempty"`
	DesignationIsActive    bool      `gorm:"column:designation_is_active;not null;default:true" json:"designation_is_active"`

	DesignationCreatedAt time.Time `gorm:"column:designation_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"designation_created_at"`
	DesignationUpdatedAt time.Time `gorm:"column:designation_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"designation_updated_at"`
}

func (DesignationModel) TableName() string { return "designations" }

/* =========================================================
   STAFF
========================================================= */

type StaffModel struct {
	StaffID             uuid.UUID       `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`
	StaffUserID         uuid.UUID       `gorm:"column:staff_user_id;type:uuid;not null;uniqueIndex:uq_staff_user" json:"staff_user_id"`
	StaffEmployeeID     string          `gorm:"column:staff_employee_id;type:varchar(50);not null;uniqueIndex:uq_staff_employee_id" json:"staff_employee_id"`
	StaffCampusID       uuid.UUID       `gorm:"column:staff_campus_id;type:uuid;not null;index" json:"staff_campus_id"`
	StaffDepartmentID   *uuid.UUID      `gorm:"column:staff_department_id;type:uuid;index" json:"staff_department_id,omitempty"`
	StaffDesignationID  *uuid.UUID      `gorm:"column:staff_designation_id;type:uuid" json:"staff_designation_id,omitempty"`
	StaffEmploymentType string          `gorm:"column:staff_employment_type;type:varchar(20);not null;default:'PERMANENT'" json:"staff_employment_type"`
	StaffJoiningDate    datatypes.Date  `gorm:"column:staff_joining_date;type:date;not null" json:"staff_joining_date"`
	StaffLeavingDate    *datatypes.Date `gorm:"column:staff_leaving_date;type:date" json:"staff_leaving_date,omitempty"`
	StaffIsActive       bool            `gorm:"column:staff_is_active;not null;default:true;index" json:"staff_is_active"`

	StaffMaritalStatus *string `gorm:"column:staff_marital_status;type:varchar(20)" json:"staff_marital_status,omitempty"`
	StaffBloodGroup    *string `gorm:"column:staff_blood_group;type:varchar(5)" json:"staff_blood_group,omitempty"`
	StaffNationality   string  `gorm:"column:staff_nationality;type:varchar(50);not null;default:'Pakistani'" json:"staff_nationality"`
	StaffReligion      *string `gorm:"column:staff_religion;type:varchar(50)" json:"staff_religion,omitempty"`

	StaffEmergencyContactName     string `gorm:"column:staff_emergency_contact_name;type:varchar(200);not null" json:"staff_emergency_contact_name"`
	StaffEmergencyContactPhone    string `gorm:"column:staff_emergency_contact_phone;type:varchar(20);not null" json:"staff_emergency_contact_phone"`
	StaffEmergencyContactRelation string `gorm:"column:staff_emergency_contact_relation;type:varchar(50);not null" json:"staff_emergency_contact_relation"`

	StaffBasicSalary     decimal.Decimal `gorm:"column:staff_basic_salary;type:numeric(10,2);not null" json:"staff_basic_salary"`
	StaffBankName        *string         `gorm:"column:staff_bank_name;type:varchar(100)" json:"staff_bank_name,omitempty"`
	StaffBankAccountNo   *string         `gorm:"column:staff_bank_account_number;type:varchar(50)" json:"staff_bank_account_number,omitempty"`
	StaffBankIFSCCode    *string         `gorm:"column:staff_bank_ifsc_code;type:varchar(20)" json:"staff_bank_ifsc_code,omitempty"`
	StaffQualification   *string         `gorm:"column:staff_qualification;type:varchar(200)" json:"staff_qualification,omitempty"`
	StaffExperienceYears int             `gorm:"column:staff_experience_years;not null;default:0" json:"staff_experience_years"`
	StaffResumeURL       *string         `gorm:"column:staff_resume_url;type:text" json:"staff_resume_url,omitempty"`
	StaffIDProofURL      *string         `gorm:"column:staff_id_proof_url;type:text" json:"staff_id_proof_url,omitempty"`

	StaffCreatedAt time.Time `gorm:"column:staff_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt time.Time `gorm:"column:staff_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"staff_updated_at"`
}

func (StaffModel) TableName() string { return "staff" }

/* =========================================================
   ATTENDANCE
========================================================= */

type StaffAttendanceModel struct {
	StaffAttendanceID       uuid.UUID       `gorm:"column:staff_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_attendance_id"`
	StaffAttendanceStaffID  uuid.UUID       `gorm:"column:staff_attendance_staff_id;type:uuid;not null;uniqueIndex:uq_staff_attendance_day" json:"staff_attendance_staff_id"`
	StaffAttendanceDate     datatypes.Date  `gorm:"column:staff_attendance_date;type:date;not null;uniqueIndex:uq_staff_attendance_day" json:"staff_attendance_date"`
	StaffAttendanceCheckIn  *datatypes.Time `gorm:"column:staff_attendance_check_in;type:time" json:"staff_attendance_check_in,omitempty"`
	StaffAttendanceCheckOut *datatypes.Time `gorm:"column:staff_attendance_check_out;type:time" json:"staff_attendance_check_out,omitempty"`
	StaffAttendanceStatus   string          `gorm:"column:staff_attendance_status;type:varchar(10);not null" json:"staff_attendance_status"`
	StaffAttendanceRemarks  *string         `gorm:"column:staff_attendance_remarks;type:text" json:"staff_attendance_remarks,omitempty"`
	StaffAttendanceMarkedBy *uuid.UUID      `gorm:"column:staff_attendance_marked_by;type:uuid" json:"staff_attendance_marked_by,omitempty"`

	StaffAttendanceCreatedAt time.Time `gorm:"column:staff_attendance_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"staff_attendance_created_at"`
	StaffAttendanceUpdatedAt time.Time `gorm:"column:staff_attendance_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"staff_attendance_updated_at"`
}

func (StaffAttendanceModel) TableName() string { return "staff_attendance" }
