package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StudentActive      = "ACTIVE"
	StudentInactive    = "INACTIVE"
	StudentGraduated   = "GRADUATED"
	StudentTransferred = "TRANSFERRED"
	StudentExpelled    = "EXPELLED"
)

type StudentModel struct {
	StudentID               uuid.UUID      `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentUserID           uuid.UUID      `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex:uq_students_user" json:"student_user_id"`
	StudentAdmissionNumber  string         `gorm:"column:student_admission_number;type:varchar(50);not null;uniqueIndex:uq_students_admission_number" json:"student_admission_number"`
	StudentAdmissionDate    datatypes.Date `gorm:"column:student_admission_date;type:date;not null" json:"student_admission_date"`
	StudentCampusID         uuid.UUID      `gorm:"column:student_campus_id;type:uuid;not null;index" json:"student_campus_id"`
	StudentCurrentClassID   *uuid.UUID     `gorm:"column:student_current_class_id;type:uuid;index" json:"student_current_class_id,omitempty"`
	StudentCurrentSectionID *uuid.UUID     `gorm:"column:student_current_section_id;type:uuid;index" json:"student_current_section_id,omitempty"`
	StudentRollNumber       *string        `gorm:"column:student_roll_number;type:varchar(20)" json:"student_roll_number,omitempty"`

	/* ===== Personal ===== */
	StudentBloodGroup  *string `gorm:"column:student_blood_group;type:varchar(3)" json:"student_blood_group,omitempty"`
	StudentReligion    *string `gorm:"column:student_religion;type:varchar(50)" json:"student_religion,omitempty"`
	StudentCaste       *string `gorm:"column:student_caste;type:varchar(50)" json:"student_caste,omitempty"`
	StudentNationality string  `gorm:"column:student_nationality;type:varchar(50);not null;default:'Pakistani'" json:"student_nationality"`

	/* ===== Parents / guardian ===== */
	StudentFatherName       string  `gorm:"column:student_father_name;type:varchar(200);not null" json:"student_father_name"`
	StudentFatherPhone      string  `gorm:"column:student_father_phone;type:varchar(20);not null" json:"student_father_phone"`
	StudentFatherOccupation *string `gorm:"column:student_father_occupation;type:varchar(100)" json:"student_father_occupation,omitempty"`
	StudentFatherEmail      *string `gorm:"column:student_father_email;type:varchar(254)" json:"student_father_email,omitempty"`
	StudentMotherName       string  `gorm:"column:student_mother_name;type:varchar(200);not null" json:"student_mother_name"`
	StudentMotherPhone      *string `gorm:"column:student_mother_phone;type:varchar(20)" json:"student_mother_phone,omitempty"`
	StudentMotherOccupation *string `gorm:"column:student_mother_occupation;type:varchar(100)" json:"student_mother_occupation,omitempty"`
	StudentMotherEmail      *string `gorm:"column:student_mother_email;type:varchar(254)" json:"student_mother_email,omitempty"`
	StudentGuardianName     *string `gorm:"column:student_guardian_name;type:varchar(200)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone    *string `gorm:"column:student_guardian_phone;type:varchar(20)" json:"student_guardian_phone,omitempty"`
	StudentGuardianRelation *string `gorm:"column:student_guardian_relation;type:varchar(50)" json:"student_guardian_relation,omitempty"`
	StudentGuardianEmail    *string `gorm:"column:student_guardian_email;type:varchar(254)" json:"student_guardian_email,omitempty"`

	StudentEmergencyContactName     string `gorm:"column:student_emergency_contact_name;type:varchar(200);not null" json:"student_emergency_contact_name"`
	StudentEmergencyContactPhone    string `gorm:"column:student_emergency_contact_phone;type:varchar(20);not null" json:"student_emergency_contact_phone"`
	StudentEmergencyContactRelation string `gorm:"column:student_emergency_contact_relation;type:varchar(50);not null" json:"student_emergency_contact_relation"`

	/* ===== History & medical ===== */
	StudentPreviousSchool    *string `gorm:"column:student_previous_school;type:varchar(200)" json:"student_previous_school,omitempty"`
	StudentPreviousClass     *string `gorm:"column:student_previous_class;type:varchar(50)" json:"student_previous_class,omitempty"`
	StudentMedicalConditions *string `gorm:"column:student_medical_conditions;type:text" json:"student_medical_conditions,omitempty"`
	StudentAllergies         *string `gorm:"column:student_allergies;type:text" json:"student_allergies,omitempty"`
	StudentMedications       *string `gorm:"column:student_medications;type:text" json:"student_medications,omitempty"`

	/* ===== Status & facilities ===== */
	StudentStatus        string     `gorm:"column:student_status;type:varchar(15);not null;default:'ACTIVE';index" json:"student_status"`
	StudentUsesTransport bool       `gorm:"column:student_uses_transport;not null;default:false" json:"student_uses_transport"`
	StudentRouteID       *uuid.UUID `gorm:"column:student_route_id;type:uuid" json:"student_route_id,omitempty"`
	StudentIsHosteler    bool       `gorm:"column:student_is_hosteler;not null;default:false" json:"student_is_hosteler"`
	StudentHostelRoomID  *uuid.UUID `gorm:"column:student_hostel_room_id;type:uuid;index" json:"student_hostel_room_id,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
