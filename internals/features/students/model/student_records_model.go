package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   DOCUMENTS
========================================================= */

type StudentDocumentModel struct {
	StudentDocumentID          uuid.UUID  `gorm:"column:student_document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_document_id"`
	StudentDocumentStudentID   uuid.UUID  `gorm:"column:student_document_student_id;type:uuid;not null;index" json:"student_document_student_id"`
	StudentDocumentType        string     `gorm:"column:student_document_type;type:varchar(25);not null" json:"student_document_type"`
	StudentDocumentTitle       string     `gorm:"column:student_document_title;type:varchar(200);not null" json:"student_document_title"`
	StudentDocumentFileURL     string     `gorm:"column:student_document_file_url;type:text;not null" json:"student_document_file_url"`
	StudentDocumentDescription *string    `gorm:"column:student_document_description;type:text" json:"student_document_description,omitempty"`
	StudentDocumentUploadedBy  *uuid.UUID `gorm:"column:student_document_uploaded_by;type:uuid" json:"student_document_uploaded_by,omitempty"`
	StudentDocumentUploadedAt  time.Time  `gorm:"column:student_document_uploaded_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_document_uploaded_at"`
}

func (StudentDocumentModel) TableName() string { return "student_documents" }

/* =========================================================
   HEALTH
========================================================= */

type StudentHealthRecordModel struct {
	StudentHealthRecordID              uuid.UUID       `gorm:"column:student_health_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_health_record_id"`
	StudentHealthRecordStudentID       uuid.UUID       `gorm:"column:student_health_record_student_id;type:uuid;not null;index" json:"student_health_record_student_id"`
	StudentHealthRecordDate            datatypes.Date  `gorm:"column:student_health_record_date;type:date;not null" json:"student_health_record_date"`
	StudentHealthRecordHeight          *float64        `gorm:"column:student_health_record_height;type:numeric(5,2)" json:"student_health_record_height,omitempty"`
	StudentHealthRecordWeight          *float64        `gorm:"column:student_health_record_weight;type:numeric(5,2)" json:"student_health_record_weight,omitempty"`
	StudentHealthRecordBMI             *float64        `gorm:"column:student_health_record_bmi;type:numeric(5,2)" json:"student_health_record_bmi,omitempty"`
	StudentHealthRecordBloodPressure   *string         `gorm:"column:student_health_record_blood_pressure;type:varchar(20)" json:"student_health_record_blood_pressure,omitempty"`
	StudentHealthRecordTemperature     *float64        `gorm:"column:student_health_record_temperature;type:numeric(4,1)" json:"student_health_record_temperature,omitempty"`
	StudentHealthRecordNotes           *string         `gorm:"column:student_health_record_notes;type:text" json:"student_health_record_notes,omitempty"`
	StudentHealthRecordDoctorName      *string         `gorm:"column:student_health_record_doctor_name;type:varchar(200)" json:"student_health_record_doctor_name,omitempty"`
	StudentHealthRecordNextCheckupDate *datatypes.Date `gorm:"column:student_health_record_next_checkup_date;type:date" json:"student_health_record_next_checkup_date,omitempty"`
	StudentHealthRecordCreatedBy       *uuid.UUID      `gorm:"column:student_health_record_created_by;type:uuid" json:"student_health_record_created_by,omitempty"`

	StudentHealthRecordCreatedAt time.Time `gorm:"column:student_health_record_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_health_record_created_at"`
	StudentHealthRecordUpdatedAt time.Time `gorm:"column:student_health_record_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_health_record_updated_at"`
}

func (StudentHealthRecordModel) TableName() string { return "student_health_records" }

/* =========================================================
   PROMOTIONS
========================================================= */

type StudentPromotionModel struct {
	StudentPromotionID             uuid.UUID      `gorm:"column:student_promotion_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_promotion_id"`
	StudentPromotionStudentID      uuid.UUID      `gorm:"column:student_promotion_student_id;type:uuid;not null;index" json:"student_promotion_student_id"`
	StudentPromotionFromClassID    *uuid.UUID     `gorm:"column:student_promotion_from_class_id;type:uuid" json:"student_promotion_from_class_id,omitempty"`
	StudentPromotionToClassID      uuid.UUID      `gorm:"column:student_promotion_to_class_id;type:uuid;not null" json:"student_promotion_to_class_id"`
	StudentPromotionFromSectionID  *uuid.UUID     `gorm:"column:student_promotion_from_section_id;type:uuid" json:"student_promotion_from_section_id,omitempty"`
	StudentPromotionToSectionID    *uuid.UUID     `gorm:"column:student_promotion_to_section_id;type:uuid" json:"student_promotion_to_section_id,omitempty"`
	StudentPromotionAcademicYearID uuid.UUID      `gorm:"column:student_promotion_academic_year_id;type:uuid;not null" json:"student_promotion_academic_year_id"`
	StudentPromotionDate           datatypes.Date `gorm:"column:student_promotion_date;type:date;not null" json:"student_promotion_date"`
	StudentPromotionRemarks        *string        `gorm:"column:student_promotion_remarks;type:text" json:"student_promotion_remarks,omitempty"`
	StudentPromotionPromotedBy     *uuid.UUID     `gorm:"column:student_promotion_promoted_by;type:uuid" json:"student_promotion_promoted_by,omitempty"`

	StudentPromotionCreatedAt time.Time `gorm:"column:student_promotion_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_promotion_created_at"`
}

func (StudentPromotionModel) TableName() string { return "student_promotions" }

/* =========================================================
   SIBLINGS
========================================================= */

type SiblingModel struct {
	SiblingID         uuid.UUID `gorm:"column:sibling_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sibling_id"`
	SiblingStudent1ID uuid.UUID `gorm:"column:sibling_student1_id;type:uuid;not null;uniqueIndex:uq_siblings_pair" json:"sibling_student1_id"`
	SiblingStudent2ID uuid.UUID `gorm:"column:sibling_student2_id;type:uuid;not null;uniqueIndex:uq_siblings_pair" json:"sibling_student2_id"`
	SiblingRelation   string    `gorm:"column:sibling_relation;type:varchar(10);not null" json:"sibling_relation"`

	SiblingCreatedAt time.Time `gorm:"column:sibling_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"sibling_created_at"`
}

func (SiblingModel) TableName() string { return "siblings" }
