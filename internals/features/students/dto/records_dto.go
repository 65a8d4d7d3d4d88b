package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/students/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== DOCUMENT ===================== */

const DocumentTypes = "BIRTH_CERTIFICATE TRANSFER_CERTIFICATE MARKSHEET ID_PROOF PHOTO OTHER"

type StudentDocumentRequest struct {
	StudentDocumentStudentID   uuid.UUID `json:"student_document_student_id" validate:"required"`
	StudentDocumentType        string    `json:"student_document_type"       validate:"required,oneof=BIRTH_CERTIFICATE TRANSFER_CERTIFICATE MARKSHEET ID_PROOF PHOTO OTHER"`
	StudentDocumentTitle       string    `json:"student_document_title"      validate:"notblank,max=200"`
	StudentDocumentFileURL     string    `json:"student_document_file_url"                           validate:"notblank"`
	StudentDocumentDescription *string   `json:"student_document_description"`
}

func (r StudentDocumentRequest) ToModel() model.StudentDocumentModel {
	return model.StudentDocumentModel{
		StudentDocumentStudentID:   r.StudentDocumentStudentID,
		StudentDocumentType:        r.StudentDocumentType,
		StudentDocumentTitle:       strings.TrimSpace(r.StudentDocumentTitle),
		StudentDocumentFileURL:     strings.TrimSpace(r.StudentDocumentFileURL),
		StudentDocumentDescription: helper.TrimPtr(r.StudentDocumentDescription),
	}
}

/* ===================== HEALTH ===================== */

type HealthRecordRequest struct {
	StudentHealthRecordStudentID       uuid.UUID `json:"student_health_record_student_id"        validate:"required"`
	StudentHealthRecordDate            string    `json:"student_health_record_date"              validate:"required,datetime=2006-01-02"`
	StudentHealthRecordHeight          *float64  `json:"student_health_record_height"            validate:"omitempty,gt=0,lt=300"`
	StudentHealthRecordWeight          *float64  `json:"student_health_record_weight"            validate:"omitempty,gt=0,lt=500"`
	StudentHealthRecordBloodPressure   *string   `json:"student_health_record_blood_pressure"    validate:"omitempty,max=20"`
	StudentHealthRecordTemperature     *float64  `json:"student_health_record_temperature"       validate:"omitempty,gt=30,lt=45"`
	StudentHealthRecordNotes           *string   `json:"student_health_record_notes"`
	StudentHealthRecordDoctorName      *string   `json:"student_health_record_doctor_name"       validate:"omitempty,max=200"`
	StudentHealthRecordNextCheckupDate *string   `json:"student_health_record_next_checkup_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r HealthRecordRequest) ToModel() model.StudentHealthRecordModel {
	return model.StudentHealthRecordModel{
		StudentHealthRecordStudentID:       r.StudentHealthRecordStudentID,
		StudentHealthRecordDate:            dbtime.ParseDate(r.StudentHealthRecordDate),
		StudentHealthRecordHeight:          r.StudentHealthRecordHeight,
		StudentHealthRecordWeight:          r.StudentHealthRecordWeight,
		StudentHealthRecordBloodPressure:   helper.TrimPtr(r.StudentHealthRecordBloodPressure),
		StudentHealthRecordTemperature:     r.StudentHealthRecordTemperature,
		StudentHealthRecordNotes:           helper.TrimPtr(r.StudentHealthRecordNotes),
		StudentHealthRecordDoctorName:      helper.TrimPtr(r.StudentHealthRecordDoctorName),
		StudentHealthRecordNextCheckupDate: dbtime.ParseDatePtr(r.StudentHealthRecordNextCheckupDate),
	}
}

/* ===================== PROMOTION ===================== */

type PromotionRequest struct {
	StudentPromotionStudentID      uuid.UUID  `json:"student_promotion_student_id"       validate:"required"`
	StudentPromotionFromClassID    *uuid.UUID `json:"student_promotion_from_class_id"`
	StudentPromotionToClassID      uuid.UUID  `json:"student_promotion_to_class_id"      validate:"required"`
	StudentPromotionFromSectionID  *uuid.UUID `json:"student_promotion_from_section_id"`
	StudentPromotionToSectionID    *uuid.UUID `json:"student_promotion_to_section_id"`
	StudentPromotionAcademicYearID uuid.UUID  `json:"student_promotion_academic_year_id" validate:"required"`
	StudentPromotionDate           string     `json:"student_promotion_date"             validate:"required,datetime=2006-01-02"`
	StudentPromotionRemarks        *string    `json:"student_promotion_remarks"`
}

func (r PromotionRequest) ToModel() model.StudentPromotionModel {
	return model.StudentPromotionModel{
		StudentPromotionStudentID:      r.StudentPromotionStudentID,
		StudentPromotionFromClassID:    helper.UUIDPtr(r.StudentPromotionFromClassID),
		StudentPromotionToClassID:      r.StudentPromotionToClassID,
		StudentPromotionFromSectionID:  helper.UUIDPtr(r.StudentPromotionFromSectionID),
		StudentPromotionToSectionID:    helper.UUIDPtr(r.StudentPromotionToSectionID),
		StudentPromotionAcademicYearID: r.StudentPromotionAcademicYearID,
		StudentPromotionDate:           dbtime.ParseDate(r.StudentPromotionDate),
		StudentPromotionRemarks:        helper.TrimPtr(r.StudentPromotionRemarks),
	}
}

/* ===================== SIBLING ===================== */

type SiblingRequest struct {
	SiblingStudent1ID uuid.UUID `json:"sibling_student1_id" validate:"required"`
	SiblingStudent2ID uuid.UUID `json:"sibling_student2_id" validate:"required,nefield=SiblingStudent1ID"`
	SiblingRelation   string    `json:"sibling_relation"    validate:"required,oneof=BROTHER SISTER TWIN"`
}

func (r SiblingRequest) ToModel() model.SiblingModel {
	return model.SiblingModel{
		SiblingStudent1ID: r.SiblingStudent1ID,
		SiblingStudent2ID: r.SiblingStudent2ID,
		SiblingRelation:   r.SiblingRelation,
	}
}
