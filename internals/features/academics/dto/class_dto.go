package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/academics/model"
	helper "schooloffice_backend/internals/helpers"
)

/* ===================== CLASS ===================== */

type ClassRequest struct {
	ClassName           string     `json:"class_name"          validate:"notblank,max=50"`
	ClassNumericValue   int        `json:"class_numeric_value" validate:"gte=0"`
	ClassCampusID       uuid.UUID  `json:"class_campus_id"     validate:"required"`
	ClassClassTeacherID *uuid.UUID `json:"class_class_teacher_id"`
	ClassIsActive       *bool      `json:"class_is_active"`
}

func (r ClassRequest) ToModel() model.ClassModel {
	m := model.ClassModel{
		ClassName:           strings.TrimSpace(r.ClassName),
		ClassNumericValue:   r.ClassNumericValue,
		ClassCampusID:       r.ClassCampusID,
		ClassClassTeacherID: helper.UUIDPtr(r.ClassClassTeacherID),
		ClassIsActive:       true,
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	return m
}

/* ===================== SECTION ===================== */

type SectionRequest struct {
	SectionName       string    `json:"section_name"     validate:"notblank,max=10"`
	SectionClassID    uuid.UUID `json:"section_class_id" validate:"required"`
	SectionCapacity   *int      `json:"section_capacity" validate:"omitempty,gte=1,lte=500"`
	SectionRoomNumber *string   `json:"section_room_number" validate:"omitempty,max=20"`
	SectionIsActive   *bool     `json:"section_is_active"`
}

func (r SectionRequest) ToModel() model.SectionModel {
	m := model.SectionModel{
		SectionName:       strings.TrimSpace(r.SectionName),
		SectionClassID:    r.SectionClassID,
		SectionCapacity:   40,
		SectionRoomNumber: helper.TrimPtr(r.SectionRoomNumber),
		SectionIsActive:   true,
	}
	if r.SectionCapacity != nil {
		m.SectionCapacity = *r.SectionCapacity
	}
	if r.SectionIsActive != nil {
		m.SectionIsActive = *r.SectionIsActive
	}
	return m
}

/* ===================== SUBJECT ===================== */

type SubjectRequest struct {
	SubjectName        string  `json:"subject_name"        validate:"notblank,max=100"`
	SubjectCode        string  `json:"subject_code"        validate:"notblank,max=20"`
	SubjectType        string  `json:"subject_type"        validate:"omitempty,oneof=THEORY PRACTICAL BOTH"`
	SubjectDescription *string `json:"subject_description"`
	SubjectIsElective  bool    `json:"subject_is_elective"`
	SubjectIsActive    *bool   `json:"subject_is_active"`
}

func (r SubjectRequest) ToModel() model.SubjectModel {
	m := model.SubjectModel{
		SubjectName:        strings.TrimSpace(r.SubjectName),
		SubjectCode:        helper.Upper(r.SubjectCode),
		SubjectType:        r.SubjectType,
		SubjectDescription: helper.TrimPtr(r.SubjectDescription),
		SubjectIsElective:  r.SubjectIsElective,
		SubjectIsActive:    true,
	}
	if m.SubjectType == "" {
		m.SubjectType = model.SubjectTypeTheory
	}
	if r.SubjectIsActive != nil {
		m.SubjectIsActive = *r.SubjectIsActive
	}
	return m
}

/* ===================== CLASS SUBJECT ===================== */

type ClassSubjectRequest struct {
	ClassSubjectClassID        uuid.UUID  `json:"class_subject_class_id"         validate:"required"`
	ClassSubjectSubjectID      uuid.UUID  `json:"class_subject_subject_id"       validate:"required"`
	ClassSubjectAcademicYearID uuid.UUID  `json:"class_subject_academic_year_id" validate:"required"`
	ClassSubjectTeacherID      *uuid.UUID `json:"class_subject_teacher_id"`
	ClassSubjectTheoryMarks    *int       `json:"class_subject_theory_marks"    validate:"omitempty,gte=0"`
	ClassSubjectPracticalMarks *int       `json:"class_subject_practical_marks" validate:"omitempty,gte=0"`
	ClassSubjectPassMarks      *int       `json:"class_subject_pass_marks"      validate:"omitempty,gte=0"`
}

func (r ClassSubjectRequest) ToModel() model.ClassSubjectModel {
	m := model.ClassSubjectModel{
		ClassSubjectClassID:        r.ClassSubjectClassID,
		ClassSubjectSubjectID:      r.ClassSubjectSubjectID,
		ClassSubjectAcademicYearID: r.ClassSubjectAcademicYearID,
		ClassSubjectTeacherID:      helper.UUIDPtr(r.ClassSubjectTeacherID),
		ClassSubjectTheoryMarks:    100,
		ClassSubjectPracticalMarks: 0,
		ClassSubjectPassMarks:      40,
	}
	if r.ClassSubjectTheoryMarks != nil {
		m.ClassSubjectTheoryMarks = *r.ClassSubjectTheoryMarks
	}
	if r.ClassSubjectPracticalMarks != nil {
		m.ClassSubjectPracticalMarks = *r.ClassSubjectPracticalMarks
	}
	if r.ClassSubjectPassMarks != nil {
		m.ClassSubjectPassMarks = *r.ClassSubjectPassMarks
	}
	return m
}
