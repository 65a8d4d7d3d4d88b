package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubjectTypeTheory    = "THEORY"
	SubjectTypePractical = "PRACTICAL"
	SubjectTypeBoth      = "BOTH"
)

type SubjectModel struct {
	SubjectID          uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectName        string    `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`
	SubjectCode        string    `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex:uq_subjects_code" json:"subject_code"`
	SubjectType        string    `gorm:"column:subject_type;type:varchar(10);not null;default:'THEORY'" json:"subject_type"`
	SubjectDescription *string   `gorm:"column:subject_description;type:text" json:"subject_description,omitempty"`
	SubjectIsElective  bool      `gorm:"column:subject_is_elective;not null;default:false" json:"subject_is_elective"`
	SubjectIsActive    bool      `gorm:"column:subject_is_active;not null;default:true" json:"subject_is_active"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"subject_created_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

type ClassSubjectModel struct {
	ClassSubjectID             uuid.UUID  `gorm:"column:class_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_subject_id"`
	ClassSubjectClassID        uuid.UUID  `gorm:"column:class_subject_class_id;type:uuid;not null;uniqueIndex:uq_class_subjects_triple" json:"class_subject_class_id"`
	ClassSubjectSubjectID      uuid.UUID  `gorm:"column:class_subject_subject_id;type:uuid;not null;uniqueIndex:uq_class_subjects_triple" json:"class_subject_subject_id"`
	ClassSubjectAcademicYearID uuid.UUID  `gorm:"column:class_subject_academic_year_id;type:uuid;not null;uniqueIndex:uq_class_subjects_triple" json:"class_subject_academic_year_id"`
	ClassSubjectTeacherID      *uuid.UUID `gorm:"column:class_subject_teacher_id;type:uuid" json:"class_subject_teacher_id,omitempty"`

	ClassSubjectTheoryMarks    int `gorm:"column:class_subject_theory_marks;not null;default:100" json:"class_subject_theory_marks"`
	ClassSubjectPracticalMarks int `gorm:"column:class_subject_practical_marks;not null;default:0" json:"class_subject_practical_marks"`
	ClassSubjectPassMarks      int `gorm:"column:class_subject_pass_marks;not null;default:40" json:"class_subject_pass_marks"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
