package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type HomeworkModel struct {
	HomeworkID            uuid.UUID      `gorm:"column:homework_id;type:uuid;default:gen_random_uuid();primaryKey" json:"homework_id"`
	HomeworkTitle         string         `gorm:"column:homework_title;type:varchar(200);not null" json:"homework_title"`
	HomeworkDescription   string         `gorm:"column:homework_description;type:text;not null" json:"homework_description"`
	HomeworkClassID       uuid.UUID      `gorm:"column:homework_class_id;type:uuid;not null;index" json:"homework_class_id"`
	HomeworkSectionID     uuid.UUID      `gorm:"column:homework_section_id;type:uuid;not null;index" json:"homework_section_id"`
	HomeworkSubjectID     uuid.UUID      `gorm:"column:homework_subject_id;type:uuid;not null" json:"homework_subject_id"`
	HomeworkTeacherID     uuid.UUID      `gorm:"column:homework_teacher_id;type:uuid;not null" json:"homework_teacher_id"`
	HomeworkAssignedDate  datatypes.Date `gorm:"column:homework_assigned_date;type:date;not null" json:"homework_assigned_date"`
	HomeworkDueDate       datatypes.Date `gorm:"column:homework_due_date;type:date;not null" json:"homework_due_date"`
	HomeworkAttachmentURL *string        `gorm:"column:homework_attachment_url;type:text" json:"homework_attachment_url,omitempty"`
	HomeworkMaxMarks      int            `gorm:"column:homework_max_marks;not null;default:10" json:"homework_max_marks"`

	HomeworkCreatedAt time.Time `gorm:"column:homework_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"homework_created_at"`
}

func (HomeworkModel) TableName() string { return "homework" }

type HomeworkSubmissionModel struct {
	HomeworkSubmissionID             uuid.UUID        `gorm:"column:homework_submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"homework_submission_id"`
	HomeworkSubmissionHomeworkID     uuid.UUID        `gorm:"column:homework_submission_homework_id;type:uuid;not null;uniqueIndex:uq_homework_submissions_pair" json:"homework_submission_homework_id"`
	HomeworkSubmissionStudentID      uuid.UUID        `gorm:"column:homework_submission_student_id;type:uuid;not null;uniqueIndex:uq_homework_submissions_pair" json:"homework_submission_student_id"`
	HomeworkSubmissionSubmittedAt    time.Time        `gorm:"column:homework_submission_submitted_at;type:timestamptz;not null;default:now();autoCreateTime" json:"homework_submission_submitted_at"`
	HomeworkSubmissionAttachmentURL  string           `gorm:"column:homework_submission_attachment_url;type:text;not null" json:"homework_submission_attachment_url"`
	HomeworkSubmissionRemarks        *string          `gorm:"column:homework_submission_remarks;type:text" json:"homework_submission_remarks,omitempty"`
	HomeworkSubmissionMarksObtained  *decimal.Decimal `gorm:"column:homework_submission_marks_obtained;type:numeric(6,2)" json:"homework_submission_marks_obtained,omitempty"`
	HomeworkSubmissionTeacherRemarks *string          `gorm:"column:homework_submission_teacher_remarks;type:text" json:"homework_submission_teacher_remarks,omitempty"`
	HomeworkSubmissionGradedBy       *uuid.UUID       `gorm:"column:homework_submission_graded_by;type:uuid" json:"homework_submission_graded_by,omitempty"`
	HomeworkSubmissionGradedAt       *time.Time       `gorm:"column:homework_submission_graded_at;type:timestamptz" json:"homework_submission_graded_at,omitempty"`
}

func (HomeworkSubmissionModel) TableName() string { return "homework_submissions" }
