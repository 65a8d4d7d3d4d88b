package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/features/academics/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== GRADE ===================== */

type GradeRequest struct {
	GradeStudentID      uuid.UUID       `json:"grade_student_id"       validate:"required"`
	GradeExamScheduleID uuid.UUID       `json:"grade_exam_schedule_id" validate:"required"`
	GradeTheoryMarks    decimal.Decimal `json:"grade_theory_marks"     validate:"gte=0"`
	GradePracticalMarks decimal.Decimal `json:"grade_practical_marks"  validate:"gte=0"`
	GradeRemarks        *string         `json:"grade_remarks"`
	GradeIsAbsent       bool            `json:"grade_is_absent"`
}

func (r GradeRequest) ToModel() model.GradeModel {
	return model.GradeModel{
		GradeStudentID:      r.GradeStudentID,
		GradeExamScheduleID: r.GradeExamScheduleID,
		GradeTheoryMarks:    helper.Cents(r.GradeTheoryMarks),
		GradePracticalMarks: helper.Cents(r.GradePracticalMarks),
		GradeRemarks:        helper.TrimPtr(r.GradeRemarks),
		GradeIsAbsent:       r.GradeIsAbsent,
	}
}

/* ===================== HOMEWORK ===================== */

type HomeworkRequest struct {
	HomeworkTitle         string    `json:"homework_title"         validate:"notblank,max=200"`
	HomeworkDescription   string    `json:"homework_description"   validate:"notblank"`
	HomeworkClassID       uuid.UUID `json:"homework_class_id"      validate:"required"`
	HomeworkSectionID     uuid.UUID `json:"homework_section_id"    validate:"required"`
	HomeworkSubjectID     uuid.UUID `json:"homework_subject_id"    validate:"required"`
	HomeworkTeacherID     uuid.UUID `json:"homework_teacher_id"    validate:"required"`
	HomeworkAssignedDate  string    `json:"homework_assigned_date" validate:"required,datetime=2006-01-02"`
	HomeworkDueDate       string    `json:"homework_due_date"      validate:"required,datetime=2006-01-02"`
	HomeworkAttachmentURL *string   `json:"homework_attachment_url" validate:"omitempty,url"`
	HomeworkMaxMarks      *int      `json:"homework_max_marks"     validate:"omitempty,gte=1"`
}

func (r HomeworkRequest) ToModel() model.HomeworkModel {
	m := model.HomeworkModel{
		HomeworkTitle:         strings.TrimSpace(r.HomeworkTitle),
		HomeworkDescription:   strings.TrimSpace(r.HomeworkDescription),
		HomeworkClassID:       r.HomeworkClassID,
		HomeworkSectionID:     r.HomeworkSectionID,
		HomeworkSubjectID:     r.HomeworkSubjectID,
		HomeworkTeacherID:     r.HomeworkTeacherID,
		HomeworkAssignedDate:  dbtime.ParseDate(r.HomeworkAssignedDate),
		HomeworkDueDate:       dbtime.ParseDate(r.HomeworkDueDate),
		HomeworkAttachmentURL: helper.TrimPtr(r.HomeworkAttachmentURL),
		HomeworkMaxMarks:      10,
	}
	if r.HomeworkMaxMarks != nil {
		m.HomeworkMaxMarks = *r.HomeworkMaxMarks
	}
	return m
}

type HomeworkSubmissionRequest struct {
	HomeworkSubmissionHomeworkID    uuid.UUID `json:"homework_submission_homework_id"    validate:"required"`
	HomeworkSubmissionStudentID     uuid.UUID `json:"homework_submission_student_id"     validate:"required"`
	HomeworkSubmissionAttachmentURL string    `json:"homework_submission_attachment_url" validate:"required,url"`
	HomeworkSubmissionRemarks       *string   `json:"homework_submission_remarks"`
}

func (r HomeworkSubmissionRequest) ToModel() model.HomeworkSubmissionModel {
	return model.HomeworkSubmissionModel{
		HomeworkSubmissionHomeworkID:    r.HomeworkSubmissionHomeworkID,
		HomeworkSubmissionStudentID:     r.HomeworkSubmissionStudentID,
		HomeworkSubmissionAttachmentURL: r.HomeworkSubmissionAttachmentURL,
		HomeworkSubmissionRemarks:       helper.TrimPtr(r.HomeworkSubmissionRemarks),
	}
}

type GradeSubmissionRequest struct {
	MarksObtained  decimal.Decimal `json:"marks_obtained"  validate:"gte=0"`
	TeacherRemarks *string         `json:"teacher_remarks"`
}

// ExamOverview groups examinations around today.
type ExamOverview struct {
	Upcoming []model.ExaminationModel `json:"upcoming"`
	Past     []model.ExaminationModel `json:"past"`
	Today    string                   `json:"today"`
}

func NewExamOverview(today time.Time, upcoming, past []model.ExaminationModel) ExamOverview {
	return ExamOverview{Upcoming: upcoming, Past: past, Today: today.Format(dbtime.DateLayout)}
}
