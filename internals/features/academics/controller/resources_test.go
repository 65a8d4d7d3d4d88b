package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/academics/model"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

func TestClassSubject_PassMarksBound(t *testing.T) {
	hook := ClassSubjectResource().BeforeWrite
	ok := &model.ClassSubjectModel{ClassSubjectTheoryMarks: 70, ClassSubjectPracticalMarks: 30, ClassSubjectPassMarks: 100}
	assert.NoError(t, hook(crud.WriteContext{}, nil, ok))

	bad := &model.ClassSubjectModel{ClassSubjectTheoryMarks: 70, ClassSubjectPracticalMarks: 0, ClassSubjectPassMarks: 71}
	err := hook(crud.WriteContext{}, nil, bad)
	assert.Contains(t, apperr.From(err).Fields, "class_subject_pass_marks")
}

func TestExamination_DateRange(t *testing.T) {
	hook := ExaminationResource().BeforeWrite
	m := &model.ExaminationModel{
		ExaminationStartDate: dbtime.ParseDate("2026-03-10"),
		ExaminationEndDate:   dbtime.ParseDate("2026-03-09"),
	}
	assert.Contains(t, apperr.From(hook(crud.WriteContext{}, nil, m)).Fields, "examination_end_date")

	m.ExaminationEndDate = m.ExaminationStartDate
	assert.NoError(t, hook(crud.WriteContext{}, nil, m))
}

func TestExamSchedule_Rules(t *testing.T) {
	hook := ExamScheduleResource().BeforeWrite
	base := func() *model.ExamScheduleModel {
		return &model.ExamScheduleModel{
			ExamScheduleStartTime:  dbtime.ParseClock("09:00"),
			ExamScheduleEndTime:    dbtime.ParseClock("11:00"),
			ExamScheduleTotalMarks: 100,
			ExamSchedulePassMarks:  40,
		}
	}
	assert.NoError(t, hook(crud.WriteContext{}, nil, base()))

	m := base()
	m.ExamScheduleEndTime = m.ExamScheduleStartTime
	assert.Contains(t, apperr.From(hook(crud.WriteContext{}, nil, m)).Fields, "exam_schedule_end_time")

	m = base()
	m.ExamSchedulePassMarks = 101
	assert.Contains(t, apperr.From(hook(crud.WriteContext{}, nil, m)).Fields, "exam_schedule_pass_marks")

	m = base()
	m.ExamScheduleTotalMarks = 0
	assert.Contains(t, apperr.From(hook(crud.WriteContext{}, nil, m)).Fields, "exam_schedule_total_marks")
}

func TestAttendance_MarkedByActor(t *testing.T) {
	actor := uuid.New()
	m := &model.AttendanceModel{}
	assert.NoError(t, AttendanceResource().BeforeWrite(crud.WriteContext{Actor: actor}, nil, m))
	assert.Equal(t, actor, *m.AttendanceMarkedBy)
}
