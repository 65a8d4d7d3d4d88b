package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/academics/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== TIMETABLE ===================== */

type TimetableRequest struct {
	TimetableClassID        uuid.UUID  `json:"timetable_class_id"         validate:"required"`
	TimetableSectionID      uuid.UUID  `json:"timetable_section_id"       validate:"required"`
	TimetableSubjectID      uuid.UUID  `json:"timetable_subject_id"       validate:"required"`
	TimetableTeacherID      *uuid.UUID `json:"timetable_teacher_id"`
	TimetableDayOfWeek      string     `json:"timetable_day_of_week"      validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	TimetableStartTime      string     `json:"timetable_start_time"       validate:"required,datetime=15:04"`
	TimetableEndTime        string     `json:"timetable_end_time"         validate:"required,datetime=15:04"`
	TimetableRoomNumber     *string    `json:"timetable_room_number"      validate:"omitempty,max=20"`
	TimetableAcademicYearID uuid.UUID  `json:"timetable_academic_year_id" validate:"required"`
	TimetableIsActive       *bool      `json:"timetable_is_active"`
}

func (r TimetableRequest) ToModel() model.TimetableModel {
	m := model.TimetableModel{
		TimetableClassID:        r.TimetableClassID,
		TimetableSectionID:      r.TimetableSectionID,
		TimetableSubjectID:      r.TimetableSubjectID,
		TimetableTeacherID:      helper.UUIDPtr(r.TimetableTeacherID),
		TimetableDayOfWeek:      r.TimetableDayOfWeek,
		TimetableStartTime:      dbtime.ParseClock(r.TimetableStartTime),
		TimetableEndTime:        dbtime.ParseClock(r.TimetableEndTime),
		TimetableRoomNumber:     helper.TrimPtr(r.TimetableRoomNumber),
		TimetableAcademicYearID: r.TimetableAcademicYearID,
		TimetableIsActive:       true,
	}
	if r.TimetableIsActive != nil {
		m.TimetableIsActive = *r.TimetableIsActive
	}
	return m
}

/* ===================== ATTENDANCE ===================== */

type AttendanceRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date"       validate:"required,datetime=2006-01-02"`
	AttendanceStatus    string    `json:"attendance_status"     validate:"omitempty,oneof=PRESENT ABSENT LATE HALF_DAY LEAVE"`
	AttendanceRemarks   *string   `json:"attendance_remarks"`
}

func (r AttendanceRequest) ToModel() model.AttendanceModel {
	m := model.AttendanceModel{
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceDate:      dbtime.ParseDate(r.AttendanceDate),
		AttendanceStatus:    r.AttendanceStatus,
		AttendanceRemarks:   helper.TrimPtr(r.AttendanceRemarks),
	}
	if m.AttendanceStatus == "" {
		m.AttendanceStatus = model.AttendancePresent
	}
	return m
}

// BulkAttendanceRequest marks every listed student of a section for one date.
type BulkAttendanceRequest struct {
	SectionID uuid.UUID           `json:"section_id" validate:"required"`
	Date      string              `json:"date"       validate:"required,datetime=2006-01-02"`
	Entries   []BulkAttendanceRow `json:"entries"    validate:"required,min=1,dive"`
}

type BulkAttendanceRow struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=PRESENT ABSENT LATE HALF_DAY LEAVE"`
	Remarks   *string   `json:"remarks"`
}

/* ===================== EXAMINATION ===================== */

type ExaminationRequest struct {
	ExaminationName           string    `json:"examination_name"             validate:"notblank,max=100"`
	ExaminationType           string    `json:"examination_type"             validate:"required,oneof=MONTHLY QUARTERLY HALF_YEARLY ANNUAL FINAL"`
	ExaminationAcademicYearID uuid.UUID `json:"examination_academic_year_id" validate:"required"`
	ExaminationStartDate      string    `json:"examination_start_date"       validate:"required,datetime=2006-01-02"`
	ExaminationEndDate        string    `json:"examination_end_date"         validate:"required,datetime=2006-01-02"`
	ExaminationDescription    *string   `json:"examination_description"`
	ExaminationIsPublished    bool      `json:"examination_is_published"`
}

func (r ExaminationRequest) ToModel() model.ExaminationModel {
	return model.ExaminationModel{
		ExaminationName:           strings.TrimSpace(r.ExaminationName),
		ExaminationType:           r.ExaminationType,
		ExaminationAcademicYearID: r.ExaminationAcademicYearID,
		ExaminationStartDate:      dbtime.ParseDate(r.ExaminationStartDate),
		ExaminationEndDate:        dbtime.ParseDate(r.ExaminationEndDate),
		ExaminationDescription:    helper.TrimPtr(r.ExaminationDescription),
		ExaminationIsPublished:    r.ExaminationIsPublished,
	}
}

type ExamScheduleRequest struct {
	ExamScheduleExaminationID uuid.UUID `json:"exam_schedule_examination_id" validate:"required"`
	ExamScheduleClassID       uuid.UUID `json:"exam_schedule_class_id"       validate:"required"`
	ExamScheduleSubjectID     uuid.UUID `json:"exam_schedule_subject_id"     validate:"required"`
	ExamScheduleDate          string    `json:"exam_schedule_date"           validate:"required,datetime=2006-01-02"`
	ExamScheduleStartTime     string    `json:"exam_schedule_start_time"     validate:"required,datetime=15:04"`
	ExamScheduleEndTime       string    `json:"exam_schedule_end_time"       validate:"required,datetime=15:04"`
	ExamScheduleRoomNumber    *string   `json:"exam_schedule_room_number"    validate:"omitempty,max=20"`
	ExamScheduleTotalMarks    *int      `json:"exam_schedule_total_marks"    validate:"omitempty,gte=1"`
	ExamSchedulePassMarks     *int      `json:"exam_schedule_pass_marks"     validate:"omitempty,gte=0"`
}

func (r ExamScheduleRequest) ToModel() model.ExamScheduleModel {
	m := model.ExamScheduleModel{
		ExamScheduleExaminationID: r.ExamScheduleExaminationID,
		ExamScheduleClassID:       r.ExamScheduleClassID,
		ExamScheduleSubjectID:     r.ExamScheduleSubjectID,
		ExamScheduleDate:          dbtime.ParseDate(r.ExamScheduleDate),
		ExamScheduleStartTime:     dbtime.ParseClock(r.ExamScheduleStartTime),
		ExamScheduleEndTime:       dbtime.ParseClock(r.ExamScheduleEndTime),
		ExamScheduleRoomNumber:    helper.TrimPtr(r.ExamScheduleRoomNumber),
		ExamScheduleTotalMarks:    100,
		ExamSchedulePassMarks:     40,
	}
	if r.ExamScheduleTotalMarks != nil {
		m.ExamScheduleTotalMarks = *r.ExamScheduleTotalMarks
	}
	if r.ExamSchedulePassMarks != nil {
		m.ExamSchedulePassMarks = *r.ExamSchedulePassMarks
	}
	return m
}
