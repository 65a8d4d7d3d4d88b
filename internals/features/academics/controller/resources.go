package controller

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/academics/dto"
	"schooloffice_backend/internals/features/academics/model"
	"schooloffice_backend/internals/features/academics/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

const area = constants.AreaAcademics

func ClassResource() *crud.Resource[model.ClassModel, dto.ClassRequest] {
	return &crud.Resource[model.ClassModel, dto.ClassRequest]{
		Name:    "class",
		Area:    area,
		OrderBy: "class_numeric_value, class_name",
		Search:  []string{"classes.class_name"},
		Filters: []crud.Filter{
			{Param: "campus", Column: "class_campus_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "class_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{
			Field: "class_name", Columns: []string{"class_name", "class_campus_id"},
			Message: "this campus already has a class with this name",
		}},
	}
}

func SectionResource() *crud.Resource[model.SectionModel, dto.SectionRequest] {
	return &crud.Resource[model.SectionModel, dto.SectionRequest]{
		Name:    "section",
		Area:    area,
		OrderBy: "section_class_id, section_name",
		Search:  []string{"sections.section_name"},
		Filters: []crud.Filter{
			{Param: "class", Column: "section_class_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "section_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{
			Field: "section_name", Columns: []string{"section_name", "section_class_id"},
			Message: "this class already has a section with this name",
		}},
		Decorate: service.DecorateSections,
	}
}

func SubjectResource() *crud.Resource[model.SubjectModel, dto.SubjectRequest] {
	return &crud.Resource[model.SubjectModel, dto.SubjectRequest]{
		Name:    "subject",
		Area:    area,
		OrderBy: "subject_name",
		Search:  []string{"subjects.subject_name", "subjects.subject_code"},
		Filters: []crud.Filter{
			{Param: "type", Column: "subject_type", Kind: crud.FilterEnum},
			{Param: "is_active", Column: "subject_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{Field: "subject_code", Columns: []string{"subject_code"}, Message: "a subject with this code already exists"}},
	}
}

func ClassSubjectResource() *crud.Resource[model.ClassSubjectModel, dto.ClassSubjectRequest] {
	return &crud.Resource[model.ClassSubjectModel, dto.ClassSubjectRequest]{
		Name:    "class subject",
		Area:    area,
		OrderBy: "class_subject_class_id, class_subject_subject_id",
		Filters: []crud.Filter{
			{Param: "class", Column: "class_subject_class_id", Kind: crud.FilterUUID},
			{Param: "subject", Column: "class_subject_subject_id", Kind: crud.FilterUUID},
			{Param: "academic_year", Column: "class_subject_academic_year_id", Kind: crud.FilterUUID},
			{Param: "teacher", Column: "class_subject_teacher_id", Kind: crud.FilterUUID},
		},
		Unique: []crud.Unique{{
			Field:   "class_subject_subject_id",
			Columns: []string{"class_subject_class_id", "class_subject_subject_id", "class_subject_academic_year_id"},
			Message: "this subject is already assigned to the class for this academic year",
		}},
		BeforeWrite: func(_ crud.WriteContext, _, m *model.ClassSubjectModel) error {
			if m.ClassSubjectPassMarks > m.ClassSubjectTheoryMarks+m.ClassSubjectPracticalMarks {
				return apperr.Validation("class_subject_pass_marks", "pass marks cannot exceed theory plus practical marks")
			}
			return nil
		},
	}
}

func TimetableResource() *crud.Resource[model.TimetableModel, dto.TimetableRequest] {
	return &crud.Resource[model.TimetableModel, dto.TimetableRequest]{
		Name:    "timetable entry",
		Area:    area,
		OrderBy: model.WeekdayOrderSQL + ", timetable_start_time",
		Filters: []crud.Filter{
			{Param: "class", Column: "timetable_class_id", Kind: crud.FilterUUID},
			{Param: "section", Column: "timetable_section_id", Kind: crud.FilterUUID},
			{Param: "day", Column: "timetable_day_of_week", Kind: crud.FilterEnum},
			{Param: "teacher", Column: "timetable_teacher_id", Kind: crud.FilterUUID},
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.TimetableModel) error {
			if m.TimetableEndTime <= m.TimetableStartTime {
				return apperr.Validation("timetable_end_time", "end time must be after start time")
			}
			return sectionInClass(w.Tx, m.TimetableSectionID, m.TimetableClassID, "timetable_section_id")
		},
	}
}

func AttendanceResource() *crud.Resource[model.AttendanceModel, dto.AttendanceRequest] {
	return &crud.Resource[model.AttendanceModel, dto.AttendanceRequest]{
		Name:     "attendance",
		Area:     area,
		OrderBy:  "attendance_date DESC",
		PageSize: 20,
		Filters: []crud.Filter{
			{Param: "student", Column: "attendance_student_id", Kind: crud.FilterUUID},
			{Param: "date", Column: "attendance_date", Kind: crud.FilterDate},
			{Param: "status", Column: "attendance_status", Kind: crud.FilterEnum},
		},
		Unique: []crud.Unique{{
			Field: "attendance_date", Columns: []string{"attendance_student_id", "attendance_date"},
			Message: "attendance for this student on this date already exists",
		}},
		BeforeWrite: func(w crud.WriteContext, _, m *model.AttendanceModel) error {
			m.AttendanceMarkedBy = w.ActorPtr()
			return nil
		},
	}
}

func ExaminationResource() *crud.Resource[model.ExaminationModel, dto.ExaminationRequest] {
	return &crud.Resource[model.ExaminationModel, dto.ExaminationRequest]{
		Name:    "examination",
		Area:    area,
		OrderBy: "examination_start_date DESC",
		Search:  []string{"examinations.examination_name"},
		Filters: []crud.Filter{
			{Param: "academic_year", Column: "examination_academic_year_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "examination_type", Kind: crud.FilterEnum},
			{Param: "is_published", Column: "examination_is_published", Kind: crud.FilterBool},
		},
		BeforeWrite: func(_ crud.WriteContext, _, m *model.ExaminationModel) error {
			if dbtime.Before(m.ExaminationEndDate, m.ExaminationStartDate) {
				return apperr.Validation("examination_end_date", "end date must be on or after start date")
			}
			return nil
		},
	}
}

func ExamScheduleResource() *crud.Resource[model.ExamScheduleModel, dto.ExamScheduleRequest] {
	return &crud.Resource[model.ExamScheduleModel, dto.ExamScheduleRequest]{
		Name:    "exam schedule",
		Area:    area,
		OrderBy: "exam_schedule_date, exam_schedule_start_time",
		Filters: []crud.Filter{
			{Param: "examination", Column: "exam_schedule_examination_id", Kind: crud.FilterUUID},
			{Param: "class", Column: "exam_schedule_class_id", Kind: crud.FilterUUID},
			{Param: "subject", Column: "exam_schedule_subject_id", Kind: crud.FilterUUID},
		},
		BeforeWrite: func(_ crud.WriteContext, _, m *model.ExamScheduleModel) error {
			if m.ExamScheduleEndTime <= m.ExamScheduleStartTime {
				return apperr.Validation("exam_schedule_end_time", "end time must be after start time")
			}
			if m.ExamScheduleTotalMarks <= 0 {
				return apperr.Validation("exam_schedule_total_marks", "total marks must be greater than zero")
			}
			if m.ExamSchedulePassMarks > m.ExamScheduleTotalMarks {
				return apperr.Validation("exam_schedule_pass_marks", "pass marks cannot exceed total marks")
			}
			return nil
		},
	}
}

func GradeResource() *crud.Resource[model.GradeModel, dto.GradeRequest] {
	return &crud.Resource[model.GradeModel, dto.GradeRequest]{
		Name:    "grade",
		Area:    area,
		OrderBy: "grade_created_at DESC",
		Filters: []crud.Filter{
			{Param: "student", Column: "grade_student_id", Kind: crud.FilterUUID},
			{Param: "exam_schedule", Column: "grade_exam_schedule_id", Kind: crud.FilterUUID},
			{Param: "letter", Column: "grade_letter", Kind: crud.FilterEnum},
		},
		Unique: []crud.Unique{{
			Field: "grade_exam_schedule_id", Columns: []string{"grade_student_id", "grade_exam_schedule_id"},
			Message: "this student already has a grade for this exam schedule",
		}},
		BeforeWrite: func(w crud.WriteContext, _, m *model.GradeModel) error {
			m.GradeEnteredBy = w.ActorPtr()
			return service.PrepareGrade(w.Tx, m)
		},
	}
}

func HomeworkResource() *crud.Resource[model.HomeworkModel, dto.HomeworkRequest] {
	return &crud.Resource[model.HomeworkModel, dto.HomeworkRequest]{
		Name:    "homework",
		Area:    area,
		OrderBy: "homework_assigned_date DESC",
		Search:  []string{"homework.homework_title"},
		Filters: []crud.Filter{
			{Param: "class", Column: "homework_class_id", Kind: crud.FilterUUID},
			{Param: "section", Column: "homework_section_id", Kind: crud.FilterUUID},
			{Param: "subject", Column: "homework_subject_id", Kind: crud.FilterUUID},
			{Param: "teacher", Column: "homework_teacher_id", Kind: crud.FilterUUID},
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.HomeworkModel) error {
			if dbtime.Before(m.HomeworkDueDate, m.HomeworkAssignedDate) {
				return apperr.Validation("homework_due_date", "due date must be on or after the assigned date")
			}
			return sectionInClass(w.Tx, m.HomeworkSectionID, m.HomeworkClassID, "homework_section_id")
		},
	}
}

func HomeworkSubmissionResource() *crud.Resource[model.HomeworkSubmissionModel, dto.HomeworkSubmissionRequest] {
	return &crud.Resource[model.HomeworkSubmissionModel, dto.HomeworkSubmissionRequest]{
		Name:    "homework submission",
		Area:    area,
		OrderBy: "homework_submission_submitted_at DESC",
		Filters: []crud.Filter{
			{Param: "homework", Column: "homework_submission_homework_id", Kind: crud.FilterUUID},
			{Param: "student", Column: "homework_submission_student_id", Kind: crud.FilterUUID},
		},
		Unique: []crud.Unique{{
			Field:   "homework_submission_student_id",
			Columns: []string{"homework_submission_homework_id", "homework_submission_student_id"},
			Message: "this student has already submitted this homework",
		}},
		Keep: []string{
			"homework_submission_marks_obtained", "homework_submission_teacher_remarks",
			"homework_submission_graded_by", "homework_submission_graded_at",
		},
	}
}

func sectionInClass(tx *gorm.DB, sectionID, classID uuid.UUID, field string) error {
	var n int64
	if err := tx.Model(&model.SectionModel{}).
		Where("section_id = ? AND section_class_id = ?", sectionID, classID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.Validation(field, "section does not belong to the selected class")
	}
	return nil
}
