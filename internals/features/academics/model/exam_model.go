package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ExaminationModel struct {
	ExaminationID             uuid.UUID      `gorm:"column:examination_id;type:uuid;default:gen_random_uuid();primaryKey" json:"examination_id"`
	ExaminationName           string         `gorm:"column:examination_name;type:varchar(100);not null" json:"examination_name"`
	ExaminationType           string         `gorm:"column:examination_type;type:varchar(15);not null" json:"examination_type"`
	ExaminationAcademicYearID uuid.UUID      `gorm:"column:examination_academic_year_id;type:uuid;not null;index" json:"examination_academic_year_id"`
	ExaminationStartDate      datatypes.Date `gorm:"column:examination_start_date;type:date;not null" json:"examination_start_date"`
	ExaminationEndDate        datatypes.Date `gorm:"column:examination_end_date;type:date;not null" json:"examination_end_date"`
	ExaminationDescription    *string        `gorm:"column:examination_description;type:text" json:"examination_description,omitempty"`
	ExaminationIsPublished    bool           `gorm:"column:examination_is_published;not null;default:false" json:"examination_is_published"`

	ExaminationCreatedAt time.Time `gorm:"column:examination_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"examination_created_at"`
}

func (ExaminationModel) TableName() string { return "examinations" }

type ExamScheduleModel struct {
	ExamScheduleID            uuid.UUID      `gorm:"column:exam_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_schedule_id"`
	ExamScheduleExaminationID uuid.UUID      `gorm:"column:exam_schedule_examination_id;type:uuid;not null;index" json:"exam_schedule_examination_id"`
	ExamScheduleClassID       uuid.UUID      `gorm:"column:exam_schedule_class_id;type:uuid;not null" json:"exam_schedule_class_id"`
	ExamScheduleSubjectID     uuid.UUID      `gorm:"column:exam_schedule_subject_id;type:uuid;not null" json:"exam_schedule_subject_id"`
	ExamScheduleDate          datatypes.Date `gorm:"column:exam_schedule_date;type:date;not null" json:"exam_schedule_date"`
	ExamScheduleStartTime     datatypes.Time `gorm:"column:exam_schedule_start_time;type:time;not null" json:"exam_schedule_start_time"`
	ExamScheduleEndTime       datatypes.Time `gorm:"column:exam_schedule_end_time;type:time;not null" json:"exam_schedule_end_time"`
	ExamScheduleRoomNumber    *string        `gorm:"column:exam_schedule_room_number;type:varchar(20)" json:"exam_schedule_room_number,omitempty"`
	ExamScheduleTotalMarks    int            `gorm:"column:exam_schedule_total_marks;not null;default:100" json:"exam_schedule_total_marks"`
	ExamSchedulePassMarks     int            `gorm:"column:exam_schedule_pass_marks;not null;default:40" json:"exam_schedule_pass_marks"`
}

func (ExamScheduleModel) TableName() string { return "exam_schedules" }

type GradeModel struct {
	GradeID             uuid.UUID       `gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_id"`
	GradeStudentID      uuid.UUID       `gorm:"column:grade_student_id;type:uuid;not null;uniqueIndex:uq_grades_student_schedule" json:"grade_student_id"`
	GradeExamScheduleID uuid.UUID       `gorm:"column:grade_exam_schedule_id;type:uuid;not null;uniqueIndex:uq_grades_student_schedule" json:"grade_exam_schedule_id"`
	GradeTheoryMarks    decimal.Decimal `gorm:"column:grade_theory_marks;type:numeric(6,2);not null;default:0" json:"grade_theory_marks"`
	GradePracticalMarks decimal.Decimal `gorm:"column:grade_practical_marks;type:numeric(6,2);not null;default:0" json:"grade_practical_marks"`
	GradeTotalMarks     decimal.Decimal `gorm:"column:grade_total_marks;type:numeric(6,2);not null;default:0" json:"grade_total_marks"`
	GradeLetter         string          `gorm:"column:grade_letter;type:varchar(2);not null;default:''" json:"grade_letter"`
	GradeRemarks        *string         `gorm:"column:grade_remarks;type:text" json:"grade_remarks,omitempty"`
	GradeIsAbsent       bool            `gorm:"column:grade_is_absent;not null;default:false" json:"grade_is_absent"`
	GradeEnteredBy      *uuid.UUID      `gorm:"column:grade_entered_by;type:uuid" json:"grade_entered_by,omitempty"`

	GradeCreatedAt time.Time `gorm:"column:grade_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"grade_updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
