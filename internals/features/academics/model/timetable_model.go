package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

type TimetableModel struct {
	TimetableID             uuid.UUID      `gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_id"`
	TimetableClassID        uuid.UUID      `gorm:"column:timetable_class_id;type:uuid;not null;index" json:"timetable_class_id"`
	TimetableSectionID      uuid.UUID      `gorm:"column:timetable_section_id;type:uuid;not null;index" json:"timetable_section_id"`
	TimetableSubjectID      uuid.UUID      `gorm:"column:timetable_subject_id;type:uuid;not null" json:"timetable_subject_id"`
	TimetableTeacherID      *uuid.UUID     `gorm:"column:timetable_teacher_id;type:uuid" json:"timetable_teacher_id,omitempty"`
	TimetableDayOfWeek      string         `gorm:"column:timetable_day_of_week;type:varchar(10);not null" json:"timetable_day_of_week"`
	TimetableStartTime      datatypes.Time `gorm:"column:timetable_start_time;type:time;not null" json:"timetable_start_time"`
	TimetableEndTime        datatypes.Time `gorm:"column:timetable_end_time;type:time;not null" json:"timetable_end_time"`
	TimetableRoomNumber     *string        `gorm:"column:timetable_room_number;type:varchar(20)" json:"timetable_room_number,omitempty"`
	TimetableAcademicYearID uuid.UUID      `gorm:"column:timetable_academic_year_id;type:uuid;not null" json:"timetable_academic_year_id"`
	TimetableIsActive       bool           `gorm:"column:timetable_is_active;not null;default:true" json:"timetable_is_active"`
}

func (TimetableModel) TableName() string { return "timetables" }

// WeekdayOrderSQL sorts MONDAY..SUNDAY instead of alphabetically.
const WeekdayOrderSQL = `array_position(ARRAY['MONDAY','TUESDAY','WEDNESDAY','THURSDAY','FRIDAY','SATURDAY','SUNDAY']::text[], timetable_day_of_week::text)`
