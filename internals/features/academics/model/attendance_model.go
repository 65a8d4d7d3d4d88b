package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLate    = "LATE"
	AttendanceHalfDay = "HALF_DAY"
	AttendanceLeave   = "LEAVE"
)

type AttendanceModel struct {
	AttendanceID        uuid.UUID      `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceStudentID uuid.UUID      `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_date" json:"attendance_student_id"`
	AttendanceDate      datatypes.Date `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_date;index:idx_attendance_date" json:"attendance_date"`
	AttendanceStatus    string         `gorm:"column:attendance_status;type:varchar(10);not null;default:'PRESENT'" json:"attendance_status"`
	AttendanceRemarks   *string        `gorm:"column:attendance_remarks;type:text" json:"attendance_remarks,omitempty"`
	AttendanceMarkedBy  *uuid.UUID     `gorm:"column:attendance_marked_by;type:uuid" json:"attendance_marked_by,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
