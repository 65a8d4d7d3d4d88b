package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	LeavePending   = "PENDING"
	LeaveApproved  = "APPROVED"
	LeaveRejected  = "REJECTED"
	LeaveCancelled = "CANCELLED"
)

type LeaveTypeModel struct {
	LeaveTypeID          uuid.UUID `gorm:"column:leave_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"leave_type_id"`
	LeaveTypeName        string    `gorm:"column:leave_type_name;type:varchar(100);not null" json:"leave_type_name"`
	LeaveTypeCode        string    `gorm:"column:leave_type_code;type:varchar(20);not null;uniqueIndex:uq_leave_types_code" json:"leave_type_code"`
	LeaveTypeDaysAllowed int       `gorm:"column:leave_type_days_allowed;not null;default:0" json:"leave_type_days_allowed"`
	LeaveTypeDescription *string   `gorm:"column:leave_type_description;type:text" json:"leave_type_description,omitempty"`
	LeaveTypeIsActive    bool      `gorm:"column:leave_type_is_active;not null;default:true" json:"leave_type_is_active"`

	LeaveTypeCreatedAt time.Time `gorm:"column:leave_type_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"leave_type_created_at"`
	LeaveTypeUpdatedAt time.Time `gorm:"column:leave_type_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"leave_type_updated_at"`
}

func (LeaveTypeModel) TableName() string { return "leave_types" }

type LeaveModel struct {
	LeaveID          uuid.UUID      `gorm:"column:leave_id;type:uuid;default:gen_random_uuid();primaryKey" json:"leave_id"`
	LeaveStaffID     uuid.UUID      `gorm:"column:leave_staff_id;type:uuid;not null;index" json:"leave_staff_id"`
	LeaveLeaveTypeID uuid.UUID      `gorm:"column:leave_leave_type_id;type:uuid;not null" json:"leave_leave_type_id"`
	LeaveStartDate   datatypes.Date `gorm:"column:leave_start_date;type:date;not null" json:"leave_start_date"`
	LeaveEndDate     datatypes.Date `gorm:"column:leave_end_date;type:date;not null" json:"leave_end_date"`
	LeaveTotalDays   int            `gorm:"column:leave_total_days;not null" json:"leave_total_days"`
	LeaveReason      string         `gorm:"column:leave_reason;type:text;not null" json:"leave_reason"`
	LeaveStatus      string         `gorm:"column:leave_status;type:varchar(20);not null;default:'PENDING';index" json:"leave_status"`
	LeaveAppliedOn   time.Time      `gorm:"column:leave_applied_on;type:timestamptz;not null;default:now();autoCreateTime" json:"leave_applied_on"`
	LeaveApprovedBy  *uuid.UUID     `gorm:"column:leave_approved_by;type:uuid" json:"leave_approved_by,omitempty"`
	LeaveApprovedOn  *time.Time     `gorm:"column:leave_approved_on;type:timestamptz" json:"leave_approved_on,omitempty"`
	LeaveRemarks     *string        `gorm:"column:leave_remarks;type:text" json:"leave_remarks,omitempty"`
}

func (LeaveModel) TableName() string { return "leaves" }
