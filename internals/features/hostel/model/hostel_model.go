package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HostelModel struct {
	HostelID         uuid.UUID  `gorm:"column:hostel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_id"`
	HostelName       string     `gorm:"column:hostel_name;type:varchar(200);not null" json:"hostel_name"`
	HostelType       string     `gorm:"column:hostel_type;type:varchar(10);not null" json:"hostel_type"`
	HostelCampusID   uuid.UUID  `gorm:"column:hostel_campus_id;type:uuid;not null;index" json:"hostel_campus_id"`
	HostelWardenID   *uuid.UUID `gorm:"column:hostel_warden_id;type:uuid" json:"hostel_warden_id,omitempty"`
	HostelAddress    string     `gorm:"column:hostel_address;type:text;not null" json:"hostel_address"`
	HostelTotalRooms int        `gorm:"column:hostel_total_rooms;not null;default:0" json:"hostel_total_rooms"`
	HostelIsActive   bool       `gorm:"column:hostel_is_active;not null;default:true" json:"hostel_is_active"`

	HostelCreatedAt time.Time `gorm:"column:hostel_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"hostel_created_at"`
	HostelUpdatedAt time.Time `gorm:"column:hostel_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"hostel_updated_at"`
}

func (HostelModel) TableName() string { return "hostels" }

/* =========================================================
   ROOMS
========================================================= */

type HostelRoomModel struct {
	HostelRoomID         uuid.UUID       `gorm:"column:hostel_room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_room_id"`
	HostelRoomHostelID   uuid.UUID       `gorm:"column:hostel_room_hostel_id;type:uuid;not null;uniqueIndex:uq_hostel_rooms_number" json:"hostel_room_hostel_id"`
	HostelRoomNumber     string          `gorm:"column:hostel_room_number;type:varchar(50);not null;uniqueIndex:uq_hostel_rooms_number" json:"hostel_room_number"`
	HostelRoomType       string          `gorm:"column:hostel_room_type;type:varchar(20);not null" json:"hostel_room_type"`
	HostelRoomCapacity   int             `gorm:"column:hostel_room_capacity;not null" json:"hostel_room_capacity"`
	HostelRoomFloor      int             `gorm:"column:hostel_room_floor;not null;default:0" json:"hostel_room_floor"`
	HostelRoomMonthlyFee decimal.Decimal `gorm:"column:hostel_room_monthly_fee;type:numeric(10,2);not null" json:"hostel_room_monthly_fee"`
	HostelRoomIsActive   bool            `gorm:"column:hostel_room_is_active;not null;default:true" json:"hostel_room_is_active"`

	HostelRoomCreatedAt time.Time `gorm:"column:hostel_room_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"hostel_room_created_at"`
	HostelRoomUpdatedAt time.Time `gorm:"column:hostel_room_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"hostel_room_updated_at"`

	// derived
	HostelRoomOccupancy int  `gorm:"-" json:"hostel_room_current_occupancy"`
	HostelRoomIsFull    bool `gorm:"-" json:"hostel_room_is_full"`
}

func (HostelRoomModel) TableName() string { return "hostel_rooms" }

type HostelFacilityModel struct {
	HostelFacilityID          uuid.UUID `gorm:"column:hostel_facility_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_facility_id"`
	HostelFacilityHostelID    uuid.UUID `gorm:"column:hostel_facility_hostel_id;type:uuid;not null;index" json:"hostel_facility_hostel_id"`
	HostelFacilityName        string    `gorm:"column:hostel_facility_name;type:varchar(200);not null" json:"hostel_facility_name"`
	HostelFacilityDescription *string   `gorm:"column:hostel_facility_description;type:text" json:"hostel_facility_description,omitempty"`
	HostelFacilityIsAvailable bool      `gorm:"column:hostel_facility_is_available;not null;default:true" json:"hostel_facility_is_available"`
}

func (HostelFacilityModel) TableName() string { return "hostel_facilities" }

/* =========================================================
   COMPLAINTS
========================================================= */

const (
	ComplaintPending    = "PENDING"
	ComplaintInProgress = "IN_PROGRESS"
	ComplaintResolved   = "RESOLVED"
	ComplaintClosed     = "CLOSED"
)

type HostelComplaintModel struct {
	ComplaintID           uuid.UUID  `gorm:"column:hostel_complaint_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_complaint_id"`
	ComplaintStudentID    uuid.UUID  `gorm:"column:hostel_complaint_student_id;type:uuid;not null;index" json:"hostel_complaint_student_id"`
	ComplaintHostelID     uuid.UUID  `gorm:"column:hostel_complaint_hostel_id;type:uuid;not null;index" json:"hostel_complaint_hostel_id"`
	ComplaintRoomID       *uuid.UUID `gorm:"column:hostel_complaint_room_id;type:uuid" json:"hostel_complaint_room_id,omitempty"`
	ComplaintTitle        string     `gorm:"column:hostel_complaint_title;type:varchar(200);not null" json:"hostel_complaint_title"`
	ComplaintDescription  string     `gorm:"column:hostel_complaint_description;type:text;not null" json:"hostel_complaint_description"`
	ComplaintStatus       string     `gorm:"column:hostel_complaint_status;type:varchar(20);not null;default:'PENDING';index" json:"hostel_complaint_status"`
	ComplaintFiledDate    time.Time  `gorm:"column:hostel_complaint_filed_date;type:timestamptz;not null;default:now();autoCreateTime" json:"hostel_complaint_filed_date"`
	ComplaintResolvedDate *time.Time `gorm:"column:hostel_complaint_resolved_date;type:timestamptz" json:"hostel_complaint_resolved_date,omitempty"`
	ComplaintResolvedBy   *uuid.UUID `gorm:"column:hostel_complaint_resolved_by;type:uuid" json:"hostel_complaint_resolved_by,omitempty"`
	ComplaintRemarks      *string    `gorm:"column:hostel_complaint_resolution_remarks;type:text" json:"hostel_complaint_resolution_remarks,omitempty"`
}

func (HostelComplaintModel) TableName() string { return "hostel_complaints" }
