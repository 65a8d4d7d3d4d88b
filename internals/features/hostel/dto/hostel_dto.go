package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/features/hostel/model"
	helper "schooloffice_backend/internals/helpers"
)

type HostelRequest struct {
	HostelName       string     `json:"hostel_name"        validate:"notblank,max=200"`
	HostelType       string     `json:"hostel_type"        validate:"required,oneof=BOYS GIRLS"`
	HostelCampusID   uuid.UUID  `json:"hostel_campus_id"   validate:"required"`
	HostelWardenID   *uuid.UUID `json:"hostel_warden_id"`
	HostelAddress    string     `json:"hostel_address"     validate:"notblank"`
	HostelTotalRooms int        `json:"hostel_total_rooms" validate:"gte=0"`
	HostelIsActive   *bool      `json:"hostel_is_active"`
}

func (r HostelRequest) ToModel() model.HostelModel {
	return model.HostelModel{
		HostelName:       strings.TrimSpace(r.HostelName),
		HostelType:       r.HostelType,
		HostelCampusID:   r.HostelCampusID,
		HostelWardenID:   r.HostelWardenID,
		HostelAddress:    strings.TrimSpace(r.HostelAddress),
		HostelTotalRooms: r.HostelTotalRooms,
		HostelIsActive:   helper.ValueOr(r.HostelIsActive, true),
	}
}

type HostelRoomRequest struct {
	HostelRoomHostelID   uuid.UUID       `json:"hostel_room_hostel_id"   validate:"required"`
	HostelRoomNumber     string          `json:"hostel_room_number"      validate:"notblank,max=50"`
	HostelRoomType       string          `json:"hostel_room_type"        validate:"required,oneof=SINGLE DOUBLE TRIPLE DORMITORY"`
	HostelRoomCapacity   int             `json:"hostel_room_capacity"    validate:"gte=1"`
	HostelRoomFloor      int             `json:"hostel_room_floor"       validate:"gte=0"`
	HostelRoomMonthlyFee decimal.Decimal `json:"hostel_room_monthly_fee" validate:"gte=0"`
	HostelRoomIsActive   *bool           `json:"hostel_room_is_active"`
}

func (r HostelRoomRequest) ToModel() model.HostelRoomModel {
	return model.HostelRoomModel{
		HostelRoomHostelID:   r.HostelRoomHostelID,
		HostelRoomNumber:     helper.Upper(r.HostelRoomNumber),
		HostelRoomType:       r.HostelRoomType,
		HostelRoomCapacity:   r.HostelRoomCapacity,
		HostelRoomFloor:      r.HostelRoomFloor,
		HostelRoomMonthlyFee: helper.Cents(r.HostelRoomMonthlyFee),
		HostelRoomIsActive:   helper.ValueOr(r.HostelRoomIsActive, true),
	}
}

type HostelFacilityRequest struct {
	HostelFacilityHostelID    uuid.UUID `json:"hostel_facility_hostel_id"    validate:"required"`
	HostelFacilityName        string    `json:"hostel_facility_name"         validate:"notblank,max=200"`
	HostelFacilityDescription *string   `json:"hostel_facility_description"`
	HostelFacilityIsAvailable *bool     `json:"hostel_facility_is_available"`
}

func (r HostelFacilityRequest) ToModel() model.HostelFacilityModel {
	return model.HostelFacilityModel{
		HostelFacilityHostelID:    r.HostelFacilityHostelID,
		HostelFacilityName:        strings.TrimSpace(r.HostelFacilityName),
		HostelFacilityDescription: helper.TrimPtr(r.HostelFacilityDescription),
		HostelFacilityIsAvailable: helper.ValueOr(r.HostelFacilityIsAvailable, true),
	}
}

type ComplaintRequest struct {
	StudentID   uuid.UUID  `json:"hostel_complaint_student_id"  validate:"required"`
	HostelID    uuid.UUID  `json:"hostel_complaint_hostel_id"   validate:"required"`
	RoomID      *uuid.UUID `json:"hostel_complaint_room_id"`
	Title       string     `json:"hostel_complaint_title"       validate:"notblank,max=200"`
	Description string     `json:"hostel_complaint_description" validate:"notblank"`
	Status      string     `json:"hostel_complaint_status"      validate:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED CLOSED"`
}

func (r ComplaintRequest) ToModel() model.HostelComplaintModel {
	m := model.HostelComplaintModel{
		ComplaintStudentID:   r.StudentID,
		ComplaintHostelID:    r.HostelID,
		ComplaintRoomID:      r.RoomID,
		ComplaintTitle:       strings.TrimSpace(r.Title),
		ComplaintDescription: strings.TrimSpace(r.Description),
		ComplaintStatus:      model.ComplaintPending,
	}
	if r.Status != "" {
		m.ComplaintStatus = r.Status
	}
	return m
}

type ResolveComplaintRequest struct {
	Remarks *string `json:"hostel_complaint_resolution_remarks"`
}
