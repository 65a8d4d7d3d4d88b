package controller

import (
	"time"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/hostel/dto"
	"schooloffice_backend/internals/features/hostel/model"
	"schooloffice_backend/internals/features/hostel/service"
	helper "schooloffice_backend/internals/helpers"
)

const area = constants.AreaHostel

func HostelResource() *crud.Resource[model.HostelModel, dto.HostelRequest] {
	return &crud.Resource[model.HostelModel, dto.HostelRequest]{
		Name:    "hostel",
		Area:    area,
		OrderBy: "hostel_name",
		Search:  []string{"hostels.hostel_name"},
		Filters: []crud.Filter{
			{Param: "campus", Column: "hostel_campus_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "hostel_type", Kind: crud.FilterEnum},
			{Param: "is_active", Column: "hostel_is_active", Kind: crud.FilterBool},
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.HostelModel) error {
			if m.HostelWardenID == nil {
				return nil
			}
			return helper.CheckUserRole(w.Tx, *m.HostelWardenID, "hostel_warden_id", constants.RoleHostelWarden)
		},
	}
}

func HostelRoomResource() *crud.Resource[model.HostelRoomModel, dto.HostelRoomRequest] {
	return &crud.Resource[model.HostelRoomModel, dto.HostelRoomRequest]{
		Name:     "room",
		Area:     area,
		OrderBy:  "hostel_room_hostel_id, hostel_room_number",
		PageSize: 20,
		Search:   []string{"hostel_rooms.hostel_room_number"},
		Filters: []crud.Filter{
			{Param: "hostel", Column: "hostel_room_hostel_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "hostel_room_type", Kind: crud.FilterEnum},
			{Param: "floor", Column: "hostel_room_floor", Kind: crud.FilterInt},
			{Param: "is_active", Column: "hostel_room_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{
			Field: "hostel_room_number", Columns: []string{"hostel_room_hostel_id", "hostel_room_number"},
			Message: "this hostel already has a room with this number",
		}},
		BeforeWrite: func(w crud.WriteContext, old, m *model.HostelRoomModel) error {
			return service.CheckRoomCapacity(w.Ctx, w.Tx, old, m)
		},
		Decorate: service.DecorateRooms,
	}
}

func HostelFacilityResource() *crud.Resource[model.HostelFacilityModel, dto.HostelFacilityRequest] {
	return &crud.Resource[model.HostelFacilityModel, dto.HostelFacilityRequest]{
		Name:    "facility",
		Area:    area,
		OrderBy: "hostel_facility_name",
		Search:  []string{"hostel_facilities.hostel_facility_name"},
		Filters: []crud.Filter{
			{Param: "hostel", Column: "hostel_facility_hostel_id", Kind: crud.FilterUUID},
			{Param: "is_available", Column: "hostel_facility_is_available", Kind: crud.FilterBool},
		},
	}
}

func ComplaintResource() *crud.Resource[model.HostelComplaintModel, dto.ComplaintRequest] {
	return &crud.Resource[model.HostelComplaintModel, dto.ComplaintRequest]{
		Name:    "complaint",
		Area:    area,
		OrderBy: "hostel_complaint_filed_date DESC",
		Search:  []string{"hostel_complaints.hostel_complaint_title"},
		Filters: []crud.Filter{
			{Param: "student", Column: "hostel_complaint_student_id", Kind: crud.FilterUUID},
			{Param: "hostel", Column: "hostel_complaint_hostel_id", Kind: crud.FilterUUID},
			{Param: "room", Column: "hostel_complaint_room_id", Kind: crud.FilterUUID},
			{Param: "status", Column: "hostel_complaint_status", Kind: crud.FilterEnum},
		},
		Keep: []string{
			"hostel_complaint_resolved_date", "hostel_complaint_resolved_by", "hostel_complaint_resolution_remarks",
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.HostelComplaintModel) error {
			if err := service.CheckComplaintRoom(w.Tx, m); err != nil {
				return err
			}
			service.ApplyComplaintStatus(m, w.ActorPtr(), time.Now())
			return nil
		},
	}
}
