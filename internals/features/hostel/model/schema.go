package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{&HostelModel{}, &HostelRoomModel{}, &HostelFacilityModel{}, &HostelComplaintModel{}},
		ForeignKeys: []database.ForeignKey{
			fk("hostels", "hostel_campus_id", "campuses", "campus_id", cascade),
			fk("hostels", "hostel_warden_id", "users", "user_id", setNull),
			fk("hostel_rooms", "hostel_room_hostel_id", "hostels", "hostel_id", cascade),
			fk("hostel_facilities", "hostel_facility_hostel_id", "hostels", "hostel_id", cascade),
			fk("hostel_complaints", "hostel_complaint_student_id", "students", "student_id", cascade),
			fk("hostel_complaints", "hostel_complaint_hostel_id", "hostels", "hostel_id", cascade),
			fk("hostel_complaints", "hostel_complaint_room_id", "hostel_rooms", "hostel_room_id", cascade),
			fk("hostel_complaints", "hostel_complaint_resolved_by", "users", "user_id", setNull),
		},
		Statements: []string{
			database.Check("hostel_rooms", "ck_hostel_rooms_capacity", "hostel_room_capacity > 0"),
		},
	}
}
