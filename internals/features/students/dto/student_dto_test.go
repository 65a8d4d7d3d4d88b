package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schooloffice_backend/internals/features/students/model"
	helper "schooloffice_backend/internals/helpers"
)

func validStudent() StudentRequest {
	return StudentRequest{
		StudentUserID:                   uuid.New(),
		StudentAdmissionNumber:          " adm-001 ",
		StudentAdmissionDate:            "2025-04-01",
		StudentCampusID:                 uuid.New(),
		StudentFatherName:               "Imran Khan",
		StudentFatherPhone:              "0300",
		StudentMotherName:               "Ayesha",
		StudentEmergencyContactName:     "Imran Khan",
		StudentEmergencyContactPhone:    "0300",
		StudentEmergencyContactRelation: "Father",
	}
}

func TestStudentRequest_Defaults(t *testing.T) {
	in := validStudent()
	assert.Nil(t, helper.NewValidator().Struct(in))

	m := in.ToModel()
	assert.Equal(t, "ADM-001", m.StudentAdmissionNumber)
	assert.Equal(t, "Pakistani", m.StudentNationality)
	assert.Equal(t, model.StudentActive, m.StudentStatus)
}

func TestStudentRequest_FacilitiesFollowFlags(t *testing.T) {
	in := validStudent()
	route, room := uuid.New(), uuid.New()
	in.StudentRouteID, in.StudentHostelRoomID = &route, &room

	m := in.ToModel()
	assert.Nil(t, m.StudentRouteID)
	assert.Nil(t, m.StudentHostelRoomID)

	in.StudentUsesTransport, in.StudentIsHosteler = true, true
	m = in.ToModel()
	assert.Equal(t, &route, m.StudentRouteID)
	assert.Equal(t, &room, m.StudentHostelRoomID)
}

func TestStudentRequest_Rejects(t *testing.T) {
	in := validStudent()
	bg := "C+"
	in.StudentBloodGroup = &bg
	in.StudentEmergencyContactPhone = " "
	in.StudentStatus = "ALUMNI"

	errs := helper.NewValidator().Struct(in)
	assert.Contains(t, errs, "student_blood_group")
	assert.Contains(t, errs, "student_emergency_contact_phone")
	assert.Contains(t, errs, "student_status")
}

func TestSiblingRequest_DistinctStudents(t *testing.T) {
	id := uuid.New()
	errs := helper.NewValidator().Struct(SiblingRequest{SiblingStudent1ID: id, SiblingStudent2ID: id, SiblingRelation: "TWIN"})
	assert.Contains(t, errs, "sibling_student2_id")
}
