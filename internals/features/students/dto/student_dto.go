package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/students/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type StudentRequest struct {
	StudentUserID           uuid.UUID  `json:"student_user_id"            validate:"required"`
	StudentAdmissionNumber  string     `json:"student_admission_number"   validate:"notblank,max=50"`
	StudentAdmissionDate    string     `json:"student_admission_date"     validate:"required,datetime=2006-01-02"`
	StudentCampusID         uuid.UUID  `json:"student_campus_id"          validate:"required"`
	StudentCurrentClassID   *uuid.UUID `json:"student_current_class_id"`
	StudentCurrentSectionID *uuid.UUID `json:"student_current_section_id"`
	StudentRollNumber       *string    `json:"student_roll_number"        validate:"omitempty,max=20"`

	StudentBloodGroup  *string `json:"student_blood_group"  validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	StudentReligion    *string `json:"student_religion"     validate:"omitempty,max=50"`
	StudentCaste       *string `json:"student_caste"        validate:"omitempty,max=50"`
	StudentNationality *string `json:"student_nationality"  validate:"omitempty,max=50"`

	StudentFatherName       string  `json:"student_father_name"        validate:"notblank,max=200"`
	StudentFatherPhone      string  `json:"student_father_phone"       validate:"notblank,max=20"`
	StudentFatherOccupation *string `json:"student_father_occupation"  validate:"omitempty,max=100"`
	StudentFatherEmail      *string `json:"student_father_email"       validate:"omitempty,email"`
	StudentMotherName       string  `json:"student_mother_name"        validate:"notblank,max=200"`
	StudentMotherPhone      *string `json:"student_mother_phone"       validate:"omitempty,max=20"`
	StudentMotherOccupation *string `json:"student_mother_occupation"  validate:"omitempty,max=100"`
	StudentMotherEmail      *string `json:"student_mother_email"       validate:"omitempty,email"`
	StudentGuardianName     *string `json:"student_guardian_name"      validate:"omitempty,max=200"`
	StudentGuardianPhone    *string `json:"student_guardian_phone"     validate:"omitempty,max=20"`
	StudentGuardianRelation *string `json:"student_guardian_relation"  validate:"omitempty,max=50"`
	StudentGuardianEmail    *string `json:"student_guardian_email"     validate:"omitempty,email"`

	StudentEmergencyContactName     string `json:"student_emergency_contact_name"     validate:"notblank,max=200"`
	StudentEmergencyContactPhone    string `json:"student_emergency_contact_phone"    validate:"notblank,max=20"`
	StudentEmergencyContactRelation string `json:"student_emergency_contact_relation" validate:"notblank,max=50"`

	StudentPreviousSchool    *string `json:"student_previous_school" validate:"omitempty,max=200"`
	StudentPreviousClass     *string `json:"student_previous_class"  validate:"omitempty,max=50"`
	StudentMedicalConditions *string `json:"student_medical_conditions"`
	StudentAllergies         *string `json:"student_allergies"`
	StudentMedications       *string `json:"student_medications"`

	StudentStatus        string     `json:"student_status"         validate:"omitempty,oneof=ACTIVE INACTIVE GRADUATED TRANSFERRED EXPELLED"`
	StudentUsesTransport bool       `json:"student_uses_transport"`
	StudentRouteID       *uuid.UUID `json:"student_route_id"`
	StudentIsHosteler    bool       `json:"student_is_hosteler"`
	StudentHostelRoomID  *uuid.UUID `json:"student_hostel_room_id"`
}

func (r StudentRequest) ToModel() model.StudentModel {
	m := model.StudentModel{
		StudentUserID:           r.StudentUserID,
		StudentAdmissionNumber:  helper.Upper(r.StudentAdmissionNumber),
		StudentAdmissionDate:    dbtime.ParseDate(r.StudentAdmissionDate),
		StudentCampusID:         r.StudentCampusID,
		StudentCurrentClassID:   helper.UUIDPtr(r.StudentCurrentClassID),
		StudentCurrentSectionID: helper.UUIDPtr(r.StudentCurrentSectionID),
		StudentRollNumber:       helper.TrimPtr(r.StudentRollNumber),

		StudentBloodGroup:  helper.UpperPtr(r.StudentBloodGroup),
		StudentReligion:    helper.TrimPtr(r.StudentReligion),
		StudentCaste:       helper.TrimPtr(r.StudentCaste),
		StudentNationality: "Pakistani",

		StudentFatherName:       strings.TrimSpace(r.StudentFatherName),
		StudentFatherPhone:      strings.TrimSpace(r.StudentFatherPhone),
		StudentFatherOccupation: helper.TrimPtr(r.StudentFatherOccupation),
		StudentFatherEmail:      helper.TrimPtr(r.StudentFatherEmail),
		StudentMotherName:       strings.TrimSpace(r.StudentMotherName),
		StudentMotherPhone:      helper.TrimPtr(r.StudentMotherPhone),
		StudentMotherOccupation: helper.TrimPtr(r.StudentMotherOccupation),
		StudentMotherEmail:      helper.TrimPtr(r.StudentMotherEmail),
		StudentGuardianName:     helper.TrimPtr(r.StudentGuardianName),
		StudentGuardianPhone:    helper.TrimPtr(r.StudentGuardianPhone),
		StudentGuardianRelation: helper.TrimPtr(r.StudentGuardianRelation),
		StudentGuardianEmail:    helper.TrimPtr(r.StudentGuardianEmail),

		StudentEmergencyContactName:     strings.TrimSpace(r.StudentEmergencyContactName),
		StudentEmergencyContactPhone:    strings.TrimSpace(r.StudentEmergencyContactPhone),
		StudentEmergencyContactRelation: strings.TrimSpace(r.StudentEmergencyContactRelation),

		StudentPreviousSchool:    helper.TrimPtr(r.StudentPreviousSchool),
		StudentPreviousClass:     helper.TrimPtr(r.StudentPreviousClass),
		StudentMedicalConditions: helper.TrimPtr(r.StudentMedicalConditions),
		StudentAllergies:         helper.TrimPtr(r.StudentAllergies),
		StudentMedications:       helper.TrimPtr(r.StudentMedications),

		StudentStatus:        model.StudentActive,
		StudentUsesTransport: r.StudentUsesTransport,
		StudentRouteID:       helper.UUIDPtr(r.StudentRouteID),
		StudentIsHosteler:    r.StudentIsHosteler,
		StudentHostelRoomID:  helper.UUIDPtr(r.StudentHostelRoomID),
	}
	if n := helper.TrimPtr(r.StudentNationality); n != nil {
		m.StudentNationality = *n
	}
	if r.StudentStatus != "" {
		m.StudentStatus = r.StudentStatus
	}
	// a route or room only makes sense with the matching flag
	if !m.StudentUsesTransport {
		m.StudentRouteID = nil
	}
	if !m.StudentIsHosteler {
		m.StudentHostelRoomID = nil
	}
	return m
}
