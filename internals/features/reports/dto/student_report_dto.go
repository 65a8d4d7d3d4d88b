package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudentReportQuery struct {
	ClassID   *uuid.UUID
	SectionID *uuid.UUID
	Gender    string
	Status    string
}

type StudentReportRow struct {
	AdmissionNumber string          `json:"admission_number"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Gender          *string         `json:"gender,omitempty"`
	DateOfBirth     *datatypes.Date `json:"date_of_birth,omitempty"`
	ClassName       *string         `json:"class_name,omitempty"`
	SectionName     *string         `json:"section_name,omitempty"`
	RollNumber      *string         `json:"roll_number,omitempty"`
	FatherName      string          `json:"father_name"`
	FatherPhone     string          `json:"father_phone"`
	MotherName      string          `json:"mother_name"`
	Address         *string         `json:"address,omitempty"`
	Status          string          `json:"status"`
	AdmissionDate   datatypes.Date  `json:"admission_date"`
}

// CSVHeader is the fixed column order of the student export.
var CSVHeader = []string{
	"Admission No", "First Name", "Last Name", "Gender", "Date of Birth", "Class", "Section",
	"Roll No", "Father Name", "Father Phone", "Mother Name", "Address", "Status", "Admission Date",
}

func (q StudentReportQuery) Normalize() StudentReportQuery {
	q.Gender = strings.ToUpper(strings.TrimSpace(q.Gender))
	q.Status = strings.ToUpper(strings.TrimSpace(q.Status))
	return q
}
