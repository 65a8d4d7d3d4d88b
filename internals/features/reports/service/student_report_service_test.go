package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"schooloffice_backend/internals/features/reports/dto"
)

func TestReportFilename(t *testing.T) {
	at := time.Date(2026, 4, 9, 7, 5, 59, 0, time.Local)
	assert.Equal(t, "student_report_20260409_0705.csv", ReportFilename(at))
}

func TestWriteStudentCSV(t *testing.T) {
	gender, class, roll := "F", "Grade 5", "12"
	dob := datatypes.Date(time.Date(2015, 2, 3, 0, 0, 0, 0, time.Local))
	rows := []dto.StudentReportRow{
		{
			AdmissionNumber: "ADM-001", FirstName: "Ayesha", LastName: "Khan",
			Gender: &gender, DateOfBirth: &dob, ClassName: &class, RollNumber: &roll,
			FatherName: "Imran Khan", FatherPhone: "0300-1234567", MotherName: "Sana Khan",
			Status: "ACTIVE", AdmissionDate: datatypes.Date(time.Date(2024, 8, 1, 0, 0, 0, 0, time.Local)),
		},
		{AdmissionNumber: "ADM-002", FirstName: "Bilal", Status: "TRANSFERRED"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStudentCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, dto.CSVHeader, records[0])
	assert.Equal(t, []string{
		"ADM-001", "Ayesha", "Khan", "Female", "2015-02-03", "Grade 5", "-", "12",
		"Imran Khan", "0300-1234567", "Sana Khan", "", "Active", "2024-08-01",
	}, records[1])
	assert.Equal(t, "-", records[2][5])
	assert.Equal(t, "-", records[2][6])
	assert.Equal(t, "Transferred", records[2][12])
}

func TestStudentReportQuery_Normalize(t *testing.T) {
	q := dto.StudentReportQuery{Gender: " m ", Status: "active"}.Normalize()
	assert.Equal(t, "M", q.Gender)
	assert.Equal(t, "ACTIVE", q.Status)
}
