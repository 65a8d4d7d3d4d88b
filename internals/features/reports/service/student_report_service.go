package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/reports/dto"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

// StudentReport lists students matching q ordered by class level, then first name.
func StudentReport(ctx context.Context, db *gorm.DB, q dto.StudentReportQuery) ([]dto.StudentReportRow, error) {
	q = q.Normalize()
	tx := db.WithContext(ctx).Table("students AS s").
		Select(`s.student_admission_number AS admission_number,
			u.user_first_name AS first_name, u.user_last_name AS last_name,
			u.user_gender AS gender, u.user_date_of_birth AS date_of_birth,
			c.class_name, sec.section_name, s.student_roll_number AS roll_number,
			s.student_father_name AS father_name, s.student_father_phone AS father_phone,
			s.student_mother_name AS mother_name, u.user_address AS address,
			s.student_status AS status, s.student_admission_date AS admission_date`).
		Joins("JOIN users u ON u.user_id = s.student_user_id").
		Joins("LEFT JOIN classes c ON c.class_id = s.student_current_class_id").
		Joins("LEFT JOIN sections sec ON sec.section_id = s.student_current_section_id")

	if q.ClassID != nil {
		tx = tx.Where("s.student_current_class_id = ?", *q.ClassID)
	}
	if q.SectionID != nil {
		tx = tx.Where("s.student_current_section_id = ?", *q.SectionID)
	}
	if q.Gender != "" {
		tx = tx.Where("u.user_gender = ?", q.Gender)
	}
	if q.Status != "" {
		tx = tx.Where("s.student_status = ?", q.Status)
	}

	rows := []dto.StudentReportRow{}
	err := tx.Order("c.class_numeric_value ASC NULLS LAST, u.user_first_name ASC").Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "student report")
	}
	return rows, nil
}

// ReportFilename is student_report_YYYYMMDD_HHMM.csv for at.
func ReportFilename(at time.Time) string {
	return "student_report_" + at.Format("20060102_1504") + ".csv"
}

var genderLabels = map[string]string{"M": "Male", "F": "Female", "O": "Other"}

// WriteStudentCSV writes the header and one line per row.
func WriteStudentCSV(w io.Writer, rows []dto.StudentReportRow) error {
	cw := csv.NewWriter(w)
	title := cases.Title(language.English)
	if err := cw.Write(dto.CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r, title)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(r dto.StudentReportRow, title cases.Caser) []string {
	gender := ""
	if r.Gender != nil {
		gender = genderLabels[*r.Gender]
	}
	dob := ""
	if r.DateOfBirth != nil {
		dob = dbtime.Format(*r.DateOfBirth)
	}
	return []string{
		r.AdmissionNumber,
		r.FirstName,
		r.LastName,
		gender,
		dob,
		orDash(r.ClassName),
		orDash(r.SectionName),
		helper.Deref(r.RollNumber),
		r.FatherName,
		r.FatherPhone,
		r.MotherName,
		helper.Deref(r.Address),
		title.String(strings.ToLower(r.Status)),
		dbtime.Format(r.AdmissionDate),
	}
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}
