package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/academics/dto"
	"schooloffice_backend/internals/features/academics/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

// MarkSectionAttendance upserts one attendance row per entry for the given
// date. Every student must be placed in the section.
func MarkSectionAttendance(ctx context.Context, db *gorm.DB, in dto.BulkAttendanceRequest, actor uuid.UUID) ([]model.AttendanceModel, error) {
	date := dbtime.ParseDate(in.Date)
	ids := make([]uuid.UUID, 0, len(in.Entries))
	seen := make(map[uuid.UUID]bool, len(in.Entries))
	for i, e := range in.Entries {
		if seen[e.StudentID] {
			return nil, apperr.Validation(fmt.Sprintf("entries[%d].student_id", i), "student listed twice")
		}
		seen[e.StudentID] = true
		ids = append(ids, e.StudentID)
	}

	var rows []model.AttendanceModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var placed []uuid.UUID
		if err := tx.Table("students").
			Where("student_current_section_id = ? AND student_id IN ?", in.SectionID, ids).
			Pluck("student_id", &placed).Error; err != nil {
			return err
		}
		if len(placed) != len(ids) {
			ok := make(map[uuid.UUID]bool, len(placed))
			for _, id := range placed {
				ok[id] = true
			}
			fields := map[string][]string{}
			for i, id := range ids {
				if !ok[id] {
					key := fmt.Sprintf("entries[%d].student_id", i)
					fields[key] = append(fields[key], "student is not in this section")
				}
			}
			return apperr.ValidationFields(fields)
		}

		var marker *uuid.UUID
		if actor != uuid.Nil {
			marker = &actor
		}
		rows = make([]model.AttendanceModel, len(in.Entries))
		for i, e := range in.Entries {
			rows[i] = model.AttendanceModel{
				AttendanceStudentID: e.StudentID,
				AttendanceDate:      date,
				AttendanceStatus:    e.Status,
				AttendanceRemarks:   helper.TrimPtr(e.Remarks),
				AttendanceMarkedBy:  marker,
			}
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_remarks", "attendance_marked_by"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "mark section attendance")
	}
	return rows, nil
}
