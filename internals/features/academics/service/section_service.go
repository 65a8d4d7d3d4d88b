package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/academics/model"
)

// DecorateSections fills current strength (ACTIVE students) and available seats.
func DecorateSections(ctx context.Context, db *gorm.DB, items []model.SectionModel) error {
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].SectionID
	}
	var rows []struct {
		SectionID uuid.UUID
		N         int
	}
	if err := db.WithContext(ctx).Table("students").
		Select("student_current_section_id AS section_id, COUNT(*) AS n").
		Where("student_current_section_id IN ? AND student_status = ?", ids, "ACTIVE").
		Group("student_current_section_id").
		Scan(&rows).Error; err != nil {
		return err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.SectionID] = r.N
	}
	for i := range items {
		n := counts[items[i].SectionID]
		items[i].SectionCurrentStrength = n
		items[i].SectionAvailableSeats = items[i].SectionCapacity - n
	}
	return nil
}
