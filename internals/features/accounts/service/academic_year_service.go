package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/accounts/model"
	"schooloffice_backend/internals/helpers/apperr"
)

// SetCurrentAcademicYear makes id the only current year of its campus.
// Calling it again for the same year is a no-op.
func SetCurrentAcademicYear(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.AcademicYearModel, error) {
	var out model.AcademicYearModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target model.AcademicYearModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("academic_year_id = ?", id).
			Take(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("academic year")
			}
			return err
		}
		if err := ClearCurrentYears(tx, target.AcademicYearCampusID, id); err != nil {
			return err
		}
		if !target.AcademicYearIsCurrent {
			if err := tx.Model(&target).Update("academic_year_is_current", true).Error; err != nil {
				return err
			}
			target.AcademicYearIsCurrent = true
		}
		out = target
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "set current academic year")
	}
	return &out, nil
}

// ClearCurrentYears locks the campus' years and unsets the flag on all of
// them except keep. Must run inside a transaction.
func ClearCurrentYears(tx *gorm.DB, campusID, keep uuid.UUID) error {
	var ids []uuid.UUID
	if err := tx.Model(&model.AcademicYearModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("academic_year_campus_id = ?", campusID).
		Pluck("academic_year_id", &ids).Error; err != nil {
		return err
	}
	return tx.Model(&model.AcademicYearModel{}).
		Where("academic_year_campus_id = ? AND academic_year_id <> ? AND academic_year_is_current", campusID, keep).
		Update("academic_year_is_current", false).Error
}

// CurrentAcademicYear returns the campus' current year, or NotFound.
func CurrentAcademicYear(ctx context.Context, db *gorm.DB, campusID uuid.UUID) (*model.AcademicYearModel, error) {
	var y model.AcademicYearModel
	err := db.WithContext(ctx).
		Where("academic_year_campus_id = ? AND academic_year_is_current", campusID).
		Take(&y).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("current academic year")
		}
		return nil, err
	}
	return &y, nil
}
