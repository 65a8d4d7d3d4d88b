package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"schooloffice_backend/internals/features/academics/dto"
	"schooloffice_backend/internals/features/academics/model"
)

const recentPastExams = 10

// ExamOverview returns upcoming examinations (start >= today, soonest first)
// and the most recent past ones (end < today).
func ExamOverview(ctx context.Context, db *gorm.DB, today time.Time) (dto.ExamOverview, error) {
	var upcoming, past []model.ExaminationModel
	q := db.WithContext(ctx)
	if err := q.Where("examination_start_date >= ?", today).
		Order("examination_start_date").Find(&upcoming).Error; err != nil {
		return dto.ExamOverview{}, err
	}
	if err := q.Where("examination_end_date < ?", today).
		Order("examination_end_date DESC").Limit(recentPastExams).Find(&past).Error; err != nil {
		return dto.ExamOverview{}, err
	}
	return dto.NewExamOverview(today, upcoming, past), nil
}
