package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/academics/dto"
	"schooloffice_backend/internals/features/academics/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

// CheckSubmissionMarks rejects marks above the homework's max_marks.
func CheckSubmissionMarks(tx *gorm.DB, homeworkID uuid.UUID, marks *decimal.Decimal) error {
	if marks == nil {
		return nil
	}
	var max int
	if err := tx.Model(&model.HomeworkModel{}).
		Where("homework_id = ?", homeworkID).
		Pluck("homework_max_marks", &max).Error; err != nil {
		return err
	}
	if marks.GreaterThan(decimal.NewFromInt(int64(max))) {
		return apperr.Validation("marks_obtained", "marks cannot exceed the homework's maximum marks")
	}
	return nil
}

// GradeSubmission records marks and remarks on a submission as the actor.
func GradeSubmission(ctx context.Context, db *gorm.DB, id uuid.UUID, in dto.GradeSubmissionRequest, actor uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	var s model.HomeworkSubmissionModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("homework_submission_id = ?", id).Take(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("homework submission")
			}
			return err
		}
		marks := helper.Cents(in.MarksObtained)
		if err := CheckSubmissionMarks(tx, s.HomeworkSubmissionHomeworkID, &marks); err != nil {
			return err
		}
		now := time.Now()
		s.HomeworkSubmissionMarksObtained = &marks
		s.HomeworkSubmissionTeacherRemarks = helper.TrimPtr(in.TeacherRemarks)
		s.HomeworkSubmissionGradedBy = &actor
		s.HomeworkSubmissionGradedAt = &now
		return tx.Select(
			"homework_submission_marks_obtained", "homework_submission_teacher_remarks",
			"homework_submission_graded_by", "homework_submission_graded_at",
		).Updates(&s).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "grade submission")
	}
	return &s, nil
}
