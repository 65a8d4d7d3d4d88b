package service

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/academics/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

type band struct {
	min    int64
	letter string
}

// boundaries belong to the higher band
var gradeBands = []band{{90, "A+"}, {80, "A"}, {70, "B"}, {60, "C"}, {50, "D"}}

var hundred = decimal.NewFromInt(100)

// GradeLetter maps obtained/outOf to a letter. outOf must be positive.
// obtained*100 >= min*outOf is checked exactly, so 33.3 of 37 is A+.
func GradeLetter(obtained decimal.Decimal, outOf int) (string, error) {
	if outOf <= 0 {
		return "", apperr.Validation("grade_exam_schedule_id", "exam schedule has no total marks; cannot compute a grade")
	}
	scaled := obtained.Mul(hundred)
	total := decimal.NewFromInt(int64(outOf))
	for _, b := range gradeBands {
		if scaled.GreaterThanOrEqual(total.Mul(decimal.NewFromInt(b.min))) {
			return b.letter, nil
		}
	}
	return "F", nil
}

// ComputeGrade fills total and letter from the schedule's total marks.
func ComputeGrade(g *model.GradeModel, schedule model.ExamScheduleModel) error {
	g.GradeTotalMarks = helper.SumCents(g.GradeTheoryMarks, g.GradePracticalMarks)
	if g.GradeIsAbsent {
		g.GradeTheoryMarks, g.GradePracticalMarks, g.GradeTotalMarks = decimal.Zero, decimal.Zero, decimal.Zero
	}
	outOf := schedule.ExamScheduleTotalMarks
	if outOf > 0 && g.GradeTotalMarks.GreaterThan(decimal.NewFromInt(int64(outOf))) {
		return apperr.Validation("grade_theory_marks", "marks exceed the schedule total")
	}
	letter, err := GradeLetter(g.GradeTotalMarks, outOf)
	if err != nil {
		return err
	}
	g.GradeLetter = letter
	return nil
}

// PrepareGrade loads the schedule inside tx and derives the grade fields.
func PrepareGrade(tx *gorm.DB, g *model.GradeModel) error {
	var s model.ExamScheduleModel
	if err := tx.Where("exam_schedule_id = ?", g.GradeExamScheduleID).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("grade_exam_schedule_id", "exam schedule does not exist")
		}
		return err
	}
	return ComputeGrade(g, s)
}
