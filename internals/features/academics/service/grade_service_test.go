package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/academics/model"
	"schooloffice_backend/internals/helpers/apperr"
)

func marks(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGradeLetter_Boundaries(t *testing.T) {
	cases := []struct {
		obtained string
		outOf    int
		want     string
	}{
		{"100", 100, "A+"}, {"90", 100, "A+"}, {"89.99", 100, "A"}, {"80", 100, "A"}, {"70", 100, "B"},
		{"60", 100, "C"}, {"50", 100, "D"}, {"49.99", 100, "F"}, {"0", 100, "F"},
		{"45", 50, "A+"},
		// exactly 90% where the float quotient lands just under 90
		{"8.1", 9, "A+"}, {"11.7", 13, "A+"}, {"33.3", 37, "A+"},
		{"33.29", 37, "A"},
		// exactly on the lower bands
		{"10.4", 13, "A"}, {"25.9", 37, "B"}, {"5.4", 9, "C"}, {"6.5", 13, "D"},
	}
	for _, tc := range cases {
		got, err := GradeLetter(marks(tc.obtained), tc.outOf)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s of %d", tc.obtained, tc.outOf)
	}
}

func TestGradeLetter_ZeroTotalIsValidationError(t *testing.T) {
	_, err := GradeLetter(marks("10"), 0)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestComputeGrade(t *testing.T) {
	schedule := model.ExamScheduleModel{ExamScheduleTotalMarks: 80}

	g := model.GradeModel{GradeTheoryMarks: marks("50"), GradePracticalMarks: marks("14.5")}
	require.NoError(t, ComputeGrade(&g, schedule))
	assert.Equal(t, "64.50", g.GradeTotalMarks.StringFixed(2))
	assert.Equal(t, "A", g.GradeLetter) // 80.6%

	over := model.GradeModel{GradeTheoryMarks: marks("70"), GradePracticalMarks: marks("20")}
	assert.True(t, apperr.Is(ComputeGrade(&over, schedule), apperr.KindValidation))

	absent := model.GradeModel{GradeTheoryMarks: marks("70"), GradeIsAbsent: true}
	require.NoError(t, ComputeGrade(&absent, schedule))
	assert.True(t, absent.GradeTotalMarks.IsZero())
	assert.Equal(t, "F", absent.GradeLetter)

	zero := model.GradeModel{GradeTheoryMarks: marks("1")}
	assert.True(t, apperr.Is(ComputeGrade(&zero, model.ExamScheduleModel{}), apperr.KindValidation))
}

func TestComputeGrade_ExactNinetyPercent(t *testing.T) {
	g := model.GradeModel{GradeTheoryMarks: marks("11.7")}
	require.NoError(t, ComputeGrade(&g, model.ExamScheduleModel{ExamScheduleTotalMarks: 13}))
	assert.Equal(t, "A+", g.GradeLetter)

	g = model.GradeModel{GradeTheoryMarks: marks("30"), GradePracticalMarks: marks("3.3")}
	require.NoError(t, ComputeGrade(&g, model.ExamScheduleModel{ExamScheduleTotalMarks: 37}))
	assert.Equal(t, "A+", g.GradeLetter)
}
