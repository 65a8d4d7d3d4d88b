package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/students/model"
	"schooloffice_backend/internals/helpers/apperr"
)

func f(v float64) *float64 { return &v }

func TestBMI(t *testing.T) {
	got := BMI(f(150), f(45))
	require.NotNil(t, got)
	assert.Equal(t, 20.0, *got)

	got = BMI(f(172), f(61.3))
	require.NotNil(t, got)
	assert.Equal(t, 20.72, *got)

	assert.Nil(t, BMI(nil, f(40)))
	assert.Nil(t, BMI(f(120), nil))
	assert.Nil(t, BMI(f(0), f(40)))
}

func TestCheckSiblingPair_SameStudent(t *testing.T) {
	id := uuid.New()
	err := CheckSiblingPair(nil, &model.SiblingModel{SiblingStudent1ID: id, SiblingStudent2ID: id})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, apperr.From(err).Fields, "sibling_student2_id")
}

func TestSectionInClass_SectionWithoutClass(t *testing.T) {
	assert.NoError(t, SectionInClass(nil, nil, nil, "x"))

	sec := uuid.New()
	err := SectionInClass(nil, &sec, nil, "student_current_section_id")
	assert.Contains(t, apperr.From(err).Fields, "student_current_section_id")
}
