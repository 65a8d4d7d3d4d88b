package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/staff/model"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

func TestStaffAttendance_CheckOutAfterCheckIn(t *testing.T) {
	hook := StaffAttendanceResource().BeforeWrite
	in, out := dbtime.ParseClock("09:00"), dbtime.ParseClock("08:30")
	m := &model.StaffAttendanceModel{StaffAttendanceCheckIn: &in, StaffAttendanceCheckOut: &out}
	assert.Contains(t, apperr.From(hook(crud.WriteContext{}, nil, m)).Fields, "staff_attendance_check_out")

	actor := uuid.New()
	out = dbtime.ParseClock("16:00")
	require.NoError(t, hook(crud.WriteContext{Actor: actor}, nil, m))
	assert.Equal(t, actor, *m.StaffAttendanceMarkedBy)
}

func TestLeave_OnlyPendingEditable(t *testing.T) {
	hook := LeaveResource().BeforeWrite
	m := &model.LeaveModel{
		LeaveStartDate: dbtime.ParseDate("2026-05-01"),
		LeaveEndDate:   dbtime.ParseDate("2026-05-03"),
	}
	old := &model.LeaveModel{LeaveStatus: model.LeaveApproved}
	assert.True(t, apperr.Is(hook(crud.WriteContext{}, old, m), apperr.KindConflict))

	old.LeaveStatus = model.LeavePending
	require.NoError(t, hook(crud.WriteContext{}, old, m))
	assert.Equal(t, 3, m.LeaveTotalDays)
}

func TestPerformanceReview_DerivesOverall(t *testing.T) {
	hook := PerformanceReviewResource().BeforeWrite
	actor := uuid.New()
	m := &model.PerformanceReviewModel{
		PerformanceReviewPeriodStart:   dbtime.ParseDate("2026-01-01"),
		PerformanceReviewPeriodEnd:     dbtime.ParseDate("2026-06-30"),
		PerformanceReviewPunctuality:   3,
		PerformanceReviewCommunication: 3,
		PerformanceReviewTeamwork:      4,
		PerformanceReviewDiscipline:    4,
	}
	require.NoError(t, hook(crud.WriteContext{Actor: actor}, nil, m))
	assert.Equal(t, 3.5, m.PerformanceReviewOverallRating)
	assert.Equal(t, actor, *m.PerformanceReviewReviewedBy)
}
