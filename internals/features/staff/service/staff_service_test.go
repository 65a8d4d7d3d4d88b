package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/staff/model"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

func TestPrepareLeave_TotalDays(t *testing.T) {
	l := &model.LeaveModel{
		LeaveStartDate: dbtime.ParseDate("2026-02-26"),
		LeaveEndDate:   dbtime.ParseDate("2026-03-02"),
	}
	require.NoError(t, PrepareLeave(l))
	assert.Equal(t, 5, l.LeaveTotalDays)

	l.LeaveEndDate = l.LeaveStartDate
	require.NoError(t, PrepareLeave(l))
	assert.Equal(t, 1, l.LeaveTotalDays)

	l.LeaveEndDate = dbtime.ParseDate("2026-02-25")
	assert.Contains(t, apperr.From(PrepareLeave(l)).Fields, "leave_end_date")
}

func TestNextLeaveStatus(t *testing.T) {
	cases := []struct {
		from   string
		action LeaveAction
		want   string
		ok     bool
	}{
		{model.LeavePending, ActionApprove, model.LeaveApproved, true},
		{model.LeavePending, ActionReject, model.LeaveRejected, true},
		{model.LeavePending, ActionCancel, model.LeaveCancelled, true},
		{model.LeaveApproved, ActionCancel, model.LeaveCancelled, true},
		{model.LeaveApproved, ActionApprove, "", false},
		{model.LeaveRejected, ActionCancel, "", false},
		{model.LeaveCancelled, ActionReject, "", false},
	}
	for _, tc := range cases {
		got, err := NextLeaveStatus(tc.from, tc.action)
		if tc.ok {
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			continue
		}
		assert.True(t, apperr.Is(err, apperr.KindConflict), "%s -> %s", tc.from, tc.action)
	}
}

func TestOverallRating(t *testing.T) {
	r := &model.PerformanceReviewModel{
		PerformanceReviewPunctuality:   5,
		PerformanceReviewCommunication: 4,
		PerformanceReviewTeamwork:      4,
		PerformanceReviewDiscipline:    3,
	}
	assert.Equal(t, 4.0, OverallRating(r))

	tq := 2
	r.PerformanceReviewTeachingQuality = &tq
	assert.Equal(t, 3.6, OverallRating(r))

	r.PerformanceReviewTeamwork = 5
	assert.Equal(t, 3.8, OverallRating(r))
}

func TestCheckStaffDates(t *testing.T) {
	leave := dbtime.ParseDate("2020-01-01")
	m := &model.StaffModel{StaffJoiningDate: dbtime.ParseDate("2021-01-01"), StaffLeavingDate: &leave}
	assert.Contains(t, apperr.From(CheckStaffDates(m)).Fields, "staff_leaving_date")

	m.StaffLeavingDate = nil
	assert.NoError(t, CheckStaffDates(m))
}
