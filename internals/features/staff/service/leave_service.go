package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/staff/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

// PrepareLeave validates the range and derives total_days.
func PrepareLeave(m *model.LeaveModel) error {
	if dbtime.Before(m.LeaveEndDate, m.LeaveStartDate) {
		return apperr.Validation("leave_end_date", "end date cannot be before start date")
	}
	m.LeaveTotalDays = dbtime.DaysInclusive(m.LeaveStartDate, m.LeaveEndDate)
	return nil
}

type LeaveAction string

const (
	ActionApprove LeaveAction = "approve"
	ActionReject  LeaveAction = "reject"
	ActionCancel  LeaveAction = "cancel"
)

// leaveTransitions lists the statuses each action may start from.
var leaveTransitions = map[LeaveAction]struct {
	to   string
	from []string
}{
	ActionApprove: {model.LeaveApproved, []string{model.LeavePending}},
	ActionReject:  {model.LeaveRejected, []string{model.LeavePending}},
	ActionCancel:  {model.LeaveCancelled, []string{model.LeavePending, model.LeaveApproved}},
}

// NextLeaveStatus returns the status an action leads to from current.
func NextLeaveStatus(current string, action LeaveAction) (string, error) {
	t, ok := leaveTransitions[action]
	if !ok {
		return "", apperr.Validation("action", "unknown leave action")
	}
	for _, s := range t.from {
		if s == current {
			return t.to, nil
		}
	}
	return "", apperr.Conflict("cannot " + string(action) + " a leave that is " + current)
}

// DecideLeave applies action to the leave under a row lock. Approvals and
// rejections record the actor and time.
func DecideLeave(ctx context.Context, db *gorm.DB, id uuid.UUID, action LeaveAction, remarks *string, actor uuid.UUID) (*model.LeaveModel, error) {
	var l model.LeaveModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("leave_id = ?", id).Take(&l).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("leave")
			}
			return err
		}
		next, err := NextLeaveStatus(l.LeaveStatus, action)
		if err != nil {
			return err
		}
		l.LeaveStatus = next
		if r := helper.TrimPtr(remarks); r != nil {
			l.LeaveRemarks = r
		}
		if action != ActionCancel {
			now := time.Now()
			l.LeaveApprovedBy = &actor
			l.LeaveApprovedOn = &now
		}
		return tx.Select("leave_status", "leave_remarks", "leave_approved_by", "leave_approved_on").
			Updates(&l).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "decide leave")
	}
	return &l, nil
}
