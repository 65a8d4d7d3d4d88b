package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/hostel/model"
)

func TestApplyComplaintStatus(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	m := &model.HostelComplaintModel{ComplaintStatus: model.ComplaintInProgress}
	ApplyComplaintStatus(m, &actor, now)
	assert.Nil(t, m.ComplaintResolvedDate)

	m.ComplaintStatus = model.ComplaintResolved
	ApplyComplaintStatus(m, &actor, now)
	require.NotNil(t, m.ComplaintResolvedDate)
	assert.Equal(t, now, *m.ComplaintResolvedDate)
	assert.Equal(t, actor, *m.ComplaintResolvedBy)

	// closing later keeps the original resolution stamp
	m.ComplaintStatus = model.ComplaintClosed
	ApplyComplaintStatus(m, nil, now.Add(time.Hour))
	assert.Equal(t, now, *m.ComplaintResolvedDate)

	m.ComplaintStatus = model.ComplaintPending
	ApplyComplaintStatus(m, &actor, now)
	assert.Nil(t, m.ComplaintResolvedDate)
	assert.Nil(t, m.ComplaintResolvedBy)
}

func TestDecorateRooms_Empty(t *testing.T) {
	assert.NoError(t, DecorateRooms(context.Background(), nil, nil))
}
