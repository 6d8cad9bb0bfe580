package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/absence/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

func TestNotifyDeduplicatesByKey(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	company := id.CompanyID(uuid.New())

	created, err := s.Notify(ctx, &models.Notification{ID: uuid.New(), CompanyID: company, DedupeKey: "sla_reminder_x_3"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Notify(ctx, &models.Notification{ID: uuid.New(), CompanyID: company, DedupeKey: "sla_reminder_x_3"})
	require.NoError(t, err)
	assert.False(t, created)

	// Notifications without a key are never deduplicated.
	for range 2 {
		created, err = s.Notify(ctx, &models.Notification{ID: uuid.New(), CompanyID: company})
		require.NoError(t, err)
		assert.True(t, created)
	}
	assert.Len(t, s.Notifications(), 3)
}

func TestRecordEscalationAdvancesRequest(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	leave := &models.AbsenceType{ID: uuid.New(), Name: "Vacation"}
	require.NoError(t, s.SaveAbsenceType(ctx, leave))
	req := &models.Request{ID: id.AbsenceRequestID(uuid.New()), AbsenceTypeID: leave.ID, Status: models.StatusPending, CurrentApprovalStep: 1}
	require.NoError(t, s.SaveRequest(ctx, req))

	step, err := s.LastApprovalStep(ctx, req.ID)
	require.NoError(t, err)
	assert.Zero(t, step)

	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordEscalation(ctx, &models.Approval{ID: uuid.New(), RequestID: req.ID, Step: 2, CreatedAt: at}))

	step, err = s.LastApprovalStep(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, step)
	stored, err := s.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentApprovalStep)
	assert.Equal(t, at, stored.UpdatedAt)

	err = s.RecordEscalation(ctx, &models.Approval{RequestID: id.AbsenceRequestID(uuid.New()), Step: 1})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestListPendingOldestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	leave := &models.AbsenceType{ID: uuid.New(), Name: "Vacation", ApprovalFlow: models.FlowAdmin}
	require.NoError(t, s.SaveAbsenceType(ctx, leave))
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	newer := id.AbsenceRequestID(uuid.New())
	older := id.AbsenceRequestID(uuid.New())
	require.NoError(t, s.SaveRequest(ctx, &models.Request{ID: newer, AbsenceTypeID: leave.ID, Status: models.StatusPending, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, s.SaveRequest(ctx, &models.Request{ID: older, AbsenceTypeID: leave.ID, Status: models.StatusPending, CreatedAt: base}))
	require.NoError(t, s.SaveRequest(ctx, &models.Request{ID: id.AbsenceRequestID(uuid.New()), AbsenceTypeID: leave.ID, Status: models.StatusApproved}))

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, older, pending[0].Request.ID)
	assert.Equal(t, newer, pending[1].Request.ID)
	assert.Equal(t, models.FlowAdmin, pending[0].Type.ApprovalFlow)
}

func TestSaveRequestRequiresKnownType(t *testing.T) {
	err := NewInMemory().SaveRequest(context.Background(), &models.Request{ID: id.AbsenceRequestID(uuid.New()), AbsenceTypeID: uuid.New()})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
