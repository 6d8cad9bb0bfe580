package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"worktime/internal/audit"
	"worktime/internal/audit/store"
	id "worktime/pkg/domain"
	"worktime/pkg/requestcontext"
)

func TestPublisherFillsDerivedFields(t *testing.T) {
	mem := store.NewInMemory()
	pub := audit.NewPublisher(mem, nil)

	companyID := id.CompanyID(uuid.New())
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	ctx = requestcontext.WithRequestID(ctx, "req-1")
	ctx = requestcontext.WithCaller(ctx, "scheduler")

	err := pub.Emit(ctx, audit.Event{
		CompanyID: companyID,
		Action:    audit.ActionViolationRaised,
		Subject:   "employee-1",
	})
	require.NoError(t, err)

	events, err := pub.List(ctx, companyID, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
	assert.Equal(t, now, events[0].Timestamp)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, "scheduler", events[0].Actor)
}

func TestListByCompanyFiltersTenantAndTime(t *testing.T) {
	mem := store.NewInMemory()
	a := id.CompanyID(uuid.New())
	b := id.CompanyID(uuid.New())
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	require.NoError(t, mem.Append(ctx, audit.Event{CompanyID: a, Action: audit.ActionDailyRootCreated, Timestamp: base}))
	require.NoError(t, mem.Append(ctx, audit.Event{CompanyID: a, Action: audit.ActionDailyRootSealed, Timestamp: base.Add(time.Hour)}))
	require.NoError(t, mem.Append(ctx, audit.Event{CompanyID: b, Action: audit.ActionDailyRootCreated, Timestamp: base.Add(time.Hour)}))

	events, err := mem.ListByCompany(ctx, a, base.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionDailyRootSealed, events[0].Action)
}

func TestActionCategoryDefaultsToOperations(t *testing.T) {
	assert.Equal(t, audit.CategoryOperations, audit.Action("something_else").Category())
	assert.Equal(t, audit.CategoryOperations, audit.ActionAbsenceEscalated.Category())
}

func TestWorkerFlushesOnShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	mem := store.NewInMemory()
	w := audit.NewWorker(mem, 8, nil)
	companyID := id.CompanyID(uuid.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for range 3 {
		require.NoError(t, w.Append(ctx, audit.Event{CompanyID: companyID, Action: audit.ActionViolationCleared}))
	}
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	assert.Len(t, mem.All(), 3)
}
