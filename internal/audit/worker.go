package audit

import (
	"context"
	"log/slog"
	"time"

	id "worktime/pkg/domain"
)

// Worker drains events from a channel into a store so callers on hot paths
// can hand off audit writes without waiting on the database.
type Worker struct {
	store  Store
	inbox  chan Event
	logger *slog.Logger
}

func NewWorker(store Store, buffer int, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: make(chan Event, buffer), logger: logger}
}

// Append queues an event. It never blocks: when the buffer is full the event
// is written synchronously instead.
func (w *Worker) Append(ctx context.Context, event Event) error {
	select {
	case w.inbox <- event:
		return nil
	default:
		return w.store.Append(ctx, event)
	}
}

func (w *Worker) ListByCompany(ctx context.Context, companyID id.CompanyID, since time.Time) ([]Event, error) {
	return w.store.ListByCompany(ctx, companyID, since)
}

// Run persists queued events until ctx is cancelled, then flushes what is
// already buffered.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.persist(ctx, event)
		}
	}
}

func (w *Worker) drain() {
	flushCtx := context.Background()
	for {
		select {
		case event := <-w.inbox:
			w.persist(flushCtx, event)
		default:
			return
		}
	}
}

func (w *Worker) persist(ctx context.Context, event Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "audit worker append failed", "action", event.Action, "error", err)
	}
}
