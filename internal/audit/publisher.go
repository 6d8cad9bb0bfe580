package audit

import (
	"context"
	"log/slog"
	"time"

	id "worktime/pkg/domain"
	"worktime/pkg/requestcontext"
)

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCompany(ctx context.Context, companyID id.CompanyID, since time.Time) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{store: store, logger: logger}
}

// Emit fills derived fields from ctx and appends the event.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = requestcontext.Now(ctx)
	}
	if base.Category == "" {
		base.Category = base.Action.Category()
	}
	if base.RequestID == "" {
		base.RequestID = requestcontext.RequestID(ctx)
	}
	if base.Actor == "" {
		base.Actor = requestcontext.Caller(ctx)
	}
	if err := p.store.Append(ctx, base); err != nil {
		p.logger.ErrorContext(ctx, "failed to append audit event",
			"action", base.Action,
			"subject", base.Subject,
			"error", err,
		)
		return err
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, companyID id.CompanyID, since time.Time) ([]Event, error) {
	return p.store.ListByCompany(ctx, companyID, since)
}
