package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worktime/internal/audit"
	id "worktime/pkg/domain"
	txcontext "worktime/pkg/platform/tx"
)

// PostgresStore writes audit events to the audit_log table. Appends join the
// caller's transaction when one is present in ctx.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event audit.Event) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("marshal audit metadata: %w", err)
	}
	if event.Metadata == nil {
		metadata = []byte("{}")
	}
	var companyID uuid.NullUUID
	if !event.CompanyID.IsNil() {
		companyID = uuid.NullUUID{UUID: uuid.UUID(event.CompanyID), Valid: true}
	}
	category := event.Category
	if category == "" {
		category = event.Action.Category()
	}
	_, err = txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO audit_log (id, company_id, category, action, subject, actor, request_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, uuid.New(), companyID, string(category), string(event.Action), event.Subject,
		event.Actor, event.RequestID, metadata, event.Timestamp)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCompany(ctx context.Context, companyID id.CompanyID, since time.Time) ([]audit.Event, error) {
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, `
		SELECT category, action, subject, actor, request_id, metadata, created_at
		FROM audit_log
		WHERE company_id = $1 AND created_at >= $2
		ORDER BY created_at, id
	`, uuid.UUID(companyID), since)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []audit.Event
	for rows.Next() {
		var (
			e        audit.Event
			category string
			action   string
			metadata []byte
		)
		if err := rows.Scan(&category, &action, &e.Subject, &e.Actor, &e.RequestID, &metadata, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.CompanyID = companyID
		e.Category = audit.EventCategory(category)
		e.Action = audit.Action(action)
		if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
			return nil, fmt.Errorf("decode audit metadata: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
