package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worktime/internal/clock/models"
	"worktime/internal/platform/postgres"
	id "worktime/pkg/domain"
	txcontext "worktime/pkg/platform/tx"
)

// PostgresStore reads clock events from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const eventColumns = `id, company_id, employee_id, event_type, ts, local_timestamp, event_hash, previous_hash, source`

func (s *PostgresStore) Append(ctx context.Context, e *models.ClockEvent) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO clock_events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		uuid.UUID(e.ID),
		uuid.UUID(e.CompanyID),
		uuid.UUID(e.EmployeeID),
		string(e.Type),
		e.Timestamp.UTC(),
		e.LocalTimestamp,
		nullString(e.EventHash),
		nullString(e.PreviousHash),
		e.Source,
	)
	if err != nil {
		return fmt.Errorf("insert clock event: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) ListCompanyEvents(ctx context.Context, companyID id.CompanyID, from, to time.Time) ([]*models.ClockEvent, error) {
	return s.list(ctx, `company_id = $1`, uuid.UUID(companyID), from, to)
}

func (s *PostgresStore) ListEmployeeEvents(ctx context.Context, employeeID id.EmployeeID, from, to time.Time) ([]*models.ClockEvent, error) {
	return s.list(ctx, `employee_id = $1`, uuid.UUID(employeeID), from, to)
}

func (s *PostgresStore) list(ctx context.Context, scope string, scopeID uuid.UUID, from, to time.Time) ([]*models.ClockEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM clock_events
		WHERE `+scope+` AND ts >= $2 AND ts < $3
		ORDER BY ts, id
	`, scopeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("list clock events: %w", err)
	}
	defer rows.Close()

	var out []*models.ClockEvent
	for rows.Next() {
		var (
			e            models.ClockEvent
			eventID      uuid.UUID
			companyID    uuid.UUID
			employeeID   uuid.UUID
			eventType    string
			eventHash    sql.NullString
			previousHash sql.NullString
		)
		if err := rows.Scan(&eventID, &companyID, &employeeID, &eventType, &e.Timestamp,
			&e.LocalTimestamp, &eventHash, &previousHash, &e.Source); err != nil {
			return nil, fmt.Errorf("scan clock event: %w", err)
		}
		e.ID = id.ClockEventID(eventID)
		e.CompanyID = id.CompanyID(companyID)
		e.EmployeeID = id.EmployeeID(employeeID)
		e.Type = models.EventType(eventType)
		e.Timestamp = e.Timestamp.UTC()
		e.EventHash = eventHash.String
		e.PreviousHash = previousHash.String
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clock events: %w", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
