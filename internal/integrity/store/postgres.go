package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"worktime/internal/integrity/models"
	"worktime/internal/platform/postgres"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
	txcontext "worktime/pkg/platform/tx"
)

// PostgresStore persists daily roots, evidences and QTSP references.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

const rootColumns = `id, company_id, root_date, root_hash, event_count, sealed, sealed_at, created_at`

func (s *PostgresStore) GetRoot(ctx context.Context, companyID id.CompanyID, date id.Date) (*models.DailyRoot, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+rootColumns+` FROM daily_roots WHERE company_id = $1 AND root_date = $2`,
		uuid.UUID(companyID), date.Time())
	root, err := scanRoot(row)
	if err != nil {
		return nil, fmt.Errorf("get daily root: %w", postgres.MapError(err))
	}
	return root, nil
}

func (s *PostgresStore) GetRootByID(ctx context.Context, rootID id.DailyRootID) (*models.DailyRoot, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+rootColumns+` FROM daily_roots WHERE id = $1`, uuid.UUID(rootID))
	root, err := scanRoot(row)
	if err != nil {
		return nil, fmt.Errorf("get daily root: %w", postgres.MapError(err))
	}
	return root, nil
}

// InsertRoot relies on uq_daily_root_company_date: a concurrent insert for
// the same day is ignored and reported as not inserted.
func (s *PostgresStore) InsertRoot(ctx context.Context, root *models.DailyRoot) (bool, error) {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO daily_roots (id, company_id, root_date, root_hash, event_count, sealed, sealed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT ON CONSTRAINT uq_daily_root_company_date DO NOTHING
	`, uuid.UUID(root.ID), uuid.UUID(root.CompanyID), root.Date.Time(), root.RootHash, root.EventCount,
		root.Sealed, nullTime(root.SealedAt), root.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert daily root: %w", postgres.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert daily root: %w", err)
	}
	return n == 1, nil
}

func (s *PostgresStore) MarkSealed(ctx context.Context, rootID id.DailyRootID, sealedAt time.Time) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx,
		`UPDATE daily_roots SET sealed = TRUE, sealed_at = $2 WHERE id = $1`, uuid.UUID(rootID), sealedAt)
	if err != nil {
		return fmt.Errorf("mark daily root sealed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListRoots(ctx context.Context, companyID id.CompanyID, from, to id.Date) ([]*models.DailyRoot, error) {
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, `
		SELECT `+rootColumns+` FROM daily_roots
		WHERE company_id = $1 AND root_date BETWEEN $2 AND $3
		ORDER BY root_date ASC
	`, uuid.UUID(companyID), from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("list daily roots: %w", err)
	}
	defer rows.Close()

	var out []*models.DailyRoot
	for rows.Next() {
		root, err := scanRoot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily root: %w", err)
		}
		out = append(out, root)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListUnsealedRoots(ctx context.Context) ([]*models.DailyRoot, error) {
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, `
		SELECT `+rootColumns+` FROM daily_roots
		WHERE NOT sealed AND NOT EXISTS (
			SELECT 1 FROM evidences
			WHERE evidences.daily_root_id = daily_roots.id AND evidences.evidence_type = 'daily_timestamp'
		)
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list unsealed daily roots: %w", err)
	}
	defer rows.Close()

	var out []*models.DailyRoot
	for rows.Next() {
		root, err := scanRoot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily root: %w", err)
		}
		out = append(out, root)
	}
	return out, rows.Err()
}

func scanRoot(row rowScanner) (*models.DailyRoot, error) {
	var (
		r         models.DailyRoot
		rawID     uuid.UUID
		companyID uuid.UUID
		date      time.Time
		sealedAt  sql.NullTime
	)
	if err := row.Scan(&rawID, &companyID, &date, &r.RootHash, &r.EventCount, &r.Sealed, &sealedAt, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.ID = id.DailyRootID(rawID)
	r.CompanyID = id.CompanyID(companyID)
	r.Date = id.NewDate(date)
	r.SealedAt = timePtr(sealedAt)
	return &r, nil
}

const evidenceColumns = `id, company_id, daily_root_id, evidence_type, status, provider_evidence_id, tsp_token,
	tsp_timestamp, retry_count, backoff_seconds, next_retry_at, error_message, created_at, updated_at, completed_at`

// SaveEvidence inserts or fully updates an evidence row.
func (s *PostgresStore) SaveEvidence(ctx context.Context, ev *models.Evidence) error {
	var rootID uuid.NullUUID
	if ev.DailyRootID != nil {
		rootID = uuid.NullUUID{UUID: uuid.UUID(*ev.DailyRootID), Valid: true}
	}
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO evidences (`+evidenceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			provider_evidence_id = EXCLUDED.provider_evidence_id,
			tsp_token = EXCLUDED.tsp_token,
			tsp_timestamp = EXCLUDED.tsp_timestamp,
			retry_count = EXCLUDED.retry_count,
			backoff_seconds = EXCLUDED.backoff_seconds,
			next_retry_at = EXCLUDED.next_retry_at,
			error_message = EXCLUDED.error_message,
			updated_at = EXCLUDED.updated_at,
			completed_at = EXCLUDED.completed_at
	`, uuid.UUID(ev.ID), uuid.UUID(ev.CompanyID), rootID, string(ev.Type), string(ev.Status),
		ev.ProviderEvidenceID, ev.TSPToken, nullTime(ev.TSPTimestamp), ev.RetryCount, ev.BackoffSeconds,
		nullTime(ev.NextRetryAt), ev.ErrorMessage, ev.CreatedAt, ev.UpdatedAt, nullTime(ev.CompletedAt))
	if err != nil {
		return fmt.Errorf("save evidence: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) EvidenceForRoot(ctx context.Context, rootID id.DailyRootID) (*models.Evidence, error) {
	row := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+evidenceColumns+` FROM evidences
		WHERE daily_root_id = $1 AND evidence_type = 'daily_timestamp'
	`, uuid.UUID(rootID))
	ev, err := scanEvidence(row)
	if err != nil {
		return nil, fmt.Errorf("get evidence: %w", postgres.MapError(err))
	}
	return ev, nil
}

func (s *PostgresStore) ListEvidencesForRoots(ctx context.Context, rootIDs []id.DailyRootID) ([]*models.Evidence, error) {
	if len(rootIDs) == 0 {
		return nil, nil
	}
	raw := make([]string, len(rootIDs))
	for i, rid := range rootIDs {
		raw[i] = rid.String()
	}
	return s.listEvidences(ctx, `
		SELECT `+evidenceColumns+` FROM evidences
		WHERE daily_root_id = ANY($1::uuid[])
		ORDER BY created_at, id
	`, pq.Array(raw))
}

func (s *PostgresStore) ListReconcilable(ctx context.Context, now time.Time, force bool, maxRetries int) ([]*models.Evidence, error) {
	return s.listEvidences(ctx, `
		SELECT `+evidenceColumns+` FROM evidences
		WHERE evidence_type = 'daily_timestamp' AND (
			(status = 'failed' AND retry_count < $3 AND ($2 OR next_retry_at IS NULL OR next_retry_at <= $1))
			OR (status = 'processing' AND provider_evidence_id <> '')
		)
		ORDER BY created_at, id
	`, now, force, maxRetries)
}

func (s *PostgresStore) listEvidences(ctx context.Context, query string, args ...any) ([]*models.Evidence, error) {
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evidences: %w", err)
	}
	defer rows.Close()

	var out []*models.Evidence
	for rows.Next() {
		ev, err := scanEvidence(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evidence: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func scanEvidence(row rowScanner) (*models.Evidence, error) {
	var (
		ev           models.Evidence
		rawID        uuid.UUID
		companyID    uuid.UUID
		rootID       uuid.NullUUID
		typ, status  string
		tspTimestamp sql.NullTime
		nextRetryAt  sql.NullTime
		completedAt  sql.NullTime
	)
	err := row.Scan(&rawID, &companyID, &rootID, &typ, &status, &ev.ProviderEvidenceID, &ev.TSPToken,
		&tspTimestamp, &ev.RetryCount, &ev.BackoffSeconds, &nextRetryAt, &ev.ErrorMessage,
		&ev.CreatedAt, &ev.UpdatedAt, &completedAt)
	if err != nil {
		return nil, err
	}
	ev.ID = id.EvidenceID(rawID)
	ev.CompanyID = id.CompanyID(companyID)
	if rootID.Valid {
		rid := id.DailyRootID(rootID.UUID)
		ev.DailyRootID = &rid
	}
	ev.Type = models.EvidenceType(typ)
	ev.Status = models.EvidenceStatus(status)
	ev.TSPTimestamp = timePtr(tspTimestamp)
	ev.NextRetryAt = timePtr(nextRetryAt)
	ev.CompletedAt = timePtr(completedAt)
	return &ev, nil
}

func (s *PostgresStore) GetCaseFile(ctx context.Context, companyID id.CompanyID) (string, error) {
	var ref string
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT external_id FROM qtsp_case_files WHERE company_id = $1`, uuid.UUID(companyID)).Scan(&ref)
	if err != nil {
		return "", fmt.Errorf("get case file: %w", postgres.MapError(err))
	}
	return ref, nil
}

// SaveCaseFile keeps the first reference stored for a company.
func (s *PostgresStore) SaveCaseFile(ctx context.Context, companyID id.CompanyID, externalID string) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO qtsp_case_files (company_id, external_id) VALUES ($1, $2)
		ON CONFLICT (company_id) DO NOTHING
	`, uuid.UUID(companyID), externalID)
	if err != nil {
		return fmt.Errorf("save case file: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetEvidenceGroup(ctx context.Context, companyID id.CompanyID, yearMonth string) (string, error) {
	var ref string
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT external_id FROM qtsp_evidence_groups WHERE company_id = $1 AND year_month = $2`,
		uuid.UUID(companyID), yearMonth).Scan(&ref)
	if err != nil {
		return "", fmt.Errorf("get evidence group: %w", postgres.MapError(err))
	}
	return ref, nil
}

func (s *PostgresStore) SaveEvidenceGroup(ctx context.Context, companyID id.CompanyID, yearMonth, externalID string) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO qtsp_evidence_groups (company_id, year_month, external_id) VALUES ($1, $2, $3)
		ON CONFLICT (company_id, year_month) DO NOTHING
	`, uuid.UUID(companyID), yearMonth, externalID)
	if err != nil {
		return fmt.Errorf("save evidence group: %w", err)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
