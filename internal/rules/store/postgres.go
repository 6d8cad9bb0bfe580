package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worktime/internal/platform/postgres"
	"worktime/internal/rules/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
	txcontext "worktime/pkg/platform/tx"
)

// PostgresStore persists rule versions and assignments in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateVersion(ctx context.Context, v *models.RuleVersion) error {
	payload, err := json.Marshal(v.Payload)
	if err != nil {
		return fmt.Errorf("marshal rule payload: %w", err)
	}
	_, err = txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO rule_versions (id, company_id, version, payload, payload_hash, published_at, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	`, uuid.UUID(v.ID), uuid.UUID(v.CompanyID), v.Version, payload, v.PayloadHash, v.PublishedAt, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert rule version: %w", postgres.MapError(err))
	}
	return nil
}

// Publish seals a version. The WHERE clause keeps published rows immutable
// even under concurrent publishers.
func (s *PostgresStore) Publish(ctx context.Context, versionID id.RuleVersionID, now time.Time) (*models.RuleVersion, error) {
	var published *models.RuleVersion
	err := txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		v, err := s.getVersionForUpdate(ctx, versionID)
		if err != nil {
			return err
		}
		if err := v.Publish(now); err != nil {
			return sentinel.ErrInvalidState
		}
		res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
			UPDATE rule_versions SET payload_hash = $2, published_at = $3
			WHERE id = $1 AND published_at IS NULL
		`, uuid.UUID(versionID), v.PayloadHash, v.PublishedAt)
		if err != nil {
			return fmt.Errorf("publish rule version: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return sentinel.ErrInvalidState
		}
		published = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return published, nil
}

func (s *PostgresStore) getVersionForUpdate(ctx context.Context, versionID id.RuleVersionID) (*models.RuleVersion, error) {
	var (
		v           models.RuleVersion
		rawID       uuid.UUID
		companyID   uuid.UUID
		payload     []byte
		payloadHash sql.NullString
		publishedAt sql.NullTime
	)
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, company_id, version, payload, payload_hash, published_at, created_at
		FROM rule_versions WHERE id = $1 FOR UPDATE
	`, uuid.UUID(versionID)).Scan(&rawID, &companyID, &v.Version, &payload, &payloadHash, &publishedAt, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get rule version: %w", err)
	}
	v.ID = id.RuleVersionID(rawID)
	v.CompanyID = id.CompanyID(companyID)
	if v.Payload, err = models.ParsePayload(payload); err != nil {
		return nil, err
	}
	v.PayloadHash = payloadHash.String
	if publishedAt.Valid {
		t := publishedAt.Time
		v.PublishedAt = &t
	}
	return &v, nil
}

func (s *PostgresStore) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	var employeeID *uuid.UUID
	if a.EmployeeID != nil {
		e := uuid.UUID(*a.EmployeeID)
		employeeID = &e
	}
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO rule_assignments (id, company_id, rule_version_id, employee_id, priority, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(a.ID), uuid.UUID(a.CompanyID), uuid.UUID(a.RuleVersionID), employeeID, a.Priority, a.IsActive, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert rule assignment: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) SetActive(ctx context.Context, assignmentID id.AssignmentID, active bool) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx,
		`UPDATE rule_assignments SET is_active = $2 WHERE id = $1`, uuid.UUID(assignmentID), active)
	if err != nil {
		return fmt.Errorf("update rule assignment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListBindings(ctx context.Context, companyID id.CompanyID) ([]models.Binding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.company_id, a.rule_version_id, a.employee_id, a.priority, a.is_active, a.created_at,
		       v.version, v.payload, v.payload_hash, v.published_at, v.created_at
		FROM rule_assignments a
		JOIN rule_versions v ON v.id = a.rule_version_id
		WHERE a.company_id = $1
	`, uuid.UUID(companyID))
	if err != nil {
		return nil, fmt.Errorf("list rule bindings: %w", err)
	}
	defer rows.Close()

	var out []models.Binding
	for rows.Next() {
		var (
			b            models.Binding
			assignmentID uuid.UUID
			rawCompany   uuid.UUID
			versionID    uuid.UUID
			employeeID   uuid.NullUUID
			payload      []byte
			payloadHash  sql.NullString
			publishedAt  sql.NullTime
		)
		if err := rows.Scan(&assignmentID, &rawCompany, &versionID, &employeeID,
			&b.Assignment.Priority, &b.Assignment.IsActive, &b.Assignment.CreatedAt,
			&b.Version.Version, &payload, &payloadHash, &publishedAt, &b.Version.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rule binding: %w", err)
		}
		b.Assignment.ID = id.AssignmentID(assignmentID)
		b.Assignment.CompanyID = id.CompanyID(rawCompany)
		b.Assignment.RuleVersionID = id.RuleVersionID(versionID)
		if employeeID.Valid {
			e := id.EmployeeID(employeeID.UUID)
			b.Assignment.EmployeeID = &e
		}
		b.Version.ID = id.RuleVersionID(versionID)
		b.Version.CompanyID = id.CompanyID(rawCompany)
		if b.Version.Payload, err = models.ParsePayload(payload); err != nil {
			return nil, fmt.Errorf("rule version %s: %w", versionID, err)
		}
		b.Version.PayloadHash = payloadHash.String
		if publishedAt.Valid {
			t := publishedAt.Time
			b.Version.PublishedAt = &t
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rule bindings: %w", err)
	}
	return out, nil
}
