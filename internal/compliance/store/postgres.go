package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"worktime/internal/compliance/models"
	"worktime/internal/platform/postgres"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
	txcontext "worktime/pkg/platform/tx"
)

// PostgresStore persists violations in compliance_violations.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ReplaceDay deletes the stored rows for the evaluated codes and inserts the
// new ones in a single transaction. The unique key on
// (employee_id, rule_code, violation_date) backs up the delete.
func (s *PostgresStore) ReplaceDay(ctx context.Context, employeeID id.EmployeeID, date id.Date, codes []models.Code, violations []models.Violation) (models.ReplaceOutcome, error) {
	var outcome models.ReplaceOutcome
	err := txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		previous, err := s.deleteCodes(ctx, employeeID, date, codes)
		if err != nil {
			return err
		}
		for _, v := range violations {
			if err := s.insert(ctx, v); err != nil {
				return err
			}
		}
		outcome = Diff(previous, violations)
		return nil
	})
	if err != nil {
		return models.ReplaceOutcome{}, err
	}
	return outcome, nil
}

func (s *PostgresStore) deleteCodes(ctx context.Context, employeeID id.EmployeeID, date id.Date, codes []models.Code) (map[models.Code]bool, error) {
	previous := make(map[models.Code]bool)
	if len(codes) == 0 {
		return previous, nil
	}
	raw := make([]string, len(codes))
	for i, c := range codes {
		raw[i] = string(c)
	}
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, `
		DELETE FROM compliance_violations
		WHERE employee_id = $1 AND violation_date = $2 AND rule_code = ANY($3)
		RETURNING rule_code
	`, uuid.UUID(employeeID), date.Time(), pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("delete violations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan deleted violation: %w", err)
		}
		previous[models.Code(code)] = true
	}
	return previous, rows.Err()
}

func (s *PostgresStore) insert(ctx context.Context, v models.Violation) error {
	evidence, err := json.Marshal(v.Evidence)
	if err != nil {
		return fmt.Errorf("marshal violation evidence: %w", err)
	}
	var versionID uuid.NullUUID
	if v.RuleVersionID != nil {
		versionID = uuid.NullUUID{UUID: uuid.UUID(*v.RuleVersionID), Valid: true}
	}
	_, err = txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO compliance_violations
			(id, company_id, employee_id, rule_code, violation_date, severity, detected_value, threshold, rule_version_id, evidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, uuid.UUID(v.ID), uuid.UUID(v.CompanyID), uuid.UUID(v.EmployeeID), string(v.Code), v.Date.Time(),
		string(v.Severity), v.Detected, v.Threshold, versionID, evidence, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert violation: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) ListByCompanyDay(ctx context.Context, companyID id.CompanyID, date id.Date) ([]models.Violation, error) {
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, `
		SELECT id, employee_id, rule_code, severity, detected_value, threshold, rule_version_id, evidence, created_at
		FROM compliance_violations
		WHERE company_id = $1 AND violation_date = $2
		ORDER BY employee_id, rule_code
	`, uuid.UUID(companyID), date.Time())
	if err != nil {
		return nil, fmt.Errorf("list violations: %w", err)
	}
	defer rows.Close()

	var out []models.Violation
	for rows.Next() {
		var (
			v          models.Violation
			rawID      uuid.UUID
			employeeID uuid.UUID
			code       string
			severity   string
			versionID  uuid.NullUUID
			evidence   []byte
		)
		if err := rows.Scan(&rawID, &employeeID, &code, &severity, &v.Detected, &v.Threshold, &versionID, &evidence, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		v.ID = id.ViolationID(rawID)
		v.CompanyID = companyID
		v.EmployeeID = id.EmployeeID(employeeID)
		v.Code = models.Code(code)
		v.Date = date
		v.Severity = rulesmodels.Severity(severity)
		if versionID.Valid {
			rv := id.RuleVersionID(versionID.UUID)
			v.RuleVersionID = &rv
		}
		if err := json.Unmarshal(evidence, &v.Evidence); err != nil {
			return nil, fmt.Errorf("decode violation evidence: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
