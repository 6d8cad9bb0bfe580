package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worktime/internal/absence/models"
	"worktime/internal/platform/postgres"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
	txcontext "worktime/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveAbsenceType(ctx context.Context, t *models.AbsenceType) error {
	var sla sql.NullInt64
	if t.SLAHours != nil {
		sla = sql.NullInt64{Int64: int64(*t.SLAHours), Valid: true}
	}
	flow := t.ApprovalFlow
	if flow == "" {
		flow = models.FlowManager
	}
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO absence_types (id, company_id, name, category, counts_as_vacation, sla_hours, approval_flow)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			counts_as_vacation = EXCLUDED.counts_as_vacation,
			sla_hours = EXCLUDED.sla_hours,
			approval_flow = EXCLUDED.approval_flow
	`, t.ID, uuid.UUID(t.CompanyID), t.Name, t.Category, t.CountsAsVacation, sla, string(flow))
	if err != nil {
		return fmt.Errorf("save absence type: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) SaveRequest(ctx context.Context, r *models.Request) error {
	step := r.CurrentApprovalStep
	if step == 0 {
		step = 1
	}
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO absence_requests (id, company_id, employee_id, absence_type_id, start_date, end_date,
			total_days, status, current_approval_step, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			current_approval_step = EXCLUDED.current_approval_step,
			updated_at = EXCLUDED.updated_at
	`, uuid.UUID(r.ID), uuid.UUID(r.CompanyID), uuid.UUID(r.EmployeeID), r.AbsenceTypeID,
		r.StartDate.Time(), r.EndDate.Time(), r.TotalDays, string(r.Status), step, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save absence request: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) SavePolicy(ctx context.Context, p *models.VacationPolicy) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO vacation_policies (company_id, annual_days, accrual_type, carry_over_days, carry_over_deadline_month)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id) DO UPDATE SET
			annual_days = EXCLUDED.annual_days,
			accrual_type = EXCLUDED.accrual_type,
			carry_over_days = EXCLUDED.carry_over_days,
			carry_over_deadline_month = EXCLUDED.carry_over_deadline_month
	`, uuid.UUID(p.CompanyID), p.AnnualDays, string(p.Accrual), p.CarryOverDays, p.CarryOverDeadlineMonth)
	if err != nil {
		return fmt.Errorf("save vacation policy: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) GetPolicy(ctx context.Context, companyID id.CompanyID) (*models.VacationPolicy, error) {
	p := models.VacationPolicy{CompanyID: companyID}
	var accrual string
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT annual_days, accrual_type, carry_over_days, carry_over_deadline_month
		FROM vacation_policies WHERE company_id = $1
	`, uuid.UUID(companyID)).Scan(&p.AnnualDays, &accrual, &p.CarryOverDays, &p.CarryOverDeadlineMonth)
	if err != nil {
		return nil, fmt.Errorf("get vacation policy: %w", postgres.MapError(err))
	}
	p.Accrual = models.AccrualType(accrual)
	return &p, nil
}

func (s *PostgresStore) GetBalance(ctx context.Context, employeeID id.EmployeeID, year int) (*models.Balance, error) {
	b := models.Balance{EmployeeID: employeeID, Year: year}
	var companyID uuid.UUID
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT company_id, entitled_days, carried_over_days, used_days, pending_days, available_days, updated_at
		FROM vacation_balances WHERE employee_id = $1 AND year = $2
	`, uuid.UUID(employeeID), year).Scan(&companyID, &b.EntitledDays, &b.CarriedOver, &b.UsedDays,
		&b.PendingDays, &b.AvailableDays, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get vacation balance: %w", postgres.MapError(err))
	}
	b.CompanyID = id.CompanyID(companyID)
	return &b, nil
}

// UpsertBalance fully replaces the (employee, year) row.
func (s *PostgresStore) UpsertBalance(ctx context.Context, b *models.Balance) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO vacation_balances (employee_id, year, company_id, entitled_days, carried_over_days,
			used_days, pending_days, available_days, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, year) DO UPDATE SET
			company_id = EXCLUDED.company_id,
			entitled_days = EXCLUDED.entitled_days,
			carried_over_days = EXCLUDED.carried_over_days,
			used_days = EXCLUDED.used_days,
			pending_days = EXCLUDED.pending_days,
			available_days = EXCLUDED.available_days,
			updated_at = EXCLUDED.updated_at
	`, uuid.UUID(b.EmployeeID), b.Year, uuid.UUID(b.CompanyID), b.EntitledDays, b.CarriedOver,
		b.UsedDays, b.PendingDays, b.AvailableDays, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert vacation balance: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) SumVacationDays(ctx context.Context, employeeID id.EmployeeID, year int, status models.RequestStatus) (float64, error) {
	var total float64
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT COALESCE(SUM(r.total_days), 0)
		FROM absence_requests r
		JOIN absence_types t ON t.id = r.absence_type_id
		WHERE r.employee_id = $1 AND r.status = $2 AND t.counts_as_vacation
		  AND r.start_date >= $3 AND r.end_date <= $4
	`, uuid.UUID(employeeID), string(status), id.DateOf(year, 1, 1).Time(), id.DateOf(year, 12, 31).Time()).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum vacation days: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) ListPending(ctx context.Context) ([]*models.PendingRequest, error) {
	rows, err := txcontext.Exec(ctx, s.db).QueryContext(ctx, `
		SELECT r.id, r.company_id, r.employee_id, r.absence_type_id, r.start_date, r.end_date, r.total_days,
			r.status, r.current_approval_step, r.created_at, r.updated_at,
			t.name, t.category, t.counts_as_vacation, t.sla_hours, t.approval_flow
		FROM absence_requests r
		JOIN absence_types t ON t.id = r.absence_type_id
		WHERE r.status = 'pending'
		ORDER BY r.created_at ASC, r.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer rows.Close()

	var out []*models.PendingRequest
	for rows.Next() {
		var (
			p                       models.PendingRequest
			reqID, companyID, empID uuid.UUID
			startDate, endDate      time.Time
			status, flow            string
			sla                     sql.NullInt64
		)
		if err := rows.Scan(&reqID, &companyID, &empID, &p.Request.AbsenceTypeID, &startDate, &endDate,
			&p.Request.TotalDays, &status, &p.Request.CurrentApprovalStep, &p.Request.CreatedAt, &p.Request.UpdatedAt,
			&p.Type.Name, &p.Type.Category, &p.Type.CountsAsVacation, &sla, &flow); err != nil {
			return nil, fmt.Errorf("scan pending request: %w", err)
		}
		p.Request.ID = id.AbsenceRequestID(reqID)
		p.Request.CompanyID = id.CompanyID(companyID)
		p.Request.EmployeeID = id.EmployeeID(empID)
		p.Request.StartDate = id.NewDate(startDate)
		p.Request.EndDate = id.NewDate(endDate)
		p.Request.Status = models.RequestStatus(status)
		p.Type.ID = p.Request.AbsenceTypeID
		p.Type.CompanyID = p.Request.CompanyID
		p.Type.ApprovalFlow = models.ApprovalFlow(flow)
		if sla.Valid {
			hours := int(sla.Int64)
			p.Type.SLAHours = &hours
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) LastApprovalStep(ctx context.Context, requestID id.AbsenceRequestID) (int, error) {
	var step int
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT COALESCE(MAX(step), 0) FROM absence_approvals WHERE request_id = $1`,
		uuid.UUID(requestID)).Scan(&step)
	if err != nil {
		return 0, fmt.Errorf("last approval step: %w", err)
	}
	return step, nil
}

// RecordEscalation inserts the approval and advances the request in one
// transaction.
func (s *PostgresStore) RecordEscalation(ctx context.Context, a *models.Approval) error {
	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		exec := txcontext.Exec(ctx, s.db)
		res, err := exec.ExecContext(ctx,
			`UPDATE absence_requests SET current_approval_step = $2, updated_at = $3 WHERE id = $1`,
			uuid.UUID(a.RequestID), a.Step, a.CreatedAt)
		if err != nil {
			return fmt.Errorf("advance approval step: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return sentinel.ErrNotFound
		}
		_, err = exec.ExecContext(ctx, `
			INSERT INTO absence_approvals (id, request_id, step, approver_role, action, comment, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, uuid.UUID(a.RequestID), a.Step, a.ApproverRole, a.Action, a.Comment, a.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert approval: %w", postgres.MapError(err))
		}
		return nil
	})
}

// Notify relies on the unique dedupe_key: a repeated key inserts nothing.
func (s *PostgresStore) Notify(ctx context.Context, n *models.Notification) (bool, error) {
	var (
		recipient uuid.NullUUID
		dedupe    sql.NullString
	)
	if n.RecipientID != nil {
		recipient = uuid.NullUUID{UUID: uuid.UUID(*n.RecipientID), Valid: true}
	}
	if n.DedupeKey != "" {
		dedupe = sql.NullString{String: n.DedupeKey, Valid: true}
	}
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO notifications (id, company_id, recipient_role, recipient_id, kind, title, body, dedupe_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (dedupe_key) DO NOTHING
	`, n.ID, uuid.UUID(n.CompanyID), n.RecipientRole, recipient, n.Kind, n.Title, n.Body, dedupe, n.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert notification: %w", postgres.MapError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert notification: %w", err)
	}
	return affected == 1, nil
}
