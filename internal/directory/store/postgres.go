package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worktime/internal/directory/models"
	"worktime/internal/platform/postgres"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
	txcontext "worktime/pkg/platform/tx"
)

// PostgresStore persists companies and employees in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateCompany(ctx context.Context, c *models.Company) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO companies (id, name, timezone, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.UUID(c.ID), c.Name, c.Timezone, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert company: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) CreateEmployee(ctx context.Context, e *models.Employee) error {
	var managerID *uuid.UUID
	if e.ManagerID != nil {
		m := uuid.UUID(*e.ManagerID)
		managerID = &m
	}
	var hireDate *time.Time
	if e.HireDate != nil {
		t := e.HireDate.Time()
		hireDate = &t
	}
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO employees (id, company_id, full_name, manager_id, hire_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(e.ID), uuid.UUID(e.CompanyID), e.FullName, managerID, hireDate, e.IsActive, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert employee: %w", postgres.MapError(err))
	}
	return nil
}

func (s *PostgresStore) GetCompany(ctx context.Context, companyID id.CompanyID) (*models.Company, error) {
	var c models.Company
	var rawID uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, timezone, created_at FROM companies WHERE id = $1
	`, uuid.UUID(companyID)).Scan(&rawID, &c.Name, &c.Timezone, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	c.ID = id.CompanyID(rawID)
	return &c, nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, timezone, created_at FROM companies ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []*models.Company
	for rows.Next() {
		var c models.Company
		var rawID uuid.UUID
		if err := rows.Scan(&rawID, &c.Name, &c.Timezone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		c.ID = id.CompanyID(rawID)
		out = append(out, &c)
	}
	return out, rows.Err()
}

const employeeColumns = `id, company_id, full_name, manager_id, hire_date, is_active, created_at`

func (s *PostgresStore) GetEmployee(ctx context.Context, employeeID id.EmployeeID) (*models.Employee, error) {
	e, err := scanEmployee(s.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, uuid.UUID(employeeID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) ListActiveEmployees(ctx context.Context, companyID id.CompanyID) ([]*models.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE company_id = $1 AND is_active ORDER BY id`,
		uuid.UUID(companyID))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var (
		e         models.Employee
		rawID     uuid.UUID
		companyID uuid.UUID
		managerID uuid.NullUUID
		hireDate  sql.NullTime
	)
	if err := row.Scan(&rawID, &companyID, &e.FullName, &managerID, &hireDate, &e.IsActive, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ID = id.EmployeeID(rawID)
	e.CompanyID = id.CompanyID(companyID)
	if managerID.Valid {
		m := id.EmployeeID(managerID.UUID)
		e.ManagerID = &m
	}
	if hireDate.Valid {
		d := id.NewDate(hireDate.Time)
		e.HireDate = &d
	}
	return &e, nil
}
