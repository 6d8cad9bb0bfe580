package absence

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"worktime/internal/absence/models"
	"worktime/internal/audit"
	dirmodels "worktime/internal/directory/models"
	"worktime/internal/platform/tracing"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/requestcontext"
)

// VacationCalculator rebuilds yearly vacation balances from the policy and
// the recorded absence requests.
type VacationCalculator struct {
	directory EmployeeDirectory
	store     VacationStore
	options
}

func NewVacationCalculator(directory EmployeeDirectory, store VacationStore, opts ...Option) *VacationCalculator {
	return &VacationCalculator{directory: directory, store: store, options: newOptions(opts)}
}

// Recalculate overwrites the balance of every targeted employee for
// req.Year. Employees are isolated from each other's failures.
func (c *VacationCalculator) Recalculate(ctx context.Context, req models.RecalculateRequest) (result *models.RecalculateResult, err error) {
	ctx, span := tracing.Start(ctx, "absence.recalculate_vacation")
	defer func() { tracing.End(span, err) }()

	if req.CompanyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company_id is required")
	}
	if req.Year < 1970 || req.Year > 9999 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "year is out of range")
	}
	if _, err := c.directory.GetCompany(ctx, req.CompanyID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "company not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load company")
	}
	employees, err := c.targetEmployees(ctx, req)
	if err != nil {
		return nil, err
	}
	policy, err := c.policyFor(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	results := make([]models.EmployeeBalance, len(employees))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, employee := range employees {
		g.Go(func() error {
			results[i] = c.recalculateEmployee(ctx, policy, employee, req.Year)
			return nil
		})
	}
	_ = g.Wait()

	result = &models.RecalculateResult{Success: true, CompanyID: req.CompanyID, Year: req.Year, Results: results}
	for _, r := range results {
		if !r.Success {
			result.Success = false
		}
	}
	c.logger.InfoContext(ctx, "vacation balances recalculated",
		"company_id", req.CompanyID,
		"year", req.Year,
		"employees", len(employees),
		"success", result.Success,
	)
	return result, nil
}

func (c *VacationCalculator) targetEmployees(ctx context.Context, req models.RecalculateRequest) ([]*dirmodels.Employee, error) {
	if req.EmployeeID == nil {
		employees, err := c.directory.ListActiveEmployees(ctx, req.CompanyID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employees")
		}
		return employees, nil
	}
	employee, err := c.directory.GetEmployee(ctx, *req.EmployeeID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employee")
	}
	if employee == nil || employee.CompanyID != req.CompanyID || !employee.IsActive {
		return nil, dErrors.New(dErrors.CodeNotFound, "active employee not found in company")
	}
	return []*dirmodels.Employee{employee}, nil
}

func (c *VacationCalculator) policyFor(ctx context.Context, companyID id.CompanyID) (models.VacationPolicy, error) {
	stored, err := c.store.GetPolicy(ctx, companyID)
	switch {
	case err == nil:
		return *stored, nil
	case errors.Is(err, sentinel.ErrNotFound):
		p := c.policy
		p.CompanyID = companyID
		return p, nil
	default:
		return models.VacationPolicy{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vacation policy")
	}
}

func (c *VacationCalculator) recalculateEmployee(ctx context.Context, policy models.VacationPolicy, employee *dirmodels.Employee, year int) (res models.EmployeeBalance) {
	defer func() {
		if r := recover(); r != nil {
			res = c.employeeFailed(ctx, employee, fmt.Errorf("panic during recalculation: %v", r))
		}
	}()

	var previous *float64
	if policy.CarryOverDays > 0 {
		prev, err := c.store.GetBalance(ctx, employee.ID, year-1)
		switch {
		case err == nil:
			previous = &prev.AvailableDays
		case !errors.Is(err, sentinel.ErrNotFound):
			return c.employeeFailed(ctx, employee, fmt.Errorf("load previous balance: %w", err))
		}
	}
	used, err := c.store.SumVacationDays(ctx, employee.ID, year, models.StatusApproved)
	if err != nil {
		return c.employeeFailed(ctx, employee, fmt.Errorf("sum approved days: %w", err))
	}
	pending, err := c.store.SumVacationDays(ctx, employee.ID, year, models.StatusPending)
	if err != nil {
		return c.employeeFailed(ctx, employee, fmt.Errorf("sum pending days: %w", err))
	}

	balance := ComputeBalance(policy, employee.HireDate, year, previous, used, pending)
	balance.EmployeeID = employee.ID
	balance.CompanyID = employee.CompanyID
	balance.UpdatedAt = requestcontext.Now(ctx)
	if err := c.store.UpsertBalance(ctx, &balance); err != nil {
		return c.employeeFailed(ctx, employee, fmt.Errorf("save balance: %w", err))
	}

	c.metrics.IncrementBalance("updated")
	c.emitAudit(ctx, employee, &balance)
	return models.EmployeeBalance{Employee: employee, Balance: &balance, Success: true}
}

func (c *VacationCalculator) employeeFailed(ctx context.Context, employee *dirmodels.Employee, err error) models.EmployeeBalance {
	c.metrics.IncrementBalance("failed")
	c.logger.ErrorContext(ctx, "vacation recalculation failed",
		"company_id", employee.CompanyID,
		"employee_id", employee.ID,
		"error", err,
	)
	return models.EmployeeBalance{Employee: employee, Success: false, Error: err.Error()}
}

func (c *VacationCalculator) emitAudit(ctx context.Context, employee *dirmodels.Employee, b *models.Balance) {
	if c.auditPublisher == nil {
		return
	}
	err := c.auditPublisher.Emit(ctx, audit.Event{
		CompanyID: employee.CompanyID,
		Action:    audit.ActionVacationRecalculated,
		Subject:   employee.ID.String(),
		Metadata: map[string]any{
			"year": b.Year, "entitled_days": b.EntitledDays, "available_days": b.AvailableDays,
		},
	})
	if err != nil {
		c.logger.WarnContext(ctx, "failed to emit audit event", "action", audit.ActionVacationRecalculated, "error", err)
	}
}

// Entitlement returns the days granted for year. Under monthly proration an
// employee hired during year earns the months from the hire month on,
// rounded to one decimal. Employees hired after year earn nothing.
func Entitlement(policy models.VacationPolicy, hireDate *id.Date, year int) float64 {
	if hireDate == nil || hireDate.IsZero() {
		return policy.AnnualDays
	}
	if hireDate.Year() > year {
		return 0
	}
	if policy.Accrual == models.AccrualMonthlyProrate && hireDate.Year() == year {
		months := 13 - int(hireDate.Time().Month())
		return math.Round(policy.AnnualDays/12*float64(months)*10) / 10
	}
	return policy.AnnualDays
}

// ComputeBalance derives a balance. previous is last year's available days,
// nil when there is no balance for it.
func ComputeBalance(policy models.VacationPolicy, hireDate *id.Date, year int, previous *float64, used, pending float64) models.Balance {
	b := models.Balance{
		Year:         year,
		EntitledDays: Entitlement(policy, hireDate, year),
		UsedDays:     used,
		PendingDays:  pending,
	}
	if policy.CarryOverDays > 0 && previous != nil && *previous > 0 {
		b.CarriedOver = math.Min(*previous, policy.CarryOverDays)
	}
	b.AvailableDays = math.Max(0, b.EntitledDays+b.CarriedOver-b.UsedDays-b.PendingDays)
	return b
}
