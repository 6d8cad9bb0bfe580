package absence

import (
	"context"

	"worktime/internal/absence/models"
	"worktime/internal/audit"
	dirmodels "worktime/internal/directory/models"
	id "worktime/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// EmployeeDirectory resolves companies and their workforce.
type EmployeeDirectory interface {
	GetCompany(ctx context.Context, companyID id.CompanyID) (*dirmodels.Company, error)
	GetEmployee(ctx context.Context, employeeID id.EmployeeID) (*dirmodels.Employee, error)
	ListActiveEmployees(ctx context.Context, companyID id.CompanyID) ([]*dirmodels.Employee, error)
}

// VacationStore persists policies and balances and sums vacation requests.
type VacationStore interface {
	// GetPolicy returns sentinel.ErrNotFound when the company has none.
	GetPolicy(ctx context.Context, companyID id.CompanyID) (*models.VacationPolicy, error)
	GetBalance(ctx context.Context, employeeID id.EmployeeID, year int) (*models.Balance, error)
	UpsertBalance(ctx context.Context, balance *models.Balance) error
	// SumVacationDays totals requests of vacation types with the given status
	// that fall entirely inside year.
	SumVacationDays(ctx context.Context, employeeID id.EmployeeID, year int, status models.RequestStatus) (float64, error)
}

// RequestStore reads pending requests and records escalations.
type RequestStore interface {
	ListPending(ctx context.Context) ([]*models.PendingRequest, error)
	// LastApprovalStep returns 0 when the request has no approval steps.
	LastApprovalStep(ctx context.Context, requestID id.AbsenceRequestID) (int, error)
	// RecordEscalation appends the approval and advances the request's step.
	RecordEscalation(ctx context.Context, approval *models.Approval) error
}

// Notifier stores notifications. It reports false when a notification with
// the same dedupe key already exists.
type Notifier interface {
	Notify(ctx context.Context, n *models.Notification) (bool, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
