package compliance

import (
	"context"
	"time"

	"worktime/internal/audit"
	clockmodels "worktime/internal/clock/models"
	"worktime/internal/compliance/models"
	dirmodels "worktime/internal/directory/models"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

type EmployeeDirectory interface {
	GetEmployee(ctx context.Context, employeeID id.EmployeeID) (*dirmodels.Employee, error)
	ListActiveEmployees(ctx context.Context, companyID id.CompanyID) ([]*dirmodels.Employee, error)
}

type EventReader interface {
	ListEmployeeEvents(ctx context.Context, employeeID id.EmployeeID, from, to time.Time) ([]*clockmodels.ClockEvent, error)
}

type RuleResolver interface {
	Load(ctx context.Context, companyID id.CompanyID) ([]rulesmodels.Binding, error)
	ResolveFrom(bindings []rulesmodels.Binding, employeeID *id.EmployeeID, date id.Date) rulesmodels.RuleSet
}

// ViolationStore replaces a day's violations for the evaluated codes in one
// atomic step.
type ViolationStore interface {
	ReplaceDay(ctx context.Context, employeeID id.EmployeeID, date id.Date, codes []models.Code, violations []models.Violation) (models.ReplaceOutcome, error)
	ListByCompanyDay(ctx context.Context, companyID id.CompanyID, date id.Date) ([]models.Violation, error)
}

// Locker serializes evaluation runs. Acquire fails with sentinel.ErrConflict
// while another holder owns key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

// ViolationSink forwards raised and cleared violations to downstream consumers.
type ViolationSink interface {
	Publish(ctx context.Context, changes []models.ViolationChange) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
