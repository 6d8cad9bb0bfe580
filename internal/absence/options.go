package absence

import (
	"log/slog"

	"worktime/internal/absence/metrics"
	"worktime/internal/absence/models"
	"worktime/internal/platform/config"
)

// DefaultSLAHours applies when neither the absence type nor the catalog
// sets an approval SLA.
const DefaultSLAHours = 48

type options struct {
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	policy         models.VacationPolicy
	slaDefault     int
	slaByCategory  map[string]int
	workers        int
}

// Option configures a VacationCalculator or an Escalator.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(o *options) { o.auditPublisher = publisher }
}

// WithDefaultPolicy replaces the built-in policy used for companies
// without a stored one.
func WithDefaultPolicy(p models.VacationPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithSLA sets the fallback SLA and per-category overrides.
func WithSLA(defaultHours int, byCategory map[string]int) Option {
	return func(o *options) {
		if defaultHours > 0 {
			o.slaDefault = defaultHours
		}
		o.slaByCategory = byCategory
	}
}

func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithCatalog applies the vacation and SLA sections of a catalog file.
func WithCatalog(file *config.CatalogFile) Option {
	return func(o *options) {
		if file == nil {
			return
		}
		if file.Vacation != nil {
			o.policy = PolicyFromConfig(file.Vacation)
		}
		if file.SLA != nil {
			WithSLA(file.SLA.DefaultHours, file.SLA.ByAbsenceType)(o)
		}
	}
}

// PolicyFromConfig fills unset catalog fields from the built-in policy.
func PolicyFromConfig(c *config.VacationPolicy) models.VacationPolicy {
	p := models.DefaultVacationPolicy()
	if c == nil {
		return p
	}
	if c.AnnualDays > 0 {
		p.AnnualDays = c.AnnualDays
	}
	if c.AccrualType != "" {
		p.Accrual = models.AccrualType(c.AccrualType)
	}
	if c.CarryOverDays > 0 {
		p.CarryOverDays = c.CarryOverDays
	}
	if c.CarryOverDeadlineMonth > 0 {
		p.CarryOverDeadlineMonth = c.CarryOverDeadlineMonth
	}
	return p
}

func newOptions(opts []Option) options {
	o := options{
		policy:     models.DefaultVacationPolicy(),
		slaDefault: DefaultSLAHours,
		workers:    4,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
