package compliance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"worktime/internal/audit"
	"worktime/internal/compliance/lock"
	"worktime/internal/compliance/metrics"
	"worktime/internal/compliance/models"
	dirmodels "worktime/internal/directory/models"
	"worktime/internal/platform/tracing"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/requestcontext"
)

const (
	defaultWorkers = 4
	defaultLockTTL = 5 * time.Minute
)

// Service evaluates labor rules for a company's employees on one day and
// keeps the stored violations in step with the result.
type Service struct {
	directory      EmployeeDirectory
	events         EventReader
	rules          RuleResolver
	violations     ViolationStore
	locker         Locker
	sink           ViolationSink
	auditPublisher AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
	location       *time.Location
	workers        int
	lockTTL        time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithSink(sink ViolationSink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

func WithLocker(locker Locker) Option {
	return func(s *Service) {
		s.locker = locker
	}
}

// WithLocation sets the time zone that defines the evaluated day.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithLockTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// New constructs a Service. Without WithLocker runs are serialized by a
// process-local lock.
func New(directory EmployeeDirectory, events EventReader, rules RuleResolver, violations ViolationStore, opts ...Option) *Service {
	s := &Service{
		directory:  directory,
		events:     events,
		rules:      rules,
		violations: violations,
		location:   time.UTC,
		workers:    defaultWorkers,
		lockTTL:    defaultLockTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.locker == nil {
		s.locker = lock.NewInMemory()
	}
	return s
}

// Evaluate runs the rule engine for every targeted employee. A failing
// employee is reported in its result entry and never aborts the batch.
func (s *Service) Evaluate(ctx context.Context, req models.EvaluateRequest) (result *models.EvaluateResult, err error) {
	ctx, span := tracing.Start(ctx, "compliance.evaluate", attribute.String("company_id", req.CompanyID.String()))
	defer func() { tracing.End(span, err) }()
	start := time.Now()

	if req.CompanyID.IsNil() {
		s.metrics.IncrementEvaluation("rejected")
		return nil, dErrors.New(dErrors.CodeBadRequest, "company_id is required")
	}
	date := s.today(ctx)
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}
	span.SetAttributes(attribute.String("date", date.String()))

	release, err := s.locker.Acquire(ctx, lockKey(req.CompanyID, date), s.lockTTL)
	if err != nil {
		s.metrics.IncrementEvaluation("rejected")
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "an evaluation for this company and date is already running")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to acquire evaluation lock")
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			s.logger.WarnContext(ctx, "failed to release evaluation lock",
				"company_id", req.CompanyID,
				"date", date,
				"error", rerr,
			)
		}
	}()

	employees, err := s.targetEmployees(ctx, req)
	if err != nil {
		return nil, err
	}
	bindings, err := s.rules.Load(ctx, req.CompanyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rule assignments")
	}

	results := make([]models.EmployeeResult, len(employees))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, emp := range employees {
		g.Go(func() error {
			results[i] = s.evaluateEmployee(ctx, emp, date, bindings)
			return nil
		})
	}
	_ = g.Wait()

	result = &models.EvaluateResult{
		Success:   true,
		CompanyID: req.CompanyID,
		Date:      date,
		Results:   results,
	}
	for _, r := range results {
		if !r.Success {
			result.Success = false
		}
	}
	outcome := "success"
	if !result.Success {
		outcome = "partial"
	}
	s.metrics.IncrementEvaluation(outcome)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	s.logger.InfoContext(ctx, "compliance evaluation completed",
		"company_id", req.CompanyID,
		"date", date,
		"employees", len(employees),
		"violations", result.ViolationCount(),
		"success", result.Success,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (s *Service) targetEmployees(ctx context.Context, req models.EvaluateRequest) ([]*dirmodels.Employee, error) {
	if req.EmployeeID == nil {
		employees, err := s.directory.ListActiveEmployees(ctx, req.CompanyID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employees")
		}
		return employees, nil
	}
	emp, err := s.directory.GetEmployee(ctx, *req.EmployeeID)
	if errors.Is(err, sentinel.ErrNotFound) || (err == nil && emp.CompanyID != req.CompanyID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "employee not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load employee")
	}
	return []*dirmodels.Employee{emp}, nil
}

func (s *Service) evaluateEmployee(ctx context.Context, emp *dirmodels.Employee, date id.Date, bindings []rulesmodels.Binding) (res models.EmployeeResult) {
	defer func() {
		if r := recover(); r != nil {
			res = s.failed(ctx, emp, date, fmt.Errorf("panic during evaluation: %v", r))
		}
	}()

	day, outcome, err := s.evaluateAndStore(ctx, emp, date, bindings)
	if err != nil {
		return s.failed(ctx, emp, date, err)
	}

	s.notify(ctx, emp, date, day.Violations, outcome)
	return models.EmployeeResult{
		EmployeeID:  emp.ID,
		Success:     true,
		WorkedHours: day.WorkedHours,
		RestHours:   day.RestHours,
		Sessions:    day.Sessions,
		Anomalies:   day.Anomalies,
		Violations:  day.Violations,
		Created:     outcome.Created,
		Retained:    outcome.Retained,
		Cleared:     outcome.Cleared,
	}
}

func (s *Service) evaluateAndStore(ctx context.Context, emp *dirmodels.Employee, date id.Date, bindings []rulesmodels.Binding) (DayEvaluation, models.ReplaceOutcome, error) {
	_, end := date.Window(s.location)
	events, err := s.events.ListEmployeeEvents(ctx, emp.ID, LookbackStart(date, s.location), end)
	if err != nil {
		return DayEvaluation{}, models.ReplaceOutcome{}, fmt.Errorf("load clock events: %w", err)
	}

	employeeID := emp.ID
	day := Evaluate(DayInput{
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		Date:       date,
		Location:   s.location,
		Events:     events,
		Rules:      s.rules.ResolveFrom(bindings, &employeeID, date),
	})

	now := requestcontext.Now(ctx)
	for i := range day.Violations {
		day.Violations[i].ID = id.ViolationID(uuid.New())
		day.Violations[i].CreatedAt = now
	}
	if anomalies := day.Anomalies; anomalies > 0 {
		s.logger.WarnContext(ctx, "clock session anomalies excluded from totals",
			"employee_id", emp.ID,
			"date", date,
			"anomalies", anomalies,
		)
	}

	outcome, err := s.violations.ReplaceDay(ctx, emp.ID, date, day.Evaluated, day.Violations)
	if err != nil {
		return DayEvaluation{}, models.ReplaceOutcome{}, fmt.Errorf("store violations: %w", err)
	}
	return day, outcome, nil
}

func (s *Service) failed(ctx context.Context, emp *dirmodels.Employee, date id.Date, err error) models.EmployeeResult {
	s.metrics.IncrementEmployeeFailure()
	s.logger.ErrorContext(ctx, "employee evaluation failed",
		"company_id", emp.CompanyID,
		"employee_id", emp.ID,
		"date", date,
		"error", err,
	)
	return models.EmployeeResult{EmployeeID: emp.ID, Success: false, Error: err.Error()}
}

// notify fans changes out to metrics, the audit trail and the sink. None of
// these can fail the evaluation.
func (s *Service) notify(ctx context.Context, emp *dirmodels.Employee, date id.Date, raised []models.Violation, outcome models.ReplaceOutcome) {
	byCode := make(map[models.Code]models.Violation, len(raised))
	for _, v := range raised {
		byCode[v.Code] = v
	}
	now := requestcontext.Now(ctx)

	var changes []models.ViolationChange
	for _, code := range outcome.Created {
		v := byCode[code]
		s.metrics.IncrementRaised(string(code), string(v.Severity))
		s.emitAudit(ctx, emp, audit.ActionViolationRaised, map[string]any{
			"rule_code": code, "date": date.String(), "severity": v.Severity,
			"detected_value": v.Detected, "threshold": v.Threshold,
		})
		changes = append(changes, models.ViolationChange{
			Kind: models.ChangeRaised, CompanyID: emp.CompanyID, EmployeeID: emp.ID, Date: date,
			Code: code, Severity: string(v.Severity), Detected: v.Detected, Threshold: v.Threshold, OccurredAt: now,
		})
	}
	for _, code := range outcome.Cleared {
		s.metrics.IncrementCleared(string(code))
		s.emitAudit(ctx, emp, audit.ActionViolationCleared, map[string]any{
			"rule_code": code, "date": date.String(),
		})
		changes = append(changes, models.ViolationChange{
			Kind: models.ChangeCleared, CompanyID: emp.CompanyID, EmployeeID: emp.ID, Date: date,
			Code: code, OccurredAt: now,
		})
	}

	if s.sink == nil || len(changes) == 0 {
		return
	}
	if err := s.sink.Publish(ctx, changes); err != nil {
		s.metrics.IncrementSinkFailure()
		s.logger.WarnContext(ctx, "failed to publish violation changes",
			"employee_id", emp.ID,
			"date", date,
			"changes", len(changes),
			"error", err,
		)
	}
}

func (s *Service) emitAudit(ctx context.Context, emp *dirmodels.Employee, action audit.Action, metadata map[string]any) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		CompanyID: emp.CompanyID,
		Action:    action,
		Subject:   emp.ID.String(),
		Metadata:  metadata,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}

func (s *Service) today(ctx context.Context) id.Date {
	return id.NewDate(requestcontext.Now(ctx).In(s.location))
}

func lockKey(companyID id.CompanyID, date id.Date) string {
	return fmt.Sprintf("compliance:evaluate:%s:%s", companyID, date)
}
