package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worktime/internal/absence/models"
	"worktime/internal/audit"
	"worktime/internal/platform/tracing"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/requestcontext"
)

// Requests older than this fraction of their SLA get a warning.
const warningThreshold = 0.75

var multiLevelRoles = []string{models.RoleManager, models.RoleAdmin, models.RoleSuperAdmin}

// Escalator moves pending absence requests up their approval flow once
// their SLA has passed.
type Escalator struct {
	directory EmployeeDirectory
	requests  RequestStore
	notifier  Notifier
	options
}

func NewEscalator(directory EmployeeDirectory, requests RequestStore, notifier Notifier, opts ...Option) *Escalator {
	return &Escalator{directory: directory, requests: requests, notifier: notifier, options: newOptions(opts)}
}

type outcome int

const (
	outcomeNone outcome = iota
	outcomeEscalated
	outcomeWarned
)

// Run checks every pending request against its SLA at the request clock.
func (e *Escalator) Run(ctx context.Context) (result *models.EscalationResult, err error) {
	ctx, span := tracing.Start(ctx, "absence.escalate")
	defer func() { tracing.End(span, err) }()

	now := requestcontext.Now(ctx)
	pending, err := e.requests.ListPending(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending requests")
	}

	result = &models.EscalationResult{
		Success:   true,
		Escalated: []id.AbsenceRequestID{},
		Warned:    []id.AbsenceRequestID{},
	}
	for _, p := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++
		out, err := e.check(ctx, now, p)
		if err != nil {
			e.metrics.IncrementFailure("escalate")
			e.logger.ErrorContext(ctx, "sla check failed",
				"request_id", p.Request.ID,
				"error", err,
			)
			result.Success = false
			result.Failures = append(result.Failures, models.RequestFailure{RequestID: p.Request.ID, Error: err.Error()})
			continue
		}
		switch out {
		case outcomeEscalated:
			result.Escalated = append(result.Escalated, p.Request.ID)
		case outcomeWarned:
			result.Warned = append(result.Warned, p.Request.ID)
		}
	}

	e.logger.InfoContext(ctx, "sla check completed",
		"processed", result.Processed,
		"escalated", len(result.Escalated),
		"warned", len(result.Warned),
		"failed", len(result.Failures),
	)
	return result, nil
}

// SLAHours resolves the approval SLA for an absence type.
func (e *Escalator) SLAHours(t models.AbsenceType) int {
	if t.SLAHours != nil && *t.SLAHours > 0 {
		return *t.SLAHours
	}
	if h, ok := e.slaByCategory[t.Category]; ok && h > 0 {
		return h
	}
	return e.slaDefault
}

func (e *Escalator) check(ctx context.Context, now time.Time, p *models.PendingRequest) (outcome, error) {
	slaHours := e.SLAHours(p.Type)
	elapsed := now.Sub(p.Request.CreatedAt).Hours()
	switch {
	case elapsed > float64(slaHours):
		return e.escalate(ctx, now, p, elapsed, slaHours)
	case elapsed > float64(slaHours)*warningThreshold:
		return e.warn(ctx, now, p, elapsed, slaHours)
	default:
		return outcomeNone, nil
	}
}

// NextEscalation returns the step and approver role that follow
// currentStep in flow. ok is false once the flow has no higher level.
func NextEscalation(flow models.ApprovalFlow, currentStep int) (step int, role string, ok bool) {
	step = currentStep + 1
	switch flow {
	case models.FlowMultiLevel:
		if step <= len(multiLevelRoles) {
			return step, multiLevelRoles[step-1], true
		}
	case models.FlowAdmin:
		if currentStep == 0 {
			return step, models.RoleAdmin, true
		}
	default:
		switch currentStep {
		case 0:
			return step, models.RoleManager, true
		case 1:
			return step, models.RoleAdmin, true
		}
	}
	return 0, "", false
}

func (e *Escalator) escalate(ctx context.Context, now time.Time, p *models.PendingRequest, elapsed float64, slaHours int) (outcome, error) {
	req := p.Request
	current, err := e.requests.LastApprovalStep(ctx, req.ID)
	if err != nil {
		return outcomeNone, fmt.Errorf("load approval step: %w", err)
	}
	step, role, ok := NextEscalation(p.Type.ApprovalFlow, current)
	if !ok {
		e.logger.DebugContext(ctx, "approval flow exhausted",
			"request_id", req.ID,
			"flow", p.Type.ApprovalFlow,
			"step", current,
		)
		return outcomeNone, nil
	}

	err = e.requests.RecordEscalation(ctx, &models.Approval{
		ID:           uuid.New(),
		RequestID:    req.ID,
		Step:         step,
		ApproverRole: role,
		Action:       models.ApprovalActionEscalate,
		Comment:      fmt.Sprintf("automatic escalation: SLA exceeded (%.1fh > %dh)", elapsed, slaHours),
		CreatedAt:    now,
	})
	if err != nil {
		return outcomeNone, fmt.Errorf("record escalation: %w", err)
	}

	e.notify(ctx, &models.Notification{
		ID:            uuid.New(),
		CompanyID:     req.CompanyID,
		RecipientRole: role,
		RecipientID:   e.recipientFor(ctx, req, role),
		Kind:          models.NotificationSLAEscalation,
		Title:         "Absence request escalated after SLA",
		Body: fmt.Sprintf("%s request from %s to %s waited %.1fh (SLA %dh) and moved to step %d (%s).",
			p.Type.Name, req.StartDate, req.EndDate, elapsed, slaHours, step, role),
		DedupeKey: fmt.Sprintf("sla_escalation_%s_%d", req.ID, step),
		CreatedAt: now,
	})
	e.emitAudit(ctx, req, map[string]any{
		"hours_elapsed":      elapsed,
		"sla_hours":          slaHours,
		"step":               step,
		"next_approver_role": role,
	})
	e.metrics.IncrementEscalation(role)
	e.logger.InfoContext(ctx, "absence request escalated",
		"request_id", req.ID,
		"company_id", req.CompanyID,
		"step", step,
		"role", role,
	)
	return outcomeEscalated, nil
}

// warn sends at most one reminder per quarter of the SLA.
func (e *Escalator) warn(ctx context.Context, now time.Time, p *models.PendingRequest, elapsed float64, slaHours int) (outcome, error) {
	req := p.Request
	bucket := int(elapsed / (float64(slaHours) * 0.25))
	created, err := e.notifier.Notify(ctx, &models.Notification{
		ID:            uuid.New(),
		CompanyID:     req.CompanyID,
		RecipientRole: models.RoleAdmin,
		Kind:          models.NotificationSLAWarning,
		Title:         "Absence request nearing SLA",
		Body: fmt.Sprintf("%s request from %s to %s has %.1fh left before its %dh SLA.",
			p.Type.Name, req.StartDate, req.EndDate, float64(slaHours)-elapsed, slaHours),
		DedupeKey: ReminderKey(req.ID, bucket),
		CreatedAt: now,
	})
	if err != nil {
		return outcomeNone, fmt.Errorf("send sla warning: %w", err)
	}
	if !created {
		return outcomeNone, nil
	}
	e.metrics.IncrementWarning()
	return outcomeWarned, nil
}

// ReminderKey deduplicates SLA warnings per request and SLA quarter.
func ReminderKey(requestID id.AbsenceRequestID, bucket int) string {
	return fmt.Sprintf("sla_reminder_%s_%d", requestID, bucket)
}

// recipientFor addresses manager escalations to the employee's manager.
func (e *Escalator) recipientFor(ctx context.Context, req models.Request, role string) *id.EmployeeID {
	if role != models.RoleManager {
		return nil
	}
	employee, err := e.directory.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		e.logger.WarnContext(ctx, "could not resolve manager for escalation",
			"request_id", req.ID,
			"employee_id", req.EmployeeID,
			"error", err,
		)
		return nil
	}
	return employee.ManagerID
}

func (e *Escalator) notify(ctx context.Context, n *models.Notification) {
	if _, err := e.notifier.Notify(ctx, n); err != nil {
		e.logger.WarnContext(ctx, "failed to send notification",
			"kind", n.Kind,
			"dedupe_key", n.DedupeKey,
			"error", err,
		)
	}
}

func (e *Escalator) emitAudit(ctx context.Context, req models.Request, metadata map[string]any) {
	if e.auditPublisher == nil {
		return
	}
	err := e.auditPublisher.Emit(ctx, audit.Event{
		CompanyID: req.CompanyID,
		Action:    audit.ActionAbsenceEscalated,
		Subject:   req.ID.String(),
		Actor:     "system",
		Metadata:  metadata,
	})
	if err != nil {
		e.logger.WarnContext(ctx, "failed to emit audit event", "action", audit.ActionAbsenceEscalated, "error", err)
	}
}
