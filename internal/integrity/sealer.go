package integrity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"worktime/internal/audit"
	dirmodels "worktime/internal/directory/models"
	"worktime/internal/integrity/metrics"
	"worktime/internal/integrity/models"
	"worktime/internal/integrity/notary"
	"worktime/internal/platform/tracing"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/circuit"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/requestcontext"
)

// Action selects what a notarization request seals.
type Action string

const (
	ActionTimestampDaily         Action = "timestamp_daily"
	ActionNotarizeAcknowledgment Action = "notarize_acknowledgment"
)

type NotarizeRequest struct {
	Action      Action
	Company     *dirmodels.Company
	Hash        string
	Date        id.Date
	DailyRootID *id.DailyRootID
}

// NotarizeResponse reports one attempt. Pending means the provider accepted
// the evidence but has not issued a token yet.
type NotarizeResponse struct {
	Success      bool
	Pending      bool
	EvidenceID   id.EvidenceID
	ProviderID   string
	TSPToken     string
	TSPTimestamp *time.Time
}

// Sealer drives evidences through the QTSP and records every attempt so
// failures can be retried from stored state.
type Sealer struct {
	notary         Notary
	store          Store
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	breaker        *circuit.Breaker
}

type SealerOption func(*Sealer)

// WithBreaker suspends provider calls after repeated outages or timeouts.
// Suspended attempts are recorded as provider_outage failures.
func WithBreaker(b *circuit.Breaker) SealerOption {
	return func(s *Sealer) {
		s.breaker = b
	}
}

func NewSealer(n Notary, store Store, logger *slog.Logger, m *metrics.Metrics, auditPublisher AuditPublisher, opts ...SealerOption) *Sealer {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sealer{notary: n, store: store, logger: logger, metrics: m, auditPublisher: auditPublisher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notarize starts or continues the evidence for req and returns its outcome.
// Provider failures are recorded on the evidence before being returned.
func (s *Sealer) Notarize(ctx context.Context, req NotarizeRequest) (*NotarizeResponse, error) {
	if req.Company == nil || req.Hash == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company and hash are required")
	}
	var (
		ev  *models.Evidence
		err error
	)
	switch req.Action {
	case ActionTimestampDaily:
		if req.DailyRootID == nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, "daily root is required for timestamp_daily")
		}
		ev, err = s.store.EvidenceForRoot(ctx, *req.DailyRootID)
		if errors.Is(err, sentinel.ErrNotFound) {
			ev, err = s.newEvidence(ctx, req.Company.ID, models.EvidenceDailyTimestamp, req.DailyRootID)
		}
	case ActionNotarizeAcknowledgment:
		ev, err = s.newEvidence(ctx, req.Company.ID, models.EvidenceAcknowledgment, nil)
	default:
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown notarization action %q", req.Action))
	}
	if err != nil {
		return nil, fmt.Errorf("prepare evidence: %w", err)
	}
	if ev.Status == models.EvidenceCompleted {
		return responseFor(ev), nil
	}
	return s.attempt(ctx, req, ev)
}

// Retry resumes a stored daily timestamp evidence.
func (s *Sealer) Retry(ctx context.Context, company *dirmodels.Company, ev *models.Evidence) (*NotarizeResponse, error) {
	if ev.DailyRootID == nil {
		return nil, fmt.Errorf("evidence %s has no daily root", ev.ID)
	}
	root, err := s.store.GetRootByID(ctx, *ev.DailyRootID)
	if err != nil {
		return nil, fmt.Errorf("load daily root: %w", err)
	}
	return s.attempt(ctx, NotarizeRequest{
		Action:      ActionTimestampDaily,
		Company:     company,
		Hash:        root.RootHash,
		Date:        root.Date,
		DailyRootID: &root.ID,
	}, ev)
}

func (s *Sealer) newEvidence(ctx context.Context, companyID id.CompanyID, typ models.EvidenceType, rootID *id.DailyRootID) (*models.Evidence, error) {
	now := requestcontext.Now(ctx)
	ev := &models.Evidence{
		ID:          id.EvidenceID(uuid.New()),
		CompanyID:   companyID,
		DailyRootID: rootID,
		Type:        typ,
		Status:      models.EvidenceProcessing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.SaveEvidence(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *Sealer) attempt(ctx context.Context, req NotarizeRequest, ev *models.Evidence) (resp *NotarizeResponse, err error) {
	ctx, span := tracing.Start(ctx, "integrity.notarize",
		attribute.String("company_id", req.Company.ID.String()),
		attribute.String("action", string(req.Action)),
	)
	defer func() { tracing.End(span, err) }()
	start := time.Now()
	defer func() { s.metrics.ObserveNotaryLatency(time.Since(start)) }()

	// Bookkeeping must survive the caller's notary deadline.
	persistCtx := context.WithoutCancel(ctx)

	if !s.breaker.Allow() {
		s.logger.WarnContext(ctx, "qtsp circuit open, skipping provider call", "evidence_id", ev.ID)
		return s.fail(persistCtx, ev, notary.CircuitOpen("notarize"))
	}
	defer func() { s.recordOutcome(ctx, err) }()

	if ev.ProviderEvidenceID == "" {
		groupID, err := s.evidenceGroup(ctx, req.Company, req.Date)
		if err != nil {
			return s.fail(persistCtx, ev, err)
		}
		providerID, err := s.notary.CreateEvidence(ctx, groupID, evidenceRequest(req))
		if err != nil {
			return s.fail(persistCtx, ev, err)
		}
		ev.ProviderEvidenceID = providerID
		ev.Status = models.EvidenceProcessing
		ev.UpdatedAt = requestcontext.Now(ctx)
		if err := s.store.SaveEvidence(persistCtx, ev); err != nil {
			return nil, fmt.Errorf("save evidence: %w", err)
		}
	}

	token, err := s.notary.AwaitToken(ctx, ev.ProviderEvidenceID)
	if err != nil {
		return s.fail(persistCtx, ev, err)
	}
	if token == nil {
		s.metrics.IncrementNotarization("pending", "")
		s.logger.InfoContext(ctx, "timestamp token still pending",
			"company_id", ev.CompanyID,
			"evidence_id", ev.ID,
			"provider_evidence_id", ev.ProviderEvidenceID,
		)
		resp := responseFor(ev)
		resp.Pending = true
		return resp, nil
	}
	return s.complete(persistCtx, ev, token)
}

func (s *Sealer) complete(ctx context.Context, ev *models.Evidence, token *notary.Token) (*NotarizeResponse, error) {
	now := requestcontext.Now(ctx)
	ts := token.Timestamp
	ev.Status = models.EvidenceCompleted
	ev.TSPToken = token.Value
	ev.TSPTimestamp = &ts
	ev.CompletedAt = &now
	ev.UpdatedAt = now
	ev.NextRetryAt = nil
	ev.ErrorMessage = ""
	if err := s.store.SaveEvidence(ctx, ev); err != nil {
		return nil, fmt.Errorf("save evidence: %w", err)
	}
	if ev.DailyRootID != nil {
		if err := s.store.MarkSealed(ctx, *ev.DailyRootID, ts); err != nil {
			return nil, fmt.Errorf("mark daily root sealed: %w", err)
		}
		s.emitAudit(ctx, ev, audit.ActionDailyRootSealed, map[string]any{
			"evidence_id": ev.ID.String(), "tsp_timestamp": ts,
		})
	}
	s.metrics.IncrementNotarization("sealed", "")
	return responseFor(ev), nil
}

// recordOutcome feeds the breaker. Only failures that say the provider is
// unreachable count against it.
func (s *Sealer) recordOutcome(ctx context.Context, err error) {
	if s.breaker == nil {
		return
	}
	if err == nil {
		if _, change := s.breaker.RecordSuccess(); change.Closed {
			s.logger.InfoContext(ctx, "qtsp circuit closed", "breaker", s.breaker.Name())
		}
		return
	}
	switch notary.CategoryOf(err) {
	case notary.ErrorProviderOutage, notary.ErrorTimeout:
		if _, change := s.breaker.RecordFailure(); change.Opened {
			s.logger.WarnContext(ctx, "qtsp circuit opened", "breaker", s.breaker.Name())
		}
	default:
		s.breaker.Release()
	}
}

// fail records a failed attempt and schedules the next one.
func (s *Sealer) fail(ctx context.Context, ev *models.Evidence, cause error) (*NotarizeResponse, error) {
	now := requestcontext.Now(ctx)
	delay := RetryDelay(ev.RetryCount)
	next := now.Add(delay)
	ev.Status = models.EvidenceFailed
	ev.RetryCount++
	ev.BackoffSeconds = int(delay / time.Second)
	ev.NextRetryAt = &next
	ev.ErrorMessage = cause.Error()
	ev.UpdatedAt = now

	category := notary.CategoryOf(cause)
	s.metrics.IncrementNotarization("failed", string(category))
	if err := s.store.SaveEvidence(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to record notarization failure",
			"evidence_id", ev.ID,
			"error", err,
		)
	}
	if ev.DailyRootID != nil {
		s.emitAudit(ctx, ev, audit.ActionDailyRootSealFailed, map[string]any{
			"evidence_id": ev.ID.String(), "category": string(category),
			"retry_count": ev.RetryCount, "error": cause.Error(),
		})
	}
	resp := responseFor(ev)
	return resp, cause
}

func (s *Sealer) evidenceGroup(ctx context.Context, company *dirmodels.Company, date id.Date) (string, error) {
	yearMonth := date.YearMonth()
	groupID, err := s.store.GetEvidenceGroup(ctx, company.ID, yearMonth)
	if err == nil {
		return groupID, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return "", fmt.Errorf("load evidence group: %w", err)
	}
	caseFileID, err := s.caseFile(ctx, company)
	if err != nil {
		return "", err
	}
	groupID, err = s.notary.CreateEvidenceGroup(ctx, caseFileID, "Clock records "+yearMonth)
	if err != nil {
		return "", err
	}
	if err := s.store.SaveEvidenceGroup(context.WithoutCancel(ctx), company.ID, yearMonth, groupID); err != nil {
		return "", fmt.Errorf("save evidence group: %w", err)
	}
	return groupID, nil
}

func (s *Sealer) caseFile(ctx context.Context, company *dirmodels.Company) (string, error) {
	caseFileID, err := s.store.GetCaseFile(ctx, company.ID)
	if err == nil {
		return caseFileID, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return "", fmt.Errorf("load case file: %w", err)
	}
	caseFileID, err = s.notary.CreateCaseFile(ctx, "Time records - "+company.Name, "Clock-in evidence for "+company.Name)
	if err != nil {
		return "", err
	}
	if err := s.store.SaveCaseFile(context.WithoutCancel(ctx), company.ID, caseFileID); err != nil {
		return "", fmt.Errorf("save case file: %w", err)
	}
	return caseFileID, nil
}

func (s *Sealer) emitAudit(ctx context.Context, ev *models.Evidence, action audit.Action, metadata map[string]any) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		CompanyID: ev.CompanyID,
		Action:    action,
		Subject:   ev.DailyRootID.String(),
		Metadata:  metadata,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}

func evidenceRequest(req NotarizeRequest) notary.EvidenceRequest {
	if req.Action == ActionNotarizeAcknowledgment {
		return notary.EvidenceRequest{
			Name:        "Acknowledgment " + req.Date.String(),
			Description: "Acknowledgment hash recorded on " + req.Date.String(),
			Data:        req.Hash,
		}
	}
	return notary.EvidenceRequest{
		Name:        "Merkle root " + req.Date.String(),
		Description: "Merkle root of the clock events of " + req.Date.String(),
		Data:        req.Hash,
	}
}

func responseFor(ev *models.Evidence) *NotarizeResponse {
	return &NotarizeResponse{
		Success:      ev.Status == models.EvidenceCompleted,
		EvidenceID:   ev.ID,
		ProviderID:   ev.ProviderEvidenceID,
		TSPToken:     ev.TSPToken,
		TSPTimestamp: ev.TSPTimestamp,
	}
}
