package integrity

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
	dirmodels "worktime/internal/directory/models"
	"worktime/internal/integrity/metrics"
	"worktime/internal/integrity/models"
	"worktime/internal/platform/tracing"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/requestcontext"
)

const (
	defaultWorkers       = 4
	defaultNotaryTimeout = 30 * time.Second
)

// Service builds daily Merkle roots over clock events and hands them to the
// notarizer. Persisting a root and sealing it are separate outcomes: a root
// is valid evidence even when sealing fails.
type Service struct {
	directory      CompanyDirectory
	events         EventLister
	store          Store
	notarizer      Notarizer
	auditPublisher AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
	workers        int
	notaryTimeout  time.Duration
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

// WithNotarizer enables sealing. Without it roots stay unsealed.
func WithNotarizer(n Notarizer) Option {
	return func(s *Service) {
		s.notarizer = n
	}
}

func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithNotaryTimeout bounds each sealing attempt made while generating roots.
func WithNotaryTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.notaryTimeout = d
		}
	}
}

func New(directory CompanyDirectory, events EventLister, store Store, opts ...Option) *Service {
	s := &Service{
		directory:     directory,
		events:        events,
		store:         store,
		workers:       defaultWorkers,
		notaryTimeout: defaultNotaryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// GenerateDailyRoot builds the root for one company or for every company.
// Each company is isolated: its failure is reported in its own entry.
func (s *Service) GenerateDailyRoot(ctx context.Context, req models.GenerateRequest) (result *models.GenerateResult, err error) {
	ctx, span := tracing.Start(ctx, "integrity.generate_daily_root")
	defer func() { tracing.End(span, err) }()

	date := id.NewDate(requestcontext.Now(ctx).UTC()).AddDays(-1)
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}
	span.SetAttributes(attribute.String("date", date.String()))

	companies, err := s.targetCompanies(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	results := make([]models.CompanyResult, len(companies))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, company := range companies {
		g.Go(func() error {
			results[i] = s.generateForCompany(ctx, company, date)
			return nil
		})
	}
	_ = g.Wait()

	result = &models.GenerateResult{Success: true, Date: date, Results: results}
	for _, r := range results {
		if !r.Success {
			result.Success = false
		}
	}
	s.logger.InfoContext(ctx, "daily root generation completed",
		"date", date,
		"companies", len(companies),
		"success", result.Success,
	)
	return result, nil
}

func (s *Service) targetCompanies(ctx context.Context, companyID *id.CompanyID) ([]*dirmodels.Company, error) {
	if companyID == nil {
		companies, err := s.directory.ListCompanies(ctx)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list companies")
		}
		return companies, nil
	}
	if companyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company_id is invalid")
	}
	company, err := s.directory.GetCompany(ctx, *companyID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "company not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load company")
	}
	return []*dirmodels.Company{company}, nil
}

func (s *Service) generateForCompany(ctx context.Context, company *dirmodels.Company, date id.Date) (res models.CompanyResult) {
	defer func() {
		if r := recover(); r != nil {
			res = s.companyFailed(ctx, company, date, fmt.Errorf("panic during root generation: %v", r))
		}
	}()

	existing, err := s.store.GetRoot(ctx, company.ID, date)
	switch {
	case err == nil:
		s.metrics.IncrementRoot("already_exists")
		return existingResult(existing)
	case !errors.Is(err, sentinel.ErrNotFound):
		return s.companyFailed(ctx, company, date, fmt.Errorf("check existing root: %w", err))
	}

	start, end := date.Window(time.UTC)
	events, err := s.events.ListCompanyEvents(ctx, company.ID, start, end)
	if err != nil {
		return s.companyFailed(ctx, company, date, fmt.Errorf("load clock events: %w", err))
	}
	hashes, legacy := LeafHashes(events)
	rootHash, ok := BuildMerkleRoot(hashes)
	if !ok {
		s.metrics.IncrementRoot("skipped")
		return models.CompanyResult{CompanyID: company.ID, Success: true, Skipped: true}
	}
	if legacy > 0 {
		s.metrics.AddLegacyLeaves(legacy)
		s.logger.WarnContext(ctx, "clock events without hash used the id fallback",
			"company_id", company.ID,
			"date", date,
			"legacy_events", legacy,
		)
	}

	root := &models.DailyRoot{
		ID:         id.DailyRootID(uuid.New()),
		CompanyID:  company.ID,
		Date:       date,
		RootHash:   rootHash,
		EventCount: len(events),
		CreatedAt:  requestcontext.Now(ctx),
	}
	inserted, err := s.store.InsertRoot(ctx, root)
	if err != nil {
		return s.companyFailed(ctx, company, date, fmt.Errorf("insert daily root: %w", err))
	}
	if !inserted {
		// A concurrent run won the insert.
		winner, err := s.store.GetRoot(ctx, company.ID, date)
		if err != nil {
			return s.companyFailed(ctx, company, date, fmt.Errorf("load concurrent root: %w", err))
		}
		s.metrics.IncrementRoot("already_exists")
		return existingResult(winner)
	}

	s.metrics.IncrementRoot("created")
	s.emitAudit(ctx, company.ID, root, audit.ActionDailyRootCreated, map[string]any{
		"date": date.String(), "root_hash": rootHash, "event_count": root.EventCount,
	})
	s.logger.InfoContext(ctx, "daily root created",
		"company_id", company.ID,
		"date", date,
		"event_count", root.EventCount,
		"root_hash", rootHash,
	)

	return models.CompanyResult{
		CompanyID:       company.ID,
		Success:         true,
		DailyRootID:     &root.ID,
		RootHash:        rootHash,
		EventCount:      root.EventCount,
		LegacyEvents:    legacy,
		QTSPTimestamped: s.seal(ctx, company, root),
	}
}

// seal makes one bounded notarization attempt. Its outcome never fails the
// root; failed attempts are left to the reconciler.
func (s *Service) seal(ctx context.Context, company *dirmodels.Company, root *models.DailyRoot) bool {
	if s.notarizer == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, s.notaryTimeout)
	defer cancel()

	resp, err := s.notarizer.Notarize(ctx, NotarizeRequest{
		Action:      ActionTimestampDaily,
		Company:     company,
		Hash:        root.RootHash,
		Date:        root.Date,
		DailyRootID: &root.ID,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "daily root notarization failed",
			"company_id", company.ID,
			"date", root.Date,
			"error", err,
		)
		return false
	}
	return resp.Success
}

func (s *Service) companyFailed(ctx context.Context, company *dirmodels.Company, date id.Date, err error) models.CompanyResult {
	s.metrics.IncrementRoot("failed")
	s.logger.ErrorContext(ctx, "daily root generation failed",
		"company_id", company.ID,
		"date", date,
		"error", err,
	)
	return models.CompanyResult{CompanyID: company.ID, Success: false, Error: err.Error()}
}

func (s *Service) emitAudit(ctx context.Context, companyID id.CompanyID, root *models.DailyRoot, action audit.Action, metadata map[string]any) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		CompanyID: companyID,
		Action:    action,
		Subject:   root.ID.String(),
		Metadata:  metadata,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}

func existingResult(root *models.DailyRoot) models.CompanyResult {
	return models.CompanyResult{
		CompanyID:       root.CompanyID,
		Success:         true,
		AlreadyExists:   true,
		DailyRootID:     &root.ID,
		RootHash:        root.RootHash,
		EventCount:      root.EventCount,
		QTSPTimestamped: root.Sealed,
	}
}
