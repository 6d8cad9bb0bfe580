package integrity

import (
	"context"
	"fmt"
	"log/slog"

	dirmodels "worktime/internal/directory/models"
	"worktime/internal/integrity/metrics"
	"worktime/internal/integrity/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/requestcontext"
)

// EvidenceRetrier resumes a stored evidence with the QTSP, or starts one for
// a root that never got that far.
type EvidenceRetrier interface {
	Retry(ctx context.Context, company *dirmodels.Company, ev *models.Evidence) (*NotarizeResponse, error)
	Notarize(ctx context.Context, req NotarizeRequest) (*NotarizeResponse, error)
}

// Reconciler retries unsealed daily roots from stored evidence state. It
// runs on demand; scheduling belongs to the caller.
type Reconciler struct {
	directory CompanyDirectory
	store     ReconcileStore
	retrier   EvidenceRetrier
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewReconciler(directory CompanyDirectory, store ReconcileStore, retrier EvidenceRetrier, logger *slog.Logger, m *metrics.Metrics) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{directory: directory, store: store, retrier: retrier, logger: logger, metrics: m}
}

// Run retries every due evidence, or every retryable one when force is set,
// then starts sealing unsealed roots that have no evidence at all. Items are
// processed one at a time so the provider is never flooded.
func (r *Reconciler) Run(ctx context.Context, force bool) (*models.ReconcileResult, error) {
	now := requestcontext.Now(ctx)
	evidences, err := r.store.ListReconcilable(ctx, now, force, MaxRetries)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list evidences for retry")
	}
	roots, err := r.store.ListUnsealedRoots(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list unsealed daily roots")
	}

	result := &models.ReconcileResult{Success: true, Items: make([]models.ReconcileItem, 0, len(evidences)+len(roots))}
	companies := make(map[id.CompanyID]*dirmodels.Company)
	record := func(item models.ReconcileItem) {
		r.metrics.IncrementReconcile(string(item.Status))
		if item.Status == models.ReconcileFailed {
			result.Success = false
		}
		result.Items = append(result.Items, item)
	}
	for _, ev := range evidences {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		record(r.retryEvidence(ctx, companies, ev))
	}
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		record(r.sealRoot(ctx, companies, root))
	}

	r.logger.InfoContext(ctx, "notarization reconciliation completed",
		"evidences", len(evidences),
		"unsealed_roots", len(roots),
		"sealed", result.Count(models.ReconcileSealed),
		"failed", result.Count(models.ReconcileFailed),
		"max_retries", result.Count(models.ReconcileMaxRetries),
		"force", force,
	)
	return result, nil
}

func (r *Reconciler) company(ctx context.Context, cache map[id.CompanyID]*dirmodels.Company, companyID id.CompanyID) (*dirmodels.Company, error) {
	if company, ok := cache[companyID]; ok {
		return company, nil
	}
	company, err := r.directory.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	cache[companyID] = company
	return company, nil
}

func (r *Reconciler) retryEvidence(ctx context.Context, cache map[id.CompanyID]*dirmodels.Company, ev *models.Evidence) models.ReconcileItem {
	item := models.ReconcileItem{EvidenceID: ev.ID, DailyRootID: ev.DailyRootID}
	company, err := r.company(ctx, cache, ev.CompanyID)
	if err != nil {
		item.Status = models.ReconcileFailed
		item.Message = fmt.Sprintf("load company: %v", err)
		return item
	}

	resp, err := r.retrier.Retry(ctx, company, ev)
	if err != nil {
		item.Status = models.ReconcileFailed
		item.Message = err.Error()
		item.NextRetryAt = ev.NextRetryAt
		if ev.RetryCount >= MaxRetries {
			item.Status = models.ReconcileMaxRetries
			item.Message = "retry limit reached, manual intervention required: " + err.Error()
			item.NextRetryAt = nil
		}
		r.logger.WarnContext(ctx, "notarization retry failed",
			"evidence_id", ev.ID,
			"retry_count", ev.RetryCount,
			"status", item.Status,
			"error", err,
		)
		return item
	}
	applyResponse(&item, resp)
	return item
}

// sealRoot starts the first notarization of a root whose evidence was never
// recorded, e.g. because the QTSP was not configured when it was built.
func (r *Reconciler) sealRoot(ctx context.Context, cache map[id.CompanyID]*dirmodels.Company, root *models.DailyRoot) models.ReconcileItem {
	rootID := root.ID
	item := models.ReconcileItem{DailyRootID: &rootID}
	company, err := r.company(ctx, cache, root.CompanyID)
	if err != nil {
		item.Status = models.ReconcileFailed
		item.Message = fmt.Sprintf("load company: %v", err)
		return item
	}

	resp, err := r.retrier.Notarize(ctx, NotarizeRequest{
		Action:      ActionTimestampDaily,
		Company:     company,
		Hash:        root.RootHash,
		Date:        root.Date,
		DailyRootID: &rootID,
	})
	if resp != nil {
		item.EvidenceID = resp.EvidenceID
	}
	if err != nil {
		item.Status = models.ReconcileFailed
		item.Message = err.Error()
		r.logger.WarnContext(ctx, "notarization of unsealed root failed",
			"daily_root_id", root.ID,
			"company_id", root.CompanyID,
			"error", err,
		)
		return item
	}
	applyResponse(&item, resp)
	return item
}

func applyResponse(item *models.ReconcileItem, resp *NotarizeResponse) {
	if resp.Success {
		item.Status = models.ReconcileSealed
		item.Message = "sealed"
		return
	}
	item.Status = models.ReconcilePending
	item.Message = "timestamp token pending"
}
