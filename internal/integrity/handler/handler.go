package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"worktime/internal/integrity/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/httputil"
	"worktime/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service Reconciler

// Service generates daily roots and manifests.
type Service interface {
	GenerateDailyRoot(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error)
	Manifest(ctx context.Context, companyID id.CompanyID, start, end id.Date) (*models.Manifest, error)
}

// Reconciler retries unsealed daily roots.
type Reconciler interface {
	Run(ctx context.Context, force bool) (*models.ReconcileResult, error)
}

type Handler struct {
	service    Service
	reconciler Reconciler
	logger     *slog.Logger
}

// New builds the handler. reconciler may be nil when notarization is disabled.
func New(service Service, reconciler Reconciler, logger *slog.Logger) *Handler {
	return &Handler{service: service, reconciler: reconciler, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/integrity/daily-roots", h.HandleGenerateDailyRoot)
	r.Post("/integrity/reconcile", h.HandleReconcile)
	r.Get("/integrity/manifest", h.HandleManifest)
}

// HandleGenerateDailyRoot handles POST /integrity/daily-roots requests.
func (h *Handler) HandleGenerateDailyRoot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.GenerateDailyRoot(ctx, req.Parsed())
	if err != nil {
		h.logger.ErrorContext(ctx, "daily root generation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "daily roots generated",
		"request_id", requestID,
		"date", result.Date,
		"companies", len(result.Results),
		"success", result.Success,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromGenerateResult(result))
}

// HandleReconcile handles POST /integrity/reconcile requests.
func (h *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if h.reconciler == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "notarization is not configured"))
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReconcileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.reconciler.Run(ctx, req.Force)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconciliation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromReconcileResult(result))
}

// HandleManifest handles GET /integrity/manifest requests.
func (h *Handler) HandleManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q, err := ParseManifestQuery(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid manifest query", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	manifest, err := h.service.Manifest(ctx, q.CompanyID, q.Start, q.End)
	if err != nil {
		h.logger.ErrorContext(ctx, "manifest export failed",
			"request_id", requestID,
			"company_id", q.CompanyID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, manifest)
}
