package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"worktime/internal/absence/models"
	"worktime/pkg/platform/httputil"
	"worktime/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks VacationService EscalationService

type VacationService interface {
	Recalculate(ctx context.Context, req models.RecalculateRequest) (*models.RecalculateResult, error)
}

type EscalationService interface {
	Run(ctx context.Context) (*models.EscalationResult, error)
}

// Handler exposes the absence batch jobs to schedulers.
type Handler struct {
	vacation   VacationService
	escalation EscalationService
	logger     *slog.Logger
}

func New(vacation VacationService, escalation EscalationService, logger *slog.Logger) *Handler {
	return &Handler{vacation: vacation, escalation: escalation, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/absence/vacation/recalculate", h.HandleRecalculate)
	r.Post("/absence/escalations/run", h.HandleEscalations)
}

// HandleRecalculate handles POST /absence/vacation/recalculate requests.
func (h *Handler) HandleRecalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RecalculateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.vacation.Recalculate(ctx, req.Parsed())
	if err != nil {
		h.logger.ErrorContext(ctx, "vacation recalculation failed",
			"request_id", requestID,
			"company_id", req.CompanyID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "vacation balances recalculated",
		"request_id", requestID,
		"company_id", req.CompanyID,
		"year", req.Year,
		"employees", len(result.Results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromRecalculateResult(result))
}

// HandleEscalations handles POST /absence/escalations/run requests.
func (h *Handler) HandleEscalations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	result, err := h.escalation.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sla escalation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromEscalationResult(result))
}
