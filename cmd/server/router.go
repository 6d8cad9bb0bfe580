package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"worktime/internal/platform/metrics"
	"worktime/internal/platform/middleware"
	"worktime/pkg/platform/httputil"
)

const healthTimeout = 2 * time.Second

type healthCheck struct {
	name  string
	check func(context.Context) error
}

// registrar is implemented by every module handler.
type registrar interface {
	Register(r chi.Router)
}

type routerConfig struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tokens   middleware.TokenValidator
	health   []healthCheck
	handlers []registrar
}

// newRouter mounts the module handlers behind service-token auth. Health and
// metrics stay public for probes and scrapers.
func newRouter(cfg routerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestContext)
	r.Use(middleware.Logger(cfg.logger, cfg.metrics))
	r.Use(middleware.Recoverer(cfg.logger))

	r.Get("/healthz", healthHandler(cfg.health))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireServiceToken(cfg.tokens, cfg.logger, cfg.metrics))
		for _, h := range cfg.handlers {
			h.Register(r)
		}
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks []healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		for _, c := range checks {
			if err := c.check(ctx); err != nil {
				if resp.Checks == nil {
					resp.Checks = make(map[string]string)
				}
				resp.Checks[c.name] = err.Error()
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}
		httputil.WriteJSON(w, status, resp)
	}
}
