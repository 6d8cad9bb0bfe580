package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for daily roots and notarization.
type Metrics struct {
	Roots             *prometheus.CounterVec
	Notarizations     *prometheus.CounterVec
	NotaryLatency     prometheus.Histogram
	ReconcileOutcomes *prometheus.CounterVec
	LegacyLeaves      prometheus.Counter
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return &Metrics{
		Roots: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_integrity_roots_total",
			Help: "Daily root generation outcomes per company",
		}, []string{"outcome"}), // outcome: "created", "already_exists", "skipped", "failed"

		Notarizations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_integrity_notarizations_total",
			Help: "Notarization attempts by outcome and failure category",
		}, []string{"outcome", "category"}),

		NotaryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worktime_integrity_notary_duration_seconds",
			Help:    "Duration of a notarization attempt including token polling",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		ReconcileOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_integrity_reconcile_total",
			Help: "Reconciliation outcomes per evidence",
		}, []string{"status"}),

		LegacyLeaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worktime_integrity_legacy_leaves_total",
			Help: "Clock events hashed with the id-only legacy fallback",
		}),
	}
}

func (m *Metrics) IncrementRoot(outcome string) {
	if m != nil {
		m.Roots.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementNotarization(outcome, category string) {
	if m != nil {
		m.Notarizations.WithLabelValues(outcome, category).Inc()
	}
}

func (m *Metrics) ObserveNotaryLatency(d time.Duration) {
	if m != nil {
		m.NotaryLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementReconcile(status string) {
	if m != nil {
		m.ReconcileOutcomes.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) AddLegacyLeaves(n int) {
	if m != nil && n > 0 {
		m.LegacyLeaves.Add(float64(n))
	}
}
