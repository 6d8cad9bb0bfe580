package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks vacation recalculation and SLA escalation.
type Metrics struct {
	Balances    *prometheus.CounterVec
	Escalations *prometheus.CounterVec
	Warnings    prometheus.Counter
	Failures    *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Balances: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_absence_balances_total",
			Help: "Vacation balances recalculated by outcome",
		}, []string{"outcome"}),

		Escalations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_absence_escalations_total",
			Help: "Absence requests escalated after their SLA, by approver role",
		}, []string{"role"}),

		Warnings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worktime_absence_sla_warnings_total",
			Help: "SLA warnings sent for requests nearing their deadline",
		}),

		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_absence_failures_total",
			Help: "Per-item failures inside absence batch runs",
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementBalance(outcome string) {
	if m != nil {
		m.Balances.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementEscalation(role string) {
	if m != nil {
		m.Escalations.WithLabelValues(role).Inc()
	}
}

func (m *Metrics) IncrementWarning() {
	if m != nil {
		m.Warnings.Inc()
	}
}

func (m *Metrics) IncrementFailure(operation string) {
	if m != nil {
		m.Failures.WithLabelValues(operation).Inc()
	}
}
