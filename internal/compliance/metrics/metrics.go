package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for compliance evaluation.
type Metrics struct {
	Evaluations        *prometheus.CounterVec
	EmployeeFailures   prometheus.Counter
	ViolationsRaised   *prometheus.CounterVec
	ViolationsCleared  *prometheus.CounterVec
	EvaluateLatency    prometheus.Histogram
	SinkPublishFailure prometheus.Counter
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_compliance_evaluations_total",
			Help: "Evaluation runs by outcome",
		}, []string{"outcome"}), // outcome: "success", "partial", "rejected"

		EmployeeFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worktime_compliance_employee_failures_total",
			Help: "Employees whose evaluation failed inside a batch",
		}),

		ViolationsRaised: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_compliance_violations_raised_total",
			Help: "Newly raised violations by rule and severity",
		}, []string{"rule_code", "severity"}),

		ViolationsCleared: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worktime_compliance_violations_cleared_total",
			Help: "Violations cleared by a re-evaluation",
		}, []string{"rule_code"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worktime_compliance_evaluate_duration_seconds",
			Help:    "Duration of a full company evaluation run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		SinkPublishFailure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worktime_compliance_sink_publish_failures_total",
			Help: "Failed publishes to the violation sink",
		}),
	}
}

func (m *Metrics) IncrementEvaluation(outcome string) {
	if m != nil {
		m.Evaluations.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementEmployeeFailure() {
	if m != nil {
		m.EmployeeFailures.Inc()
	}
}

func (m *Metrics) IncrementRaised(code, severity string) {
	if m != nil {
		m.ViolationsRaised.WithLabelValues(code, severity).Inc()
	}
}

func (m *Metrics) IncrementCleared(code string) {
	if m != nil {
		m.ViolationsCleared.WithLabelValues(code).Inc()
	}
}

func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementSinkFailure() {
	if m != nil {
		m.SinkPublishFailure.Inc()
	}
}
