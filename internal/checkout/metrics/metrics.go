package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the checkout module.
type Metrics struct {
	// Eligibility outcomes by method
	MethodOutcome *prometheus.CounterVec

	// Messaging config builds by result
	ConfigBuilds *prometheus.CounterVec

	// Full config build latency
	BuildLatency prometheus.Histogram
}

// New creates a Metrics instance with all checkout module metrics registered.
func New() *Metrics {
	return &Metrics{
		MethodOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bnpl_gateway_method_outcomes_total",
			Help: "Eligibility outcomes by payment method",
		}, []string{"method", "outcome"}), // outcome: "eligible", "excluded"

		ConfigBuilds: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bnpl_gateway_config_builds_total",
			Help: "Messaging config builds by result",
		}, []string{"result"}), // result: "built", "skipped"

		BuildLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bnpl_gateway_config_build_duration_seconds",
			Help:    "Duration of messaging config builds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementMethodOutcome records one eligibility outcome for a method.
func (m *Metrics) IncrementMethodOutcome(method, outcome string) {
	if m != nil {
		m.MethodOutcome.WithLabelValues(method, outcome).Inc()
	}
}

// IncrementConfigBuild records one config build result.
func (m *Metrics) IncrementConfigBuild(result string) {
	if m != nil {
		m.ConfigBuilds.WithLabelValues(result).Inc()
	}
}

// ObserveBuildLatency records a config build duration.
func (m *Metrics) ObserveBuildLatency(d time.Duration) {
	if m != nil {
		m.BuildLatency.Observe(d.Seconds())
	}
}
