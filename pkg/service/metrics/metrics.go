package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

// Metrics tracks risk creation and store access.
// Each instance owns its registry so several can coexist in one process.
type Metrics struct {
	registry         *prometheus.Registry
	RisksCreated     *prometheus.CounterVec
	ValidationFailed *prometheus.CounterVec
	StoreDuration    *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RisksCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "riskboard_risks_created_total",
			Help: "Total number of risks created, by classification",
		}, []string{"classification"}),
		ValidationFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "riskboard_validation_failures_total",
			Help: "Total number of rejected risk inputs, by field",
		}, []string{"field"}),
		StoreDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "riskboard_store_duration_seconds",
			Help:    "Duration of risk store operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementRiskCreated records a stored risk
func (m *Metrics) IncrementRiskCreated(c types.Classification) {
	if m == nil {
		return
	}
	m.RisksCreated.WithLabelValues(c.String()).Inc()
}

// IncrementValidationFailed records a rejected input
func (m *Metrics) IncrementValidationFailed(field string) {
	if m == nil {
		return
	}
	m.ValidationFailed.WithLabelValues(field).Inc()
}

// ObserveStore records the duration of a store operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveStore(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
