package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/service/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.IncrementRiskCreated(types.ClassificationCritical)
	m.IncrementRiskCreated(types.ClassificationCritical)
	m.IncrementRiskCreated(types.ClassificationLow)
	m.IncrementValidationFailed("hazard")

	gt.Value(t, testutil.ToFloat64(m.RisksCreated.WithLabelValues("Critical"))).Equal(float64(2))
	gt.Value(t, testutil.ToFloat64(m.RisksCreated.WithLabelValues("Low"))).Equal(float64(1))
	gt.Value(t, testutil.ToFloat64(m.ValidationFailed.WithLabelValues("hazard"))).Equal(float64(1))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.IncrementRiskCreated(types.ClassificationHigh)
	m.ObserveStore("create", time.Now())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.String(t, rec.Body.String()).Contains(`riskboard_risks_created_total{classification="High"} 1`)
	gt.String(t, rec.Body.String()).Contains("riskboard_store_duration_seconds")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.IncrementRiskCreated(types.ClassificationLow)
	m.IncrementValidationFailed("impact")
	m.ObserveStore("list", time.Now())
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.IncrementRiskCreated(types.ClassificationMedium)

	gt.Value(t, testutil.ToFloat64(b.RisksCreated.WithLabelValues("Medium"))).Equal(float64(0))
}
