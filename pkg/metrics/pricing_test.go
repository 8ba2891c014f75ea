package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPricingMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *PricingMetrics
	m.ObserveDuration("quote", time.Second)
	m.IncSuccess("quote")
	m.IncFailure("quote")
	m.IncProviderFallback()

	empty := NewPricingMetrics(nil)
	empty.IncSuccess("quote")
}

func TestPricingMetricsCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewPricingMetrics(reg)

	m.IncSuccess("create_order")
	m.IncSuccess("create_order")
	m.IncFailure("")
	m.IncProviderFallback()

	if got := testutil.ToFloat64(m.success.WithLabelValues("create_order")); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.failure.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty label normalized, got %v", got)
	}
	if got := testutil.ToFloat64(m.providerFallback); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
}
