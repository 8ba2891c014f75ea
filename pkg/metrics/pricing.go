package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records pricing-engine activity per call site.
type PricingMetrics struct {
	duration         *prometheus.HistogramVec
	success          *prometheus.CounterVec
	failure          *prometheus.CounterVec
	providerFallback prometheus.Counter
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_duration_seconds",
		Help:    "Duration of order pricing calculations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"call_site"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_success",
		Help: "Successful order pricing calculations.",
	}, []string{"call_site"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_failure",
		Help: "Failed order pricing calculations.",
	}, []string{"call_site"})
	providerFallback := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_delivery_provider_fallback",
		Help: "Delivery fee calculations that fell back to tier math after a provider failure.",
	})
	reg.MustRegister(duration, success, failure, providerFallback)
	return &PricingMetrics{
		duration:         duration,
		success:          success,
		failure:          failure,
		providerFallback: providerFallback,
	}
}

// ObserveDuration records the duration for the named call site.
func (p *PricingMetrics) ObserveDuration(callSite string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(callSite)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named call site.
func (p *PricingMetrics) IncSuccess(callSite string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(callSite)).Inc()
}

// IncFailure increments the failure counter for the named call site.
func (p *PricingMetrics) IncFailure(callSite string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(callSite)).Inc()
}

// IncProviderFallback counts one provider-estimate failure that fell back to tiers.
func (p *PricingMetrics) IncProviderFallback() {
	if p == nil || p.providerFallback == nil {
		return
	}
	p.providerFallback.Inc()
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
