package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"plancheck-hq/plancheck/pkg/config"
)

// ProviderMetrics tracks metrics for narrative/chat AI provider requests.
//
// Metrics:
//   - plancheck_provider_requests_total: request count by provider and status
//   - plancheck_provider_request_duration_seconds: request duration histogram
type ProviderMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewProviderMetrics creates and registers provider metrics.
func NewProviderMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ProviderMetrics {
	pm := &ProviderMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_requests_total",
				Help:      "Total number of AI provider requests by status",
			},
			[]string{"provider", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_request_duration_seconds",
				Help:      "Duration of AI provider requests in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"provider"},
		),
	}

	registry.MustRegister(pm.requestsTotal, pm.requestDuration)

	return pm
}

// RecordRequest records a completed provider request. Status is "success"
// or "error".
func (pm *ProviderMetrics) RecordRequest(provider, status string, duration time.Duration) {
	pm.requestsTotal.WithLabelValues(provider, status).Inc()
	pm.requestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
