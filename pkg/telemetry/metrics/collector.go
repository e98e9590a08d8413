package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"plancheck-hq/plancheck/pkg/config"
)

// Collector is the orchestrator for all Prometheus metrics in plancheck.
// It manages metric registration and provides a unified interface for
// recording metrics across components.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Evaluation tracks compliance evaluation metrics.
	Evaluation *EvaluationMetrics

	// Provider tracks AI provider request metrics.
	Provider *ProviderMetrics
}

// NewCollector creates a metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh private registry is
// used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Collector{
		config:     cfg,
		registry:   registry,
		Evaluation: NewEvaluationMetrics(cfg, registry),
		Provider:   NewProviderMetrics(cfg, registry),
	}
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
