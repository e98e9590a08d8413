package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"plancheck-hq/plancheck/pkg/config"
)

// EvaluationMetrics tracks metrics for compliance rule evaluations.
//
// Metrics:
//   - plancheck_evaluations_total: evaluation count by status
//   - plancheck_evaluation_pass_rate: pass-rate distribution
//   - plancheck_evaluation_duration_seconds: end-to-end /analyze duration
//   - plancheck_rule_failures_total: failure count per rule code
type EvaluationMetrics struct {
	evaluationsTotal *prometheus.CounterVec
	passRate         prometheus.Histogram
	duration         prometheus.Histogram
	ruleFailures     *prometheus.CounterVec
}

// NewEvaluationMetrics creates and registers evaluation metrics.
func NewEvaluationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *EvaluationMetrics {
	em := &EvaluationMetrics{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluations_total",
				Help:      "Total number of compliance evaluations by outcome status",
			},
			[]string{"status"},
		),

		passRate: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluation_pass_rate",
				Help:      "Distribution of evaluation pass rates (percent)",
				Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0..100 in steps of 10
			},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluation_duration_seconds",
				Help:      "End-to-end duration of document analysis in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		ruleFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rule_failures_total",
				Help:      "Total number of failed checks per rule code",
			},
			[]string{"code"},
		),
	}

	registry.MustRegister(
		em.evaluationsTotal,
		em.passRate,
		em.duration,
		em.ruleFailures,
	)

	return em
}

// RecordEvaluation records a completed evaluation. Status is "ok" for a
// successful evaluation or "input_error" when the document could not be
// decoded or extracted.
func (em *EvaluationMetrics) RecordEvaluation(status string, passRate int, duration time.Duration) {
	em.evaluationsTotal.WithLabelValues(status).Inc()
	em.duration.Observe(duration.Seconds())
	if status == "ok" {
		em.passRate.Observe(float64(passRate))
	}
}

// RecordRuleFailure increments the failure counter for one rule code.
func (em *EvaluationMetrics) RecordRuleFailure(code string) {
	em.ruleFailures.WithLabelValues(code).Inc()
}
