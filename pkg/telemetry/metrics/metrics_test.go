package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"plancheck-hq/plancheck/pkg/config"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Namespace: "plancheck",
		Subsystem: "service",
		Path:      "/metrics",
	}
}

func TestCollectorRecordsEvaluations(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.Evaluation.RecordEvaluation("ok", 20, 50*time.Millisecond)
	collector.Evaluation.RecordEvaluation("input_error", 0, 5*time.Millisecond)
	collector.Evaluation.RecordRuleFailure("E6")
	collector.Evaluation.RecordRuleFailure("E6")
	collector.Provider.RecordRequest("openai", "success", time.Second)

	body := scrape(t, collector)

	checks := []string{
		`plancheck_service_evaluations_total{status="ok"} 1`,
		`plancheck_service_evaluations_total{status="input_error"} 1`,
		`plancheck_service_rule_failures_total{code="E6"} 2`,
		`plancheck_service_provider_requests_total{provider="openai",status="success"} 1`,
	}
	for _, want := range checks {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestCollectorPassRateOnlyForOK(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.Evaluation.RecordEvaluation("input_error", 0, time.Millisecond)

	body := scrape(t, collector)
	if !strings.Contains(body, "plancheck_service_evaluation_pass_rate_count 0") {
		t.Error("pass-rate histogram observed an input error")
	}
}

func scrape(t *testing.T, collector *Collector) string {
	t.Helper()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	return rec.Body.String()
}
