package compliance

import (
	"encoding/json"
	"reflect"
	"testing"

	"plancheck-hq/plancheck/pkg/checklist"
)

func mustRegistry(t *testing.T, rules []checklist.Rule) *checklist.Registry {
	t.Helper()
	reg, err := checklist.NewRegistry(rules)
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return reg
}

func TestEvaluateDefaultChecklist(t *testing.T) {
	reg := checklist.DefaultRegistry()

	// Only the door-width and handrail-height rules have evidence here.
	report := Evaluate("door width is 1000mm, handrail height 1000mm", reg)

	if report.Status != StatusOK {
		t.Errorf("expected status %q, got %q", StatusOK, report.Status)
	}
	if report.PassRate != 20 {
		t.Errorf("expected pass rate 20, got %d", report.PassRate)
	}

	wantFailed := []string{"LCR2", "PE1", "SPpt", "PA1", "GS", "PE7", "SPsh", "LCH1"}
	if len(report.Failed) != len(wantFailed) {
		t.Fatalf("expected %d failures, got %d", len(wantFailed), len(report.Failed))
	}
	for i, code := range wantFailed {
		if report.Failed[i].Code != code {
			t.Errorf("failure %d: expected code %q, got %q", i, code, report.Failed[i].Code)
		}
	}
	for _, f := range report.Failed {
		if f.Code == "E6" || f.Code == "GD3" {
			t.Errorf("satisfied rule %q listed among failures", f.Code)
		}
	}
}

func TestEvaluateCaseInsensitive(t *testing.T) {
	reg := checklist.DefaultRegistry()

	upper := Evaluate("DOOR WIDTH 900MM", reg)
	lower := Evaluate("door width 900mm", reg)

	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("case changed the report: %+v vs %+v", upper, lower)
	}
	if upper.PassRate != 10 {
		t.Errorf("expected pass rate 10, got %d", upper.PassRate)
	}
}

func TestEvaluateEmptyDocument(t *testing.T) {
	reg := checklist.DefaultRegistry()

	report := Evaluate("", reg)

	if report.PassRate != 0 {
		t.Errorf("expected pass rate 0, got %d", report.PassRate)
	}
	if len(report.Failed) != reg.Len() {
		t.Fatalf("expected %d failures, got %d", reg.Len(), len(report.Failed))
	}
	for i, rule := range reg.Rules() {
		if report.Failed[i].Code != rule.Code {
			t.Errorf("failure %d: expected code %q, got %q", i, rule.Code, report.Failed[i].Code)
		}
	}
}

func TestEvaluatePassRateTruncates(t *testing.T) {
	// 3 of 7 satisfied: 42.857 must truncate to 42, not round to 43.
	rules := []checklist.Rule{
		{Code: "R1", Criterion: "one", Detector: checklist.MustRegexDetector(`alpha`)},
		{Code: "R2", Criterion: "two", Detector: checklist.MustRegexDetector(`bravo`)},
		{Code: "R3", Criterion: "three", Detector: checklist.MustRegexDetector(`charlie`)},
		{Code: "R4", Criterion: "four", Detector: checklist.MustRegexDetector(`delta`)},
		{Code: "R5", Criterion: "five", Detector: checklist.MustRegexDetector(`echo`)},
		{Code: "R6", Criterion: "six", Detector: checklist.MustRegexDetector(`foxtrot`)},
		{Code: "R7", Criterion: "seven", Detector: checklist.MustRegexDetector(`golf`)},
	}
	reg := mustRegistry(t, rules)

	report := Evaluate("alpha bravo charlie", reg)

	if report.PassRate != 42 {
		t.Errorf("expected pass rate 42, got %d", report.PassRate)
	}
	if len(report.Failed) != 4 {
		t.Errorf("expected 4 failures, got %d", len(report.Failed))
	}
}

func TestEvaluateBounds(t *testing.T) {
	reg := checklist.DefaultRegistry()

	docs := []string{
		"",
		"door width 900mm",
		"door ramp 1:12 path 1800 toilet parking 50 handrail 900 stair 1200 level change shower 1500 guardrail 1100",
		"completely unrelated text about gardening",
	}

	for _, doc := range docs {
		report := Evaluate(doc, reg)
		if report.PassRate < 0 || report.PassRate > 100 {
			t.Errorf("pass rate out of bounds for %q: %d", doc, report.PassRate)
		}
		if gotFailed := len(report.Failed); gotFailed > reg.Len() {
			t.Errorf("more failures than rules for %q: %d", doc, gotFailed)
		}
	}
}

func TestEvaluateAllPass(t *testing.T) {
	reg := checklist.DefaultRegistry()
	doc := "door 900 ramp 1:12 path 1800 toilet parking 50 handrail 900 " +
		"stair 1200 level change shower 1500 guardrail 1100"

	report := Evaluate(doc, reg)

	if report.PassRate != 100 {
		t.Errorf("expected pass rate 100, got %d", report.PassRate)
	}
	if len(report.Failed) != 0 {
		t.Errorf("expected no failures, got %d", len(report.Failed))
	}
}

func TestEvaluateFailureCount(t *testing.T) {
	reg := checklist.DefaultRegistry()

	report := Evaluate("door 900 stair 1200", reg)

	passed := reg.Len() - len(report.Failed)
	if report.PassRate != passed*100/reg.Len() {
		t.Errorf("pass rate %d inconsistent with %d/%d passed",
			report.PassRate, passed, reg.Len())
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	reg := checklist.DefaultRegistry()
	doc := "door width 1000mm, accessible toilet on level 2"

	first := Evaluate(doc, reg)
	second := Evaluate(doc, reg)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differed: %+v vs %+v", first, second)
	}
}

func TestEvaluateEmptyRegistry(t *testing.T) {
	reg, err := checklist.NewRegistry(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := Evaluate("any text", reg)

	// Nothing to check means nothing failed.
	if report.PassRate != 100 {
		t.Errorf("expected pass rate 100 for empty registry, got %d", report.PassRate)
	}
	if len(report.Failed) != 0 {
		t.Errorf("expected no failures, got %d", len(report.Failed))
	}
}

func TestEvaluateFailureDescription(t *testing.T) {
	reg := mustRegistry(t, []checklist.Rule{
		{Code: "E6", Criterion: "door width ≥ 900mm", Detector: checklist.MustRegexDetector(`door.*900`)},
	})

	report := Evaluate("no doors mentioned", reg)

	want := "Missing or non-compliant: door width ≥ 900mm"
	if report.Failed[0].Description != want {
		t.Errorf("expected description %q, got %q", want, report.Failed[0].Description)
	}
}

func TestReportJSONShape(t *testing.T) {
	reg := mustRegistry(t, []checklist.Rule{
		{Code: "E6", Criterion: "door width ≥ 900mm", Detector: checklist.MustRegexDetector(`door.*900`)},
		{Code: "GS", Criterion: "stair width ≥ 1200mm", Detector: checklist.MustRegexDetector(`stair.*1200`)},
	})

	report := Evaluate("door width 900mm", reg)

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("failed to marshal report: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Errorf("expected status ok, got %v", decoded["status"])
	}
	if decoded["pass_rate"] != float64(50) {
		t.Errorf("expected pass_rate 50, got %v", decoded["pass_rate"])
	}
	failed, ok := decoded["failed"].([]interface{})
	if !ok || len(failed) != 1 {
		t.Fatalf("expected one failed entry, got %v", decoded["failed"])
	}
	entry := failed[0].(map[string]interface{})
	if entry["code"] != "GS" {
		t.Errorf("expected failed code GS, got %v", entry["code"])
	}
	if entry["description"] != "Missing or non-compliant: stair width ≥ 1200mm" {
		t.Errorf("unexpected description %v", entry["description"])
	}
}

func TestReportEmptyFailedMarshalsAsArray(t *testing.T) {
	reg := mustRegistry(t, []checklist.Rule{
		{Code: "E6", Criterion: "door width", Detector: checklist.MustRegexDetector(`door`)},
	})

	data, err := json.Marshal(Evaluate("door", reg))
	if err != nil {
		t.Fatalf("failed to marshal report: %v", err)
	}

	if string(data) != `{"status":"ok","pass_rate":100,"failed":[]}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}
