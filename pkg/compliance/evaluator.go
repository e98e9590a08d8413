package compliance

import (
	"strings"

	"plancheck-hq/plancheck/pkg/checklist"
)

// Evaluate screens documentText against every rule in the registry and
// returns the aggregate report.
//
// A rule is satisfied iff its detector matches anywhere in the text; there
// is no per-page or proximity reasoning. An empty document is not an error
// at this layer: every rule simply fails to match and the pass rate is 0.
//
// The caller is expected to normalize the text first (see pkg/extract);
// Evaluate lower-cases defensively, which is idempotent.
func Evaluate(documentText string, reg *checklist.Registry) Report {
	text := strings.ToLower(documentText)
	rules := reg.Rules()

	// An empty registry means nothing to check, nothing failed.
	if len(rules) == 0 {
		return Report{Status: StatusOK, PassRate: 100, Failed: []Failure{}}
	}

	passed := 0
	failed := make([]Failure, 0, len(rules))

	for _, rule := range rules {
		if rule.Detector.Matches(text) {
			passed++
			continue
		}
		failed = append(failed, Failure{
			Code:        rule.Code,
			Description: failurePrefix + rule.Criterion,
		})
	}

	// Integer division truncates, which is the specified tie-break.
	return Report{
		Status:   StatusOK,
		PassRate: passed * 100 / len(rules),
		Failed:   failed,
	}
}
