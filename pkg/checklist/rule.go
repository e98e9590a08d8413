package checklist

import (
	"fmt"
	"regexp"
	"strings"
)

// Detector decides whether a rule's requirement is addressed anywhere in a
// document's text. Implementations must be safe for concurrent use and must
// treat matching as case-insensitive.
//
// The evaluator only depends on this single capability, so new detector
// kinds (token sets, phrase lists) can be added without changing the
// evaluation contract.
type Detector interface {
	// Matches reports whether the detector finds evidence of the
	// requirement in text. The text is expected to be normalized
	// (lower-cased) by the caller; implementations remain case-insensitive
	// regardless.
	Matches(text string) bool
}

// Rule is a single compliance criterion in a checklist.
type Rule struct {
	// Code is the building-code identifier (e.g., "E6"). It is unique
	// within a registry and stable across evaluations.
	Code string

	// Criterion is the human-readable requirement
	// (e.g., "door width ≥ 900mm").
	Criterion string

	// Detector is the pattern that, if found in the document text, is
	// interpreted as evidence the requirement is addressed.
	Detector Detector
}

// RegexDetector matches document text against a case-insensitive regular
// expression. The pattern is compiled once at construction; a malformed
// pattern is a configuration error, never an evaluation-time failure.
type RegexDetector struct {
	expr string
	re   *regexp.Regexp
}

// NewRegexDetector compiles expr as a case-insensitive pattern.
func NewRegexDetector(expr string) (*RegexDetector, error) {
	if expr == "" {
		return nil, fmt.Errorf("detector pattern cannot be empty")
	}

	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("invalid detector pattern %q: %w", expr, err)
	}

	return &RegexDetector{expr: expr, re: re}, nil
}

// MustRegexDetector is like NewRegexDetector but panics on a malformed
// pattern. It is intended for the built-in checklist, where patterns are
// compile-time constants.
func MustRegexDetector(expr string) *RegexDetector {
	d, err := NewRegexDetector(expr)
	if err != nil {
		panic(err)
	}
	return d
}

// Matches reports whether the pattern matches anywhere in text.
func (d *RegexDetector) Matches(text string) bool {
	return d.re.MatchString(text)
}

// String returns the original (uncompiled) pattern.
func (d *RegexDetector) String() string {
	return d.expr
}

// PhraseDetector matches when any of its phrases occurs as a substring of
// the document text. Phrases are folded to lower case at construction.
type PhraseDetector struct {
	phrases []string
}

// NewPhraseDetector creates a detector from a list of phrases. At least one
// non-empty phrase is required.
func NewPhraseDetector(phrases []string) (*PhraseDetector, error) {
	folded := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		folded = append(folded, strings.ToLower(p))
	}

	if len(folded) == 0 {
		return nil, fmt.Errorf("phrase detector requires at least one phrase")
	}

	return &PhraseDetector{phrases: folded}, nil
}

// Matches reports whether any phrase occurs in text.
func (d *PhraseDetector) Matches(text string) bool {
	lowered := strings.ToLower(text)
	for _, p := range d.phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// String returns the phrase list joined with "|".
func (d *PhraseDetector) String() string {
	return strings.Join(d.phrases, "|")
}
