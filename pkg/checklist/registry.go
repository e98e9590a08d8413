package checklist

import (
	"crypto/sha256"
	"fmt"
	"sync/atomic"
	"time"
)

// ConfigError reports an invalid checklist configuration. It is returned at
// registry construction or load time so a broken checklist never serves
// requests.
type ConfigError struct {
	// Code is the rule code involved, if known.
	Code string

	// Message describes the configuration problem.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("checklist configuration error for rule %q: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("checklist configuration error: %s", e.Message)
}

// Registry is the fixed, ordered set of compliance rules for one code
// edition. It is immutable after construction: there are no mutation
// operations, so it is safe to share across concurrent evaluations without
// locking. Replacing a registry means constructing a new one (see Store).
type Registry struct {
	rules    []Rule
	version  string
	loadTime time.Time
}

// NewRegistry constructs a registry from rules, preserving their order.
// It fails fast with a ConfigError when a rule has an empty code, a nil
// detector, or a code that duplicates an earlier rule.
func NewRegistry(rules []Rule) (*Registry, error) {
	seen := make(map[string]struct{}, len(rules))

	for _, rule := range rules {
		if rule.Code == "" {
			return nil, &ConfigError{Message: "rule code cannot be empty"}
		}
		if rule.Detector == nil {
			return nil, &ConfigError{Code: rule.Code, Message: "rule detector cannot be nil"}
		}
		if _, ok := seen[rule.Code]; ok {
			return nil, &ConfigError{Code: rule.Code, Message: "duplicate rule code"}
		}
		seen[rule.Code] = struct{}{}
	}

	copied := make([]Rule, len(rules))
	copy(copied, rules)

	return &Registry{
		rules:    copied,
		version:  computeVersion(copied),
		loadTime: time.Now(),
	}, nil
}

// Rules returns the full rule set in insertion order. The returned slice is
// a copy; callers cannot mutate the registry through it.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, len(r.rules))
	copy(rules, r.rules)
	return rules
}

// Len returns the number of rules in the registry.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Version returns a content hash over the rule codes and criteria. Two
// registries built from the same checklist have the same version.
func (r *Registry) Version() string {
	return r.version
}

// LoadTime returns when this registry was constructed.
func (r *Registry) LoadTime() time.Time {
	return r.loadTime
}

// computeVersion hashes the rule codes and criteria in order.
func computeVersion(rules []Rule) string {
	h := sha256.New()
	for _, rule := range rules {
		fmt.Fprintf(h, "%s\x00%s\x00", rule.Code, rule.Criterion)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// Store holds the active registry and supports atomic replacement. Readers
// always observe a complete registry; a swap never exposes a partially
// loaded rule set.
type Store struct {
	active atomic.Pointer[Registry]
}

// NewStore creates a store with reg as the active registry.
func NewStore(reg *Registry) *Store {
	s := &Store{}
	s.active.Store(reg)
	return s
}

// Active returns the currently active registry.
func (s *Store) Active() *Registry {
	return s.active.Load()
}

// Swap atomically replaces the active registry.
func (s *Store) Swap(reg *Registry) {
	s.active.Store(reg)
}
