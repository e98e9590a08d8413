package checklist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// checklistFile is the on-disk YAML representation of a checklist.
type checklistFile struct {
	// Name identifies the checklist (e.g., "dubai-building-code-2021").
	Name string `yaml:"name"`

	// Rules is the ordered rule list.
	Rules []ruleSpec `yaml:"rules"`
}

// ruleSpec is a single rule entry in a checklist file. Exactly one of
// Pattern or Phrases must be set.
type ruleSpec struct {
	Code      string   `yaml:"code"`
	Criterion string   `yaml:"criterion"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Phrases   []string `yaml:"phrases,omitempty"`
}

// LoadFile reads a YAML checklist file and constructs a registry from it.
// Any configuration problem (unreadable file, malformed YAML, empty or
// duplicate codes, invalid detector patterns) is returned as an error; no
// partially valid registry is ever produced.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist file %q: %w", path, err)
	}

	return Parse(data)
}

// Parse constructs a registry from YAML checklist data.
func Parse(data []byte) (*Registry, error) {
	var file checklistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse checklist: %w", err)
	}

	if len(file.Rules) == 0 {
		return nil, &ConfigError{Message: "checklist declares no rules"}
	}

	rules := make([]Rule, 0, len(file.Rules))
	for _, spec := range file.Rules {
		rule, err := buildRule(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return NewRegistry(rules)
}

// buildRule converts a file entry into a Rule with a compiled detector.
func buildRule(spec ruleSpec) (Rule, error) {
	if spec.Code == "" {
		return Rule{}, &ConfigError{Message: "rule code cannot be empty"}
	}
	if spec.Criterion == "" {
		return Rule{}, &ConfigError{Code: spec.Code, Message: "rule criterion cannot be empty"}
	}

	switch {
	case spec.Pattern != "" && len(spec.Phrases) > 0:
		return Rule{}, &ConfigError{Code: spec.Code, Message: "rule declares both pattern and phrases"}

	case spec.Pattern != "":
		detector, err := NewRegexDetector(spec.Pattern)
		if err != nil {
			return Rule{}, &ConfigError{Code: spec.Code, Message: err.Error()}
		}
		return Rule{Code: spec.Code, Criterion: spec.Criterion, Detector: detector}, nil

	case len(spec.Phrases) > 0:
		detector, err := NewPhraseDetector(spec.Phrases)
		if err != nil {
			return Rule{}, &ConfigError{Code: spec.Code, Message: err.Error()}
		}
		return Rule{Code: spec.Code, Criterion: spec.Criterion, Detector: detector}, nil

	default:
		return Rule{}, &ConfigError{Code: spec.Code, Message: "rule declares neither pattern nor phrases"}
	}
}
