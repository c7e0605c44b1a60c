package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Expected check outcomes.
const (
	WantMatched = "matched"
	WantFailed  = "failed"
)

// Scenario defines a matcher conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name, so it should be filesystem-safe.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Checks are evaluated in order; every check must pass for the
	// scenario to pass.
	Checks []Check `yaml:"checks"`
}

// Check pairs a subject value with a matcher specification and the
// outcome the matcher is expected to produce.
type Check struct {
	// Name identifies the check in reports. Defaults to its position.
	Name string `yaml:"name,omitempty"`

	// Subject is the value under test: any YAML scalar, sequence or
	// mapping.
	Subject any `yaml:"subject"`

	// Matcher is the specification compiled into a match.Matcher.
	Matcher MatcherSpec `yaml:"matcher"`

	// Want is "matched" (default) or "failed".
	Want string `yaml:"want,omitempty"`
}

// MatcherSpec is the recursive YAML form of a matcher.
type MatcherSpec struct {
	// Kind selects the matcher. See the package documentation for the
	// supported kinds.
	Kind string `yaml:"kind"`

	// Value configures scalar matchers (target or bound).
	Value any `yaml:"value,omitempty"`

	// Epsilon configures close_to. It is mandatory there: the harness
	// never defaults a tolerance.
	Epsilon *float64 `yaml:"epsilon,omitempty"`

	// Elements configures collection matchers.
	Elements []any `yaml:"elements,omitempty"`

	// Of holds the child specs of all_of, any_of and not.
	Of []MatcherSpec `yaml:"of,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &s, nil
}

// LoadScenarioDir loads every *.yaml file in dir, sorted by file name
// for deterministic execution order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// Validate checks the scenario's shape. Matcher kinds are validated
// later, at compile time, where the full recursive spec is walked.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("scenario must have at least one check")
	}
	for i, c := range s.Checks {
		if c.Want != "" && c.Want != WantMatched && c.Want != WantFailed {
			return fmt.Errorf("check[%d]: want must be %q or %q, got %q", i, WantMatched, WantFailed, c.Want)
		}
		if c.Matcher.Kind == "" {
			return fmt.Errorf("check[%d]: matcher kind is required", i)
		}
	}
	return nil
}
