// Package scenario loads simulation scenarios from YAML files and provides
// the built-in sample set used when no file is given.
package scenario

import (
	"fmt"
	"os"

	"github.com/me/cpusched/pkg/model"
	"gopkg.in/yaml.v3"
)

// Scenario is one simulation input: a process set plus an optional default
// policy and quantum. Command-line flags override the file values.
type Scenario struct {
	Name      string              `yaml:"name"`
	Policy    string              `yaml:"policy"`
	Quantum   int                 `yaml:"quantum"`
	Processes []model.ProcessSpec `yaml:"processes"`
}

// Load reads and parses a scenario file. The scenario is validated before
// being returned.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the process set and, when a policy is named, that it
// parses and carries a usable quantum.
func (sc *Scenario) Validate() error {
	if errs := model.ValidateProcesses(sc.Processes); errs != nil {
		return fmt.Errorf("invalid process set: %s (field %s)", errs[0].Message, errs[0].Field)
	}
	if sc.Policy != "" {
		policy, err := model.ParsePolicy(sc.Policy)
		if err != nil {
			return err
		}
		if policy.NeedsQuantum() && sc.Quantum <= 0 {
			return fmt.Errorf("policy %s requires a positive quantum, got %d", policy, sc.Quantum)
		}
	}
	return nil
}

// Sample returns the built-in demo scenario: five staggered arrivals with
// mixed priorities and a Round Robin quantum of 2.
func Sample() *Scenario {
	return &Scenario{
		Name:    "sample",
		Policy:  model.PolicyFCFS.String(),
		Quantum: 2,
		Processes: []model.ProcessSpec{
			{ID: 1, Arrival: 0, Burst: 5, Priority: 2},
			{ID: 2, Arrival: 1, Burst: 3, Priority: 1},
			{ID: 3, Arrival: 2, Burst: 8, Priority: 4},
			{ID: 4, Arrival: 3, Burst: 6, Priority: 3},
			{ID: 5, Arrival: 4, Burst: 4, Priority: 2},
		},
	}
}
