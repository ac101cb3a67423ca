package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a complete run, loadable from a YAML file.
// direction 0 means "not set in YAML" and defaults to rightward, matching
// the HTTP boundary; algorithm empty means "run every policy".
type Scenario struct {
	DiskSize    int    `yaml:"disk_size"`
	InitialHead int    `yaml:"initial_head"`
	Direction   int    `yaml:"direction"`
	Requests    []int  `yaml:"requests"`
	Algorithm   string `yaml:"algorithm"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks that the scenario describes a schedulable run.
func (s *Scenario) Validate() error {
	cfg, err := s.DiskConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(s.Requests) == 0 {
		return invalidInputf("scenario has no requests")
	}
	if err := validateRequests(s.RequestList(), cfg.DiskSize); err != nil {
		return err
	}
	if s.Algorithm != "" {
		if _, err := ParsePolicy(s.Algorithm); err != nil {
			return err
		}
	}
	return nil
}

// DiskConfig builds the engine configuration from the scenario.
func (s *Scenario) DiskConfig() (DiskConfig, error) {
	dir := DirectionRight
	if s.Direction != 0 {
		var err error
		dir, err = ParseDirection(s.Direction)
		if err != nil {
			return DiskConfig{}, err
		}
	}
	return DiskConfig{DiskSize: s.DiskSize, InitialHead: s.InitialHead, Direction: dir}, nil
}

// RequestList builds the request set from the scenario's cylinder values.
func (s *Scenario) RequestList() []Request {
	return RequestsFromCylinders(s.Requests)
}
