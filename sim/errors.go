package sim

import "fmt"

// InvalidInputError reports a head position, request cylinder, or request set
// that violates the scheduling preconditions (out of [0, DiskSize) bounds,
// duplicate IDs, or an empty set where a denominator is required).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// UnsupportedPolicyError reports an algorithm name outside the closed policy
// enumeration. Unknown names are rejected at the boundary, never defaulted.
type UnsupportedPolicyError struct {
	Name string
}

func (e *UnsupportedPolicyError) Error() string {
	return fmt.Sprintf("unsupported policy %q", e.Name)
}

// ConfigurationError reports an unusable DiskConfig (non-positive disk size,
// unrecognized direction).
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
