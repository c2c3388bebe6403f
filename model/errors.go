package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the policy engines and the metrics aggregator.
// Callers should match with errors.Is; concrete errors wrap these sentinels
// with the offending detail.
var (
	// ErrInvalidInput is returned when a process set cannot be simulated, for
	// example a non-positive burst, a duplicate pid or the reserved idle pid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration is returned for invalid policy settings such as a
	// non-positive round-robin quantum.
	ErrConfiguration = errors.New("invalid configuration")
)

// NewInvalidInputError wraps ErrInvalidInput with a formatted detail.
func NewInvalidInputError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NewConfigurationError wraps ErrConfiguration with a formatted detail.
func NewConfigurationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
