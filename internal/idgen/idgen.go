package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique identifier.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }

// NewRunID returns an identifier for a single policy run.
func NewRunID(policy string) string {
	return policy + "-" + New()
}
