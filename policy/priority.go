package policy

import (
	"context"

	"github.com/viant/schedsim/model"
)

// DefaultPriority is used for processes that carry no priority.  It sits in
// the middle of the 0..39 range, matching nice 0.
const DefaultPriority = 20

// Priority is non-preemptive priority scheduling: the ready process with the
// lowest priority value runs to completion, ties broken by earlier arrival
// and then lower pid.  Low-urgency processes can starve while more urgent
// work keeps arriving.
type Priority struct {
	// Default is assigned to processes without an explicit priority.
	Default int
}

// NewPriority creates a priority policy
func NewPriority() *Priority {
	return &Priority{Default: DefaultPriority}
}

// Name returns the policy name
func (p *Priority) Name() string {
	return NamePriority
}

// Simulate runs the workload
func (p *Priority) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	return simulate(ctx, p.Name(), processes, func(t *table) strategy {
		return newRunToCompletion(func(a, b int) bool {
			x, y := t.at(a).process, t.at(b).process
			px, py := x.PriorityOr(p.Default), y.PriorityOr(p.Default)
			if px != py {
				return px < py
			}
			return byArrivalThenPID(x, y)
		})
	})
}
