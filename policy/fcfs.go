package policy

import (
	"context"
	"math"

	"github.com/viant/schedsim/model"
)

// FCFS runs processes to completion in arrival order.
type FCFS struct{}

// NewFCFS creates a first come, first served policy
func NewFCFS() *FCFS {
	return &FCFS{}
}

// Name returns the policy name
func (p *FCFS) Name() string {
	return NameFCFS
}

// Simulate runs the workload
func (p *FCFS) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	return simulate(ctx, p.Name(), processes, func(*table) strategy {
		return &fcfsStrategy{}
	})
}

type fcfsStrategy struct {
	ready fifo
}

func (s *fcfsStrategy) admit(slot int) {
	s.ready.push(slot)
}

func (s *fcfsStrategy) next() (int, float64, bool) {
	slot, ok := s.ready.pop()
	return slot, math.Inf(1), ok
}

func (s *fcfsStrategy) preempted(slot int, _ float64) {
	s.ready.push(slot)
}
