package policy

import (
	"context"

	"github.com/viant/schedsim/model"
)

// DefaultQuantum is the round-robin time slice used when none is configured.
const DefaultQuantum = 2.0

// RoundRobin serves the ready queue in FIFO order, one quantum at a time.
type RoundRobin struct {
	Quantum float64
}

// NewRoundRobin creates a round-robin policy; a zero quantum selects DefaultQuantum.
func NewRoundRobin(quantum float64) *RoundRobin {
	if quantum == 0 {
		quantum = DefaultQuantum
	}
	return &RoundRobin{Quantum: quantum}
}

// Name returns the policy name
func (p *RoundRobin) Name() string {
	return NameRoundRobin
}

// Simulate runs the workload
func (p *RoundRobin) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	if !(p.Quantum > 0) {
		return nil, model.NewConfigurationError("round robin quantum must be > 0, got %v", p.Quantum)
	}
	return simulate(ctx, p.Name(), processes, func(*table) strategy {
		return &roundRobinStrategy{quantum: p.Quantum}
	})
}

type roundRobinStrategy struct {
	quantum float64
	ready   fifo
}

func (s *roundRobinStrategy) admit(slot int) {
	s.ready.push(slot)
}

func (s *roundRobinStrategy) next() (int, float64, bool) {
	slot, ok := s.ready.pop()
	return slot, s.quantum, ok
}

// preempted re-enqueues at the tail; arrivals during the slice are already
// queued ahead of it.
func (s *roundRobinStrategy) preempted(slot int, _ float64) {
	s.ready.push(slot)
}
