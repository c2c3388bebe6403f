package policy

import (
	"context"
	"math"

	"github.com/viant/schedsim/model"
)

// SJF is non-preemptive shortest job first: among ready processes the one
// with the smallest burst runs to completion, ties broken by earlier arrival
// and then lower pid.
type SJF struct{}

// NewSJF creates a shortest job first policy
func NewSJF() *SJF {
	return &SJF{}
}

// Name returns the policy name
func (p *SJF) Name() string {
	return NameSJF
}

// Simulate runs the workload
func (p *SJF) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	return simulate(ctx, p.Name(), processes, func(t *table) strategy {
		return newRunToCompletion(func(a, b int) bool {
			x, y := t.at(a).process, t.at(b).process
			if x.Burst != y.Burst {
				return x.Burst < y.Burst
			}
			return byArrivalThenPID(x, y)
		})
	})
}

// runToCompletion pops the minimum of a heap and lets it finish.
type runToCompletion struct {
	ready *readyHeap
}

func newRunToCompletion(less func(a, b int) bool) *runToCompletion {
	return &runToCompletion{ready: newReadyHeap(less)}
}

func (s *runToCompletion) admit(slot int) {
	s.ready.push(slot)
}

func (s *runToCompletion) next() (int, float64, bool) {
	slot, ok := s.ready.pop()
	return slot, math.Inf(1), ok
}

func (s *runToCompletion) preempted(slot int, _ float64) {
	s.ready.push(slot)
}

func byArrivalThenPID(x, y *model.Process) bool {
	if x.Arrival != y.Arrival {
		return x.Arrival < y.Arrival
	}
	return x.PID < y.PID
}
