package policy

import (
	"context"

	"github.com/viant/schedsim/model"
)

// Unit is the decision granularity of SRTF.
const Unit = 1.0

// SRTF is preemptive shortest remaining time first.  The choice is revisited
// after every time unit, so a newly arrived shorter job preempts the running
// one.  Long jobs can starve while shorter ones keep arriving.
type SRTF struct{}

// NewSRTF creates a shortest remaining time first policy
func NewSRTF() *SRTF {
	return &SRTF{}
}

// Name returns the policy name
func (p *SRTF) Name() string {
	return NameSRTF
}

// Simulate runs the workload
func (p *SRTF) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	return simulate(ctx, p.Name(), processes, func(t *table) strategy {
		return &srtfStrategy{ready: newReadyHeap(func(a, b int) bool {
			x, y := t.at(a), t.at(b)
			if x.remaining != y.remaining {
				return x.remaining < y.remaining
			}
			return byArrivalThenPID(x.process, y.process)
		})}
	})
}

// srtfStrategy re-keys a task by popping it and pushing it back once its
// remaining time changed.
type srtfStrategy struct {
	ready *readyHeap
}

func (s *srtfStrategy) admit(slot int) {
	s.ready.push(slot)
}

func (s *srtfStrategy) next() (int, float64, bool) {
	slot, ok := s.ready.pop()
	return slot, Unit, ok
}

func (s *srtfStrategy) preempted(slot int, _ float64) {
	s.ready.push(slot)
}
