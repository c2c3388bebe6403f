package policy

import (
	"context"

	"github.com/viant/schedsim/model"
)

const (
	// DefaultGranularity is the CFS minimum slice.
	DefaultGranularity = 1.0

	// weightScale is the load weight of a nice-0 task.
	weightScale = 1024.0

	// MinPriority and MaxPriority bound the index into the weight table.
	MinPriority = 0
	MaxPriority = 39
)

// prioToWeight is the kernel's nice-to-weight table, indexed by nice+20.
// Neighbouring entries differ by roughly 1.25x.
var prioToWeight = [40]float64{
	88761, 71755, 56483, 46273, 36291,
	29154, 23254, 18705, 14949, 11916,
	9548, 7620, 6100, 4904, 3906,
	3121, 2501, 1991, 1586, 1277,
	1024, 820, 655, 526, 423,
	335, 272, 215, 172, 137,
	110, 87, 70, 56, 45,
	36, 29, 23, 18, 15,
}

// Weight returns the load weight for priority, clamped into [MinPriority, MaxPriority].
func Weight(priority int) float64 {
	if priority < MinPriority {
		priority = MinPriority
	} else if priority > MaxPriority {
		priority = MaxPriority
	}
	return prioToWeight[priority]
}

// VRuntimeDelta returns the virtual runtime charged for ran units of service
// at the given weight.
func VRuntimeDelta(ran, weight float64) float64 {
	return ran * (weightScale / weight)
}

// CFS is a simplified completely fair scheduler.  The ready task with the
// lowest virtual runtime runs for one granularity; virtual runtime grows
// more slowly for heavier (more urgent) tasks.
type CFS struct {
	Granularity float64
}

// NewCFS creates a CFS policy; a zero granularity selects DefaultGranularity.
func NewCFS(granularity float64) *CFS {
	if granularity == 0 {
		granularity = DefaultGranularity
	}
	return &CFS{Granularity: granularity}
}

// Name returns the policy name
func (p *CFS) Name() string {
	return NameCFS
}

// Simulate runs the workload
func (p *CFS) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	if !(p.Granularity > 0) {
		return nil, model.NewConfigurationError("cfs granularity must be > 0, got %v", p.Granularity)
	}
	return simulate(ctx, p.Name(), processes, func(t *table) strategy {
		for i := range t.tasks {
			t.tasks[i].weight = Weight(t.tasks[i].process.PriorityOr(DefaultPriority))
		}
		return &cfsStrategy{
			table:       t,
			granularity: p.Granularity,
			ready: newReadyHeap(func(a, b int) bool {
				x, y := t.at(a), t.at(b)
				if x.vruntime != y.vruntime {
					return x.vruntime < y.vruntime
				}
				return x.process.PID < y.process.PID
			}),
		}
	})
}

type cfsStrategy struct {
	table       *table
	granularity float64
	ready       *readyHeap
}

func (s *cfsStrategy) admit(slot int) {
	s.table.at(slot).vruntime = 0
	s.ready.push(slot)
}

func (s *cfsStrategy) next() (int, float64, bool) {
	slot, ok := s.ready.pop()
	return slot, s.granularity, ok
}

func (s *cfsStrategy) preempted(slot int, ran float64) {
	t := s.table.at(slot)
	t.vruntime += VRuntimeDelta(ran, t.weight)
	s.ready.push(slot)
}
