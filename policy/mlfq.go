package policy

import (
	"context"

	"github.com/viant/schedsim/model"
)

// DefaultQuanta are the per-level MLFQ time slices, top level first.
var DefaultQuanta = []float64{2, 4, 8}

// MLFQ is a multilevel feedback queue.  Arrivals enter the top level; a task
// that uses up its level quantum drops one level.  The highest non-empty
// level always runs first, FIFO within a level; the bottom level is plain
// round robin.
type MLFQ struct {
	Quanta []float64
}

// NewMLFQ creates an MLFQ policy; no quanta selects DefaultQuanta.
func NewMLFQ(quanta ...float64) *MLFQ {
	if len(quanta) == 0 {
		quanta = DefaultQuanta
	}
	return &MLFQ{Quanta: append([]float64(nil), quanta...)}
}

// Name returns the policy name
func (p *MLFQ) Name() string {
	return NameMLFQ
}

// Simulate runs the workload
func (p *MLFQ) Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error) {
	if err := validateQuanta(p.Quanta); err != nil {
		return nil, err
	}
	return simulate(ctx, p.Name(), processes, func(t *table) strategy {
		return &mlfqStrategy{table: t, quanta: p.Quanta, levels: make([]fifo, len(p.Quanta))}
	})
}

func validateQuanta(quanta []float64) error {
	if len(quanta) == 0 {
		return model.NewConfigurationError("mlfq requires at least one level")
	}
	for i, q := range quanta {
		if !(q > 0) {
			return model.NewConfigurationError("mlfq quantum of level %d must be > 0, got %v", i, q)
		}
	}
	return nil
}

type mlfqStrategy struct {
	table  *table
	quanta []float64
	levels []fifo
}

func (s *mlfqStrategy) admit(slot int) {
	s.table.at(slot).level = 0
	s.levels[0].push(slot)
}

func (s *mlfqStrategy) next() (int, float64, bool) {
	for level := range s.levels {
		if slot, ok := s.levels[level].pop(); ok {
			return slot, s.quanta[level], true
		}
	}
	return 0, 0, false
}

func (s *mlfqStrategy) preempted(slot int, ran float64) {
	t := s.table.at(slot)
	if ran >= s.quanta[t.level] && t.level < len(s.levels)-1 {
		t.level++
	}
	s.levels[t.level].push(slot)
}
