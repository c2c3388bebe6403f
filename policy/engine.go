package policy

import (
	"context"
	"fmt"

	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/tracing"
)

// strategy is the per-policy part of a simulation: it owns the ready state
// and decides which task runs next and for how long.
type strategy interface {
	// admit places a newly arrived task into the ready state.
	admit(slot int)
	// next removes the task to run from the ready state and returns the
	// length of its slice; the loop caps the slice at the remaining burst.
	next() (slot int, run float64, ok bool)
	// preempted returns a task that still has work after running for ran.
	// Arrivals that happened during the slice are admitted before the call.
	preempted(slot int, ran float64)
}

// simulate runs one policy over processes, wrapped in a tracing span.
func simulate(ctx context.Context, name string, processes model.Processes, newStrategy func(*table) strategy) (*model.Timeline, error) {
	_, span := tracing.StartSpan(ctx, "policy."+name)
	span.WithAttributes(map[string]string{"policy": name}).WithInt("processes", len(processes))
	timeline, err := run(processes, newStrategy)
	if err == nil {
		span.WithInt("slices", timeline.Len())
	}
	tracing.EndSpan(span, err)
	return timeline, err
}

// run is the shared discrete-event loop.  Time starts at 0 and only moves
// forward, either by running a slice or by jumping over an idle gap to the
// next arrival.
func run(processes model.Processes, newStrategy func(*table) strategy) (*model.Timeline, error) {
	if err := processes.Validate(); err != nil {
		return nil, err
	}
	timeline := model.NewTimeline()
	if len(processes) == 0 {
		return timeline, nil
	}

	arena := newTable(processes)
	s := newStrategy(arena)
	pending := processes.ByArrival()
	next, completed := 0, 0
	now := 0.0

	admit := func() {
		for next < len(pending) && pending[next].Arrival <= now {
			s.admit(arena.slotOf(pending[next].PID))
			next++
		}
	}

	for completed < len(processes) {
		admit()
		slot, quantum, ok := s.next()
		if !ok {
			if next >= len(pending) {
				return nil, fmt.Errorf("scheduler stalled at %v with %d of %d processes completed", now, completed, len(processes))
			}
			now = timeline.InsertIdleIfGap(now, pending[next].Arrival)
			continue
		}

		t := arena.at(slot)
		if quantum > t.remaining {
			quantum = t.remaining
		}
		start := now
		now = start + quantum
		timeline.Record(t.process.PID, start, now)
		t.remaining -= quantum

		admit()
		if t.remaining <= 0 {
			t.remaining = 0
			completed++
			continue
		}
		s.preempted(slot, quantum)
	}
	return timeline, nil
}
