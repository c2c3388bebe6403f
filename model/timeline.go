package model

import "fmt"

// IdlePID marks a slice during which the CPU had nothing to run.
const IdlePID = -1

// Slice is a half-open interval [Start, Finish) during which exactly one
// entity occupied the CPU.
type Slice struct {
	PID    int     `json:"pid" yaml:"pid"`
	Start  float64 `json:"start" yaml:"start"`
	Finish float64 `json:"finish" yaml:"finish"`
}

// Duration returns the slice length.
func (s *Slice) Duration() float64 {
	return s.Finish - s.Start
}

// IsIdle reports whether the slice is an idle gap.
func (s *Slice) IsIdle() bool {
	return s.PID == IdlePID
}

// Timeline is the ordered trace of one policy run over one workload.
type Timeline struct {
	Slices []*Slice `json:"slices" yaml:"slices"`
}

// NewTimeline creates an empty timeline
func NewTimeline() *Timeline {
	return &Timeline{Slices: []*Slice{}}
}

// Record appends [start, finish) for pid.  When the previous slice belongs
// to the same pid and ends exactly at start, it is extended in place.
func (t *Timeline) Record(pid int, start, finish float64) {
	if n := len(t.Slices); n > 0 {
		last := t.Slices[n-1]
		if last.PID == pid && last.Finish == start {
			last.Finish = finish
			return
		}
	}
	t.Slices = append(t.Slices, &Slice{PID: pid, Start: start, Finish: finish})
}

// InsertIdleIfGap records an idle slice covering [now, next) when now < next
// and returns next as the new current time; otherwise now is returned as is.
func (t *Timeline) InsertIdleIfGap(now, next float64) float64 {
	if now < next {
		t.Record(IdlePID, now, next)
		return next
	}
	return now
}

// Len returns the number of slices.
func (t *Timeline) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Slices)
}

// Makespan returns last finish minus first start, idle slices included.
func (t *Timeline) Makespan() float64 {
	if t.Len() == 0 {
		return 0
	}
	first, last := t.Slices[0].Start, t.Slices[0].Finish
	for _, s := range t.Slices[1:] {
		if s.Start < first {
			first = s.Start
		}
		if s.Finish > last {
			last = s.Finish
		}
	}
	return last - first
}

// Validate verifies that slices are chronological, non-overlapping, non-empty
// and coalesced.
func (t *Timeline) Validate() error {
	for i, s := range t.Slices {
		if s.Finish <= s.Start {
			return fmt.Errorf("slice[%d] pid %d: empty interval [%v, %v)", i, s.PID, s.Start, s.Finish)
		}
		if i == 0 {
			continue
		}
		prev := t.Slices[i-1]
		if prev.Finish > s.Start {
			return fmt.Errorf("slice[%d] pid %d overlaps previous slice ending at %v", i, s.PID, prev.Finish)
		}
		if prev.Finish == s.Start && prev.PID == s.PID {
			return fmt.Errorf("slice[%d] pid %d is not coalesced with previous slice", i, s.PID)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (t *Timeline) Clone() *Timeline {
	ret := &Timeline{Slices: make([]*Slice, len(t.Slices))}
	for i, s := range t.Slices {
		clone := *s
		ret.Slices[i] = &clone
	}
	return ret
}
