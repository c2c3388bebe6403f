package model

import (
	"math"
	"sort"
)

// Process describes one schedulable unit of work.  A descriptor is read-only
// once handed to a policy engine; per-run state such as remaining burst or
// virtual runtime is tracked by the engine itself.
type Process struct {
	// PID uniquely identifies the process within a workload.
	PID int `json:"pid" yaml:"pid"`

	// Name is informative only (command name for sampled processes).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Arrival is the simulated time at which the process becomes schedulable.
	Arrival float64 `json:"arrival" yaml:"arrival"`

	// Burst is the total CPU time the process requires.
	Burst float64 `json:"burst" yaml:"burst"`

	// Priority is optional; lower value means more urgent.
	Priority *int `json:"priority,omitempty" yaml:"priority,omitempty"`

	// Elapsed is the wall-clock age reported by a live sampler, informative only.
	Elapsed float64 `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
}

// NewProcess creates a descriptor without priority.
func NewProcess(pid int, arrival, burst float64) *Process {
	return &Process{PID: pid, Arrival: arrival, Burst: burst}
}

// WithPriority sets the priority and returns the receiver.
func (p *Process) WithPriority(priority int) *Process {
	p.Priority = &priority
	return p
}

// WithName sets the name and returns the receiver.
func (p *Process) WithName(name string) *Process {
	p.Name = name
	return p
}

// PriorityOr returns the process priority or def when none was supplied.
func (p *Process) PriorityOr(def int) int {
	if p.Priority == nil {
		return def
	}
	return *p.Priority
}

// Processes represents a workload
type Processes []*Process

// Validate checks the workload against the input contract.  An empty
// workload is valid.
func (p Processes) Validate() error {
	seen := make(map[int]bool, len(p))
	for i, proc := range p {
		if proc == nil {
			return NewInvalidInputError("process[%d] is nil", i)
		}
		if proc.PID == IdlePID {
			return NewInvalidInputError("process[%d] uses reserved idle pid %d", i, IdlePID)
		}
		if proc.PID < 0 {
			return NewInvalidInputError("process[%d] has negative pid %d", i, proc.PID)
		}
		if seen[proc.PID] {
			return NewInvalidInputError("duplicate pid %d", proc.PID)
		}
		seen[proc.PID] = true
		if !isFinite(proc.Burst) || proc.Burst <= 0 {
			return NewInvalidInputError("pid %d: burst must be > 0, got %v", proc.PID, proc.Burst)
		}
		if !isFinite(proc.Arrival) || proc.Arrival < 0 {
			return NewInvalidInputError("pid %d: arrival must be >= 0, got %v", proc.PID, proc.Arrival)
		}
	}
	return nil
}

// Lookup returns processes indexed by pid.
func (p Processes) Lookup() map[int]*Process {
	ret := make(map[int]*Process, len(p))
	for _, proc := range p {
		ret[proc.PID] = proc
	}
	return ret
}

// ByArrival returns a copy sorted by arrival; ties keep their input order.
func (p Processes) ByArrival() Processes {
	ret := make(Processes, len(p))
	copy(ret, p)
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Arrival < ret[j].Arrival
	})
	return ret
}

// TotalBurst returns the sum of all bursts.
func (p Processes) TotalBurst() float64 {
	total := 0.0
	for _, proc := range p {
		total += proc.Burst
	}
	return total
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
