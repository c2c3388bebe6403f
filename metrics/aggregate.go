package metrics

import (
	"math"
	"sort"

	"github.com/viant/schedsim/model"
)

// Aggregate computes metrics for every process that appears in timeline and
// the global figures of the run.  The timeline is not modified.
func Aggregate(timeline *model.Timeline, processes model.Processes) ([]*model.ProcessMetrics, *model.GlobalMetrics, error) {
	if err := processes.Validate(); err != nil {
		return nil, nil, err
	}
	global := &model.GlobalMetrics{}
	if timeline.Len() == 0 {
		return []*model.ProcessMetrics{}, global, nil
	}

	lookup := processes.Lookup()
	byPID := map[int]*model.ProcessMetrics{}
	for _, s := range timeline.Slices {
		if s.IsIdle() {
			global.IdleTime += s.Duration()
			continue
		}
		m, ok := byPID[s.PID]
		if !ok {
			p, known := lookup[s.PID]
			if !known {
				return nil, nil, model.NewInvalidInputError("timeline pid %d is not in the process set", s.PID)
			}
			m = &model.ProcessMetrics{
				PID:        p.PID,
				Arrival:    p.Arrival,
				Burst:      p.Burst,
				FirstStart: s.Start,
				LastFinish: s.Finish,
			}
			byPID[s.PID] = m
		}
		m.FirstStart = math.Min(m.FirstStart, s.Start)
		m.LastFinish = math.Max(m.LastFinish, s.Finish)
		m.Active += s.Duration()
	}

	perProcess := make([]*model.ProcessMetrics, 0, len(byPID))
	for _, m := range byPID {
		m.Turnaround = m.LastFinish - m.Arrival
		m.Waiting = math.Max(0, m.Turnaround-m.Burst)
		m.Response = m.FirstStart - m.Arrival
		perProcess = append(perProcess, m)
	}
	sort.Slice(perProcess, func(i, j int) bool {
		return perProcess[i].PID < perProcess[j].PID
	})

	summarize(global, perProcess)
	global.Makespan = timeline.Makespan()
	if global.Makespan > 0 {
		global.CPUUtilization = 100 * global.ActiveTime / global.Makespan
		global.Throughput = float64(global.ProcessCount) / global.Makespan
	}
	global.ContextSwitches = ContextSwitches(timeline)
	return perProcess, global, nil
}

// summarize fills the per-process averages and waiting distribution.
func summarize(global *model.GlobalMetrics, perProcess []*model.ProcessMetrics) {
	n := len(perProcess)
	global.ProcessCount = n
	if n == 0 {
		return
	}
	global.MinWaiting = perProcess[0].Waiting
	global.MaxWaiting = perProcess[0].Waiting
	var waiting, turnaround, response float64
	for _, m := range perProcess {
		waiting += m.Waiting
		turnaround += m.Turnaround
		response += m.Response
		global.ActiveTime += m.Active
		global.MinWaiting = math.Min(global.MinWaiting, m.Waiting)
		global.MaxWaiting = math.Max(global.MaxWaiting, m.Waiting)
	}
	count := float64(n)
	global.AvgWaiting = waiting / count
	global.AvgTurnaround = turnaround / count
	global.AvgResponse = response / count

	variance := 0.0
	for _, m := range perProcess {
		d := m.Waiting - global.AvgWaiting
		variance += d * d
	}
	global.StdDevWaiting = math.Sqrt(variance / count)
}

// ContextSwitches counts pid changes between consecutive slices of the
// chronologically sorted timeline; transitions to and from idle count too.
func ContextSwitches(timeline *model.Timeline) int {
	if timeline.Len() < 2 {
		return 0
	}
	sorted := make([]*model.Slice, len(timeline.Slices))
	copy(sorted, timeline.Slices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	switches := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].PID != sorted[i-1].PID {
			switches++
		}
	}
	return switches
}
