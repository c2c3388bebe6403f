package policy

import "github.com/viant/schedsim/model"

// task is the mutable per-run bookkeeping of one process.  The descriptor
// itself is never modified.
type task struct {
	process   *model.Process
	remaining float64
	vruntime  float64
	weight    float64
	level     int
}

// table owns every task of a run; queues refer to tasks by slot.
type table struct {
	tasks []task
	slots map[int]int
}

func newTable(processes model.Processes) *table {
	ret := &table{
		tasks: make([]task, len(processes)),
		slots: make(map[int]int, len(processes)),
	}
	for i, p := range processes {
		ret.tasks[i] = task{process: p, remaining: p.Burst}
		ret.slots[p.PID] = i
	}
	return ret
}

func (t *table) at(slot int) *task {
	return &t.tasks[slot]
}

func (t *table) slotOf(pid int) int {
	return t.slots[pid]
}
