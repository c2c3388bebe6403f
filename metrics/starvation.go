package metrics

import (
	"sort"

	"github.com/viant/schedsim/model"
)

// DetectStarvation returns, in ascending order, the pids whose waiting time
// exceeds threshold.
func DetectStarvation(perProcess []*model.ProcessMetrics, threshold float64) []int {
	var starved []int
	for _, m := range perProcess {
		if m.Waiting > threshold {
			starved = append(starved, m.PID)
		}
	}
	sort.Ints(starved)
	return starved
}
