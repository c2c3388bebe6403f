package model

import "time"

// Run captures one policy invocation over one workload together with its
// derived metrics.  Runs are what the DAO layer persists.
type Run struct {
	ID        string            `json:"id" yaml:"id"`
	Policy    string            `json:"policy" yaml:"policy"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
	Processes Processes         `json:"processes" yaml:"processes"`
	Timeline  *Timeline         `json:"timeline" yaml:"timeline"`
	Metrics   []*ProcessMetrics `json:"metrics" yaml:"metrics"`
	Global    *GlobalMetrics    `json:"global" yaml:"global"`
	Starved   []int             `json:"starved,omitempty" yaml:"starved,omitempty"`
	Error     string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the run ended with an error.
func (r *Run) Failed() bool {
	return r.Error != ""
}
