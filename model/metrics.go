package model

// ProcessMetrics holds the figures derived for one process from a timeline.
type ProcessMetrics struct {
	PID        int     `json:"pid" yaml:"pid"`
	Arrival    float64 `json:"arrival" yaml:"arrival"`
	Burst      float64 `json:"burst" yaml:"burst"`
	FirstStart float64 `json:"firstStart" yaml:"firstStart"`
	LastFinish float64 `json:"lastFinish" yaml:"lastFinish"`
	Response   float64 `json:"response" yaml:"response"`
	Waiting    float64 `json:"waiting" yaml:"waiting"`
	Turnaround float64 `json:"turnaround" yaml:"turnaround"`
	Active     float64 `json:"active" yaml:"active"`
}

// GlobalMetrics aggregates a whole run.  CPUUtilization is a percentage.
type GlobalMetrics struct {
	ProcessCount    int     `json:"processCount" yaml:"processCount"`
	AvgWaiting      float64 `json:"avgWaiting" yaml:"avgWaiting"`
	AvgTurnaround   float64 `json:"avgTurnaround" yaml:"avgTurnaround"`
	AvgResponse     float64 `json:"avgResponse" yaml:"avgResponse"`
	MinWaiting      float64 `json:"minWaiting" yaml:"minWaiting"`
	MaxWaiting      float64 `json:"maxWaiting" yaml:"maxWaiting"`
	StdDevWaiting   float64 `json:"stdDevWaiting" yaml:"stdDevWaiting"`
	CPUUtilization  float64 `json:"cpuUtilization" yaml:"cpuUtilization"`
	Throughput      float64 `json:"throughput" yaml:"throughput"`
	ContextSwitches int     `json:"contextSwitches" yaml:"contextSwitches"`
	Makespan        float64 `json:"makespan" yaml:"makespan"`
	IdleTime        float64 `json:"idleTime" yaml:"idleTime"`
	ActiveTime      float64 `json:"activeTime" yaml:"activeTime"`
}
