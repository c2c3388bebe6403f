package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
)

const epsilon = 1e-9

func timelineOf(triples ...[3]float64) *model.Timeline {
	ret := model.NewTimeline()
	for _, t := range triples {
		ret.Record(int(t[0]), t[1], t[2])
	}
	return ret
}

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name       string
		timeline   *model.Timeline
		processes  model.Processes
		perProcess []*model.ProcessMetrics
		global     *model.GlobalMetrics
	}{
		{
			name:      "preemptive trace",
			timeline:  timelineOf([3]float64{1, 0, 1}, [3]float64{2, 1, 3}, [3]float64{1, 3, 7}),
			processes: model.Processes{model.NewProcess(1, 0, 5), model.NewProcess(2, 1, 2)},
			perProcess: []*model.ProcessMetrics{
				{PID: 1, Arrival: 0, Burst: 5, FirstStart: 0, LastFinish: 7, Response: 0, Waiting: 2, Turnaround: 7, Active: 5},
				{PID: 2, Arrival: 1, Burst: 2, FirstStart: 1, LastFinish: 3, Response: 0, Waiting: 0, Turnaround: 2, Active: 2},
			},
			global: &model.GlobalMetrics{
				ProcessCount: 2, AvgWaiting: 1, AvgTurnaround: 4.5, AvgResponse: 0,
				MinWaiting: 0, MaxWaiting: 2, StdDevWaiting: 1,
				CPUUtilization: 100, Throughput: 2.0 / 7.0, ContextSwitches: 2,
				Makespan: 7, IdleTime: 0, ActiveTime: 7,
			},
		},
		{
			name:      "idle gaps count toward makespan and switches",
			timeline:  timelineOf([3]float64{-1, 0, 2}, [3]float64{1, 2, 3}, [3]float64{-1, 3, 5}, [3]float64{2, 5, 6}),
			processes: model.Processes{model.NewProcess(1, 2, 1), model.NewProcess(2, 5, 1)},
			perProcess: []*model.ProcessMetrics{
				{PID: 1, Arrival: 2, Burst: 1, FirstStart: 2, LastFinish: 3, Turnaround: 1, Active: 1},
				{PID: 2, Arrival: 5, Burst: 1, FirstStart: 5, LastFinish: 6, Turnaround: 1, Active: 1},
			},
			global: &model.GlobalMetrics{
				ProcessCount: 2, AvgTurnaround: 1,
				CPUUtilization: 100.0 * 2.0 / 6.0, Throughput: 2.0 / 6.0, ContextSwitches: 3,
				Makespan: 6, IdleTime: 4, ActiveTime: 2,
			},
		},
		{
			name:      "zero makespan is degenerate, not a fault",
			timeline:  &model.Timeline{Slices: []*model.Slice{{PID: 1, Start: 0, Finish: 0}}},
			processes: model.Processes{model.NewProcess(1, 0, 1)},
			perProcess: []*model.ProcessMetrics{
				{PID: 1, Arrival: 0, Burst: 1},
			},
			global: &model.GlobalMetrics{ProcessCount: 1},
		},
		{
			name:       "empty timeline",
			timeline:   model.NewTimeline(),
			processes:  model.Processes{},
			perProcess: []*model.ProcessMetrics{},
			global:     &model.GlobalMetrics{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			perProcess, global, err := Aggregate(tc.timeline, tc.processes)
			require.NoError(t, err)
			assert.Equal(t, tc.perProcess, perProcess)
			assertGlobal(t, tc.global, global)
		})
	}
}

func assertGlobal(t *testing.T, expected, actual *model.GlobalMetrics) {
	t.Helper()
	assert.Equal(t, expected.ProcessCount, actual.ProcessCount)
	assert.Equal(t, expected.ContextSwitches, actual.ContextSwitches)
	assert.InDelta(t, expected.AvgWaiting, actual.AvgWaiting, epsilon)
	assert.InDelta(t, expected.AvgTurnaround, actual.AvgTurnaround, epsilon)
	assert.InDelta(t, expected.AvgResponse, actual.AvgResponse, epsilon)
	assert.InDelta(t, expected.MinWaiting, actual.MinWaiting, epsilon)
	assert.InDelta(t, expected.MaxWaiting, actual.MaxWaiting, epsilon)
	assert.InDelta(t, expected.StdDevWaiting, actual.StdDevWaiting, epsilon)
	assert.InDelta(t, expected.CPUUtilization, actual.CPUUtilization, epsilon)
	assert.InDelta(t, expected.Throughput, actual.Throughput, epsilon)
	assert.InDelta(t, expected.Makespan, actual.Makespan, epsilon)
	assert.InDelta(t, expected.IdleTime, actual.IdleTime, epsilon)
	assert.InDelta(t, expected.ActiveTime, actual.ActiveTime, epsilon)
}

func TestAggregate_UnknownPID(t *testing.T) {
	_, _, err := Aggregate(timelineOf([3]float64{9, 0, 1}), model.Processes{model.NewProcess(1, 0, 1)})
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestAggregate_InvalidProcesses(t *testing.T) {
	testCases := []struct {
		name      string
		processes model.Processes
	}{
		{
			name:      "nil entry",
			processes: model.Processes{model.NewProcess(1, 0, 1), nil},
		},
		{
			name:      "duplicate pid",
			processes: model.Processes{model.NewProcess(1, 0, 1), model.NewProcess(1, 2, 3)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Aggregate(timelineOf([3]float64{1, 0, 1}), tc.processes)
			assert.True(t, errors.Is(err, model.ErrInvalidInput))
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	processes := model.Processes{
		model.NewProcess(1, 0, 8).WithPriority(3),
		model.NewProcess(2, 1, 4).WithPriority(1),
		model.NewProcess(3, 2, 9).WithPriority(4),
		model.NewProcess(4, 3, 5).WithPriority(2),
	}
	for _, cfg := range policy.Defaults() {
		t.Run(cfg.Name, func(t *testing.T) {
			p, err := policy.New(cfg)
			require.NoError(t, err)
			timeline, err := p.Simulate(context.Background(), processes)
			require.NoError(t, err)
			before := timeline.Clone()

			first, firstGlobal, err := Aggregate(timeline, processes)
			require.NoError(t, err)
			second, secondGlobal, err := Aggregate(timeline, processes)
			require.NoError(t, err)

			assert.Equal(t, firstGlobal, secondGlobal)
			assert.Equal(t, first, second)
			assert.Equal(t, before, timeline)

			assert.InDelta(t, processes.TotalBurst(), firstGlobal.ActiveTime, epsilon)
			for _, m := range first {
				assert.GreaterOrEqual(t, m.Waiting, 0.0)
				assert.Equal(t, m.Burst, m.Active)
				assert.InDelta(t, m.LastFinish-m.Arrival, m.Turnaround, epsilon)
			}
		})
	}
}

func TestContextSwitches_Unsorted(t *testing.T) {
	timeline := &model.Timeline{Slices: []*model.Slice{
		{PID: 2, Start: 2, Finish: 3},
		{PID: 1, Start: 0, Finish: 1},
		{PID: 1, Start: 1, Finish: 2},
	}}
	assert.Equal(t, 1, ContextSwitches(timeline))
}
