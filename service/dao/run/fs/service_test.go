package fs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/dao"
)

func TestService(t *testing.T) {
	store, err := New(t.TempDir() + "/runs")
	require.NoError(t, err)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	timeline := model.NewTimeline()
	timeline.Record(1, 0, 3)
	run := &model.Run{
		ID:        "fcfs-1",
		Policy:    "fcfs",
		CreatedAt: created,
		Processes: model.Processes{model.NewProcess(1, 0, 3)},
		Timeline:  timeline,
		Global:    &model.GlobalMetrics{ProcessCount: 1, Makespan: 3},
	}
	require.NoError(t, store.Save(ctx, run))
	require.NoError(t, store.Save(ctx, &model.Run{ID: "rr-1", Policy: "rr", CreatedAt: created.Add(time.Minute)}))

	loaded, err := store.Load(ctx, "fcfs-1")
	require.NoError(t, err)
	assert.Equal(t, run.Timeline, loaded.Timeline)
	assert.Equal(t, run.Processes, loaded.Processes)
	assert.True(t, created.Equal(loaded.CreatedAt))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "fcfs-1", list[0].ID)

	list, err = store.List(ctx, dao.NewParameter(dao.ParameterPolicy, "rr"))
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, store.Delete(ctx, "rr-1"))
	_, err = store.Load(ctx, "rr-1")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	assert.ErrorIs(t, store.Save(ctx, nil), dao.ErrNilEntity)
}
