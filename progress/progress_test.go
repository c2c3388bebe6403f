package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	var seen []Progress
	var mux sync.Mutex
	ctx, tracker := WithNewTracker(context.Background(), "cmp-1", func(p Progress) {
		mux.Lock()
		seen = append(seen, p)
		mux.Unlock()
	})

	UpdateCtx(ctx, Delta{Total: 3})
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			UpdateCtx(ctx, Delta{Running: 1})
			if i == 0 {
				UpdateCtx(ctx, Delta{Running: -1, Failed: 1})
				return
			}
			UpdateCtx(ctx, Delta{Running: -1, Completed: 1})
		}(i)
	}
	wg.Wait()

	snapshot := tracker.Snapshot()
	assert.Equal(t, "cmp-1", snapshot.ComparisonID)
	assert.Equal(t, 3, snapshot.TotalRuns)
	assert.Equal(t, 2, snapshot.CompletedRuns)
	assert.Equal(t, 1, snapshot.FailedRuns)
	assert.Equal(t, 0, snapshot.RunningRuns)
	assert.True(t, tracker.Done())
	assert.Len(t, seen, 7)
}

func TestProgress_NoTracker(t *testing.T) {
	UpdateCtx(context.Background(), Delta{Total: 1})
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	var tracker *Progress
	tracker.Update(Delta{Total: 1})
	assert.Equal(t, 0, tracker.Snapshot().TotalRuns)
	assert.False(t, tracker.Done())
}
