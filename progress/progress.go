package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/schedsim/internal/clock"
)

// Delta represents an incremental counter change.  Fields are signed.
type Delta struct {
	Total     int
	Completed int
	Failed    int
	Running   int
}

// Progress keeps aggregated run counters for one comparison.  It is safe
// for concurrent use.
type Progress struct {
	ComparisonID string
	StartedAt    time.Time

	TotalRuns     int
	CompletedRuns int
	FailedRuns    int
	RunningRuns   int

	sync.Mutex
	onChange func(Progress)
}

// Update applies d and invokes the onChange callback, if any, outside the
// critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.TotalRuns += d.Total
	p.CompletedRuns += d.Completed
	p.FailedRuns += d.Failed
	p.RunningRuns += d.Running
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// Done reports whether every registered run finished.
func (p *Progress) Done() bool {
	s := p.Snapshot()
	return s.TotalRuns > 0 && s.CompletedRuns+s.FailedRuns == s.TotalRuns
}

func (p *Progress) copy() Progress {
	return Progress{
		ComparisonID:  p.ComparisonID,
		StartedAt:     p.StartedAt,
		TotalRuns:     p.TotalRuns,
		CompletedRuns: p.CompletedRuns,
		FailedRuns:    p.FailedRuns,
		RunningRuns:   p.RunningRuns,
	}
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker embeds a new tracker in a derived context.
func WithNewTracker(ctx context.Context, comparisonID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		ComparisonID: comparisonID,
		StartedAt:    clock.Now(),
		onChange:     onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx applies d to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
