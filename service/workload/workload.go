// Package workload defines process sources feeding the policy engines:
// files (fs), a seeded random generator (synthetic) and a live ps sampler
// (live).
package workload

import (
	"context"

	"github.com/viant/schedsim/model"
)

// Source produces a workload
type Source interface {
	Processes(ctx context.Context) (model.Processes, error)
}

// Func adapts a function to Source
type Func func(ctx context.Context) (model.Processes, error)

// Processes calls f
func (f Func) Processes(ctx context.Context) (model.Processes, error) {
	return f(ctx)
}
