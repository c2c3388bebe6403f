// Package synthetic generates reproducible random workloads.
package synthetic

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/viant/schedsim/internal/clock"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/workload"
)

const (
	// FirstPID is the pid assigned to the first generated process.
	FirstPID = 1000

	maxPriority = 40
)

// Config controls workload shape
type Config struct {
	Count      int   `json:"count" yaml:"count"`
	MaxArrival int   `json:"maxArrival,omitempty" yaml:"maxArrival,omitempty"`
	MaxBurst   int   `json:"maxBurst" yaml:"maxBurst"`
	MaxWait    int   `json:"maxWait,omitempty" yaml:"maxWait,omitempty"`
	Seed       int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultConfig returns ten processes arriving together with bursts in [1, 20].
func DefaultConfig() Config {
	return Config{Count: 10, MaxBurst: 20, MaxWait: 50}
}

// Validate returns a configuration error or nil
func (c *Config) Validate() error {
	if c.Count < 0 {
		return model.NewConfigurationError("synthetic: count must be >= 0, got %d", c.Count)
	}
	if c.MaxBurst < 1 {
		return model.NewConfigurationError("synthetic: max burst must be >= 1, got %d", c.MaxBurst)
	}
	if c.MaxArrival < 0 || c.MaxWait < 0 {
		return model.NewConfigurationError("synthetic: max arrival and max wait must be >= 0")
	}
	return nil
}

// Generator produces random workloads
type Generator struct {
	config Config
}

// Generate returns config.Count processes with pids starting at FirstPID.
// Seed 0 seeds from the clock; the same non-zero seed always yields the
// same workload.
func (g *Generator) Generate() model.Processes {
	seed := g.config.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	ret := make(model.Processes, 0, g.config.Count)
	for i := 0; i < g.config.Count; i++ {
		burst := 1 + rnd.Intn(g.config.MaxBurst)
		arrival := 0
		if g.config.MaxArrival > 0 {
			arrival = rnd.Intn(g.config.MaxArrival + 1)
		}
		priority := 1 + rnd.Intn(maxPriority)
		elapsed := burst + rnd.Intn(g.config.MaxWait+1)
		process := model.NewProcess(FirstPID+i, float64(arrival), float64(burst)).
			WithName(fmt.Sprintf("synthetic_%d", i)).
			WithPriority(priority)
		process.Elapsed = float64(elapsed)
		ret = append(ret, process)
	}
	return ret
}

// Processes implements workload.Source
func (g *Generator) Processes(_ context.Context) (model.Processes, error) {
	return g.Generate(), nil
}

var _ workload.Source = (*Generator)(nil)

// New creates a generator
func New(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{config: config}, nil
}
