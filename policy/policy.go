package policy

import (
	"context"
	"strings"

	"github.com/viant/schedsim/model"
)

// Policy names recognised by New.
const (
	NameFCFS       = "fcfs"
	NameSJF        = "sjf"
	NameSRTF       = "srtf"
	NameRoundRobin = "rr"
	NamePriority   = "priority"
	NameCFS        = "cfs"
	NameMLFQ       = "mlfq"
)

// Policy turns a workload into an execution timeline.  Implementations are
// stateless between calls.
type Policy interface {
	Name() string
	Simulate(ctx context.Context, processes model.Processes) (*model.Timeline, error)
}

var (
	_ Policy = (*FCFS)(nil)
	_ Policy = (*SJF)(nil)
	_ Policy = (*SRTF)(nil)
	_ Policy = (*RoundRobin)(nil)
	_ Policy = (*Priority)(nil)
	_ Policy = (*CFS)(nil)
	_ Policy = (*MLFQ)(nil)
)

// Names returns all policy names in comparison order.
func Names() []string {
	return []string{NameFCFS, NameSJF, NameSRTF, NameRoundRobin, NamePriority, NameCFS, NameMLFQ}
}

// Config is the declarative, serialisable form of a Policy.  Zero values
// select the policy defaults.
type Config struct {
	Name            string    `json:"name" yaml:"name"`
	Quantum         float64   `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Granularity     float64   `json:"granularity,omitempty" yaml:"granularity,omitempty"`
	Quanta          []float64 `json:"quanta,omitempty" yaml:"quanta,omitempty"`
	DefaultPriority *int      `json:"defaultPriority,omitempty" yaml:"defaultPriority,omitempty"`
}

// Validate returns a configuration error or nil.
func (c *Config) Validate() error {
	if c == nil {
		return model.NewConfigurationError("policy config is nil")
	}
	switch Normalize(c.Name) {
	case NameFCFS, NameSJF, NameSRTF, NamePriority:
	case NameRoundRobin:
		if c.Quantum < 0 {
			return model.NewConfigurationError("rr: quantum must be > 0, got %v", c.Quantum)
		}
	case NameCFS:
		if c.Granularity < 0 {
			return model.NewConfigurationError("cfs: granularity must be > 0, got %v", c.Granularity)
		}
	case NameMLFQ:
		if len(c.Quanta) > 0 {
			return validateQuanta(c.Quanta)
		}
	default:
		return model.NewConfigurationError("unknown policy %q", c.Name)
	}
	return nil
}

// New creates a Policy from its configuration.
func New(c *Config) (Policy, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch Normalize(c.Name) {
	case NameFCFS:
		return NewFCFS(), nil
	case NameSJF:
		return NewSJF(), nil
	case NameSRTF:
		return NewSRTF(), nil
	case NameRoundRobin:
		return NewRoundRobin(c.Quantum), nil
	case NamePriority:
		ret := NewPriority()
		if c.DefaultPriority != nil {
			ret.Default = *c.DefaultPriority
		}
		return ret, nil
	case NameCFS:
		return NewCFS(c.Granularity), nil
	default:
		return NewMLFQ(c.Quanta...), nil
	}
}

// Defaults returns the configuration of every policy with default settings.
func Defaults() []*Config {
	names := Names()
	ret := make([]*Config, 0, len(names))
	for _, name := range names {
		ret = append(ret, &Config{Name: name})
	}
	return ret
}

// Normalize maps a policy name or alias (case-insensitive) onto its canonical name.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "roundrobin", "round-robin", "round_robin":
		return NameRoundRobin
	case "fifo":
		return NameFCFS
	}
	return name
}
