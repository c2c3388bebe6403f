package schedsim

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/comparator"
	"github.com/viant/schedsim/service/workload/live"
	"github.com/viant/schedsim/service/workload/synthetic"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the simulator configuration.
// It is usually loaded from YAML; fields absent from the document keep the
// values from DefaultConfig.
type Config struct {
	Policies   []*policy.Config `json:"policies,omitempty" yaml:"policies,omitempty"`
	Comparator ComparatorConfig `json:"comparator" yaml:"comparator"`
	Starvation StarvationConfig `json:"starvation" yaml:"starvation"`
	Log        LogConfig        `json:"log" yaml:"log"`
	Tracing    TracingConfig    `json:"tracing" yaml:"tracing"`
	Workload   WorkloadConfig   `json:"workload" yaml:"workload"`
}

type ComparatorConfig struct {
	WorkerCount int `json:"workers" yaml:"workers"`
}

type StarvationConfig struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
}

// WorkloadConfig selects the default process source: URL when set,
// otherwise the synthetic generator.
type WorkloadConfig struct {
	URL       string           `json:"url,omitempty" yaml:"url,omitempty"`
	Synthetic synthetic.Config `json:"synthetic" yaml:"synthetic"`
	Live      live.Config      `json:"live" yaml:"live"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Policies:   policy.Defaults(),
		Comparator: ComparatorConfig{WorkerCount: comparator.DefaultConfig().WorkerCount},
		Starvation: StarvationConfig{Threshold: comparator.DefaultThreshold},
		Log:        LogConfig{Level: "info"},
		Tracing:    TracingConfig{Service: "schedsim", Version: "0.1.0"},
		Workload: WorkloadConfig{
			Synthetic: synthetic.DefaultConfig(),
			Live:      live.DefaultConfig(),
		},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i, p := range c.Policies {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("policies[%d]: %w", i, err))
		}
	}
	if c.Comparator.WorkerCount <= 0 {
		errs = append(errs, model.NewConfigurationError("comparator.workers must be > 0"))
	}
	if c.Starvation.Threshold < 0 {
		errs = append(errs, model.NewConfigurationError("starvation.threshold must be >= 0"))
	}
	if err := c.Workload.Synthetic.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("workload.synthetic: %w", err))
	}
	if c.Workload.Live.Top < 0 {
		errs = append(errs, model.NewConfigurationError("workload.live.top must be >= 0"))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML (or JSON) configuration from URL over the defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	return loadConfig(ctx, afs.New(), URL)
}

func loadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return config, nil
}
