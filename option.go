package schedsim

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/workload"
)

// Option configures the Service
type Option func(s *Service)

// WithConfig replaces the default configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the logger; by default one is built from Config.Log
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRunDAO sets the run store; runs are kept in memory by default
func WithRunDAO(runDAO dao.Service[string, model.Run]) Option {
	return func(s *Service) {
		s.runDAO = runDAO
	}
}

// WithWorkers sets the number of policies compared concurrently
func WithWorkers(count int) Option {
	return func(s *Service) {
		s.config.Comparator.WorkerCount = count
	}
}

// WithFileService sets the storage service used for workloads and config
func WithFileService(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithSampler overrides the live process source
func WithSampler(sampler workload.Source) Option {
	return func(s *Service) {
		s.sampler = sampler
	}
}

// WithTracing enables OpenTelemetry tracing exported to output (stdout when empty)
func WithTracing(service, version, output string) Option {
	return func(s *Service) {
		s.config.Tracing = TracingConfig{Enabled: true, Service: service, Version: version, Output: output}
	}
}
