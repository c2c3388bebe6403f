package comparator

import (
	"log/slog"

	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/dao"
)

// Option configures the comparator service
type Option func(*Service)

// WithWorkers sets the number of worker goroutines
func WithWorkers(count int) Option {
	return func(s *Service) {
		s.config.WorkerCount = count
	}
}

// WithThreshold sets the waiting-time starvation threshold
func WithThreshold(threshold float64) Option {
	return func(s *Service) {
		s.config.Threshold = threshold
	}
}

// WithRunDAO persists every finished run
func WithRunDAO(runDAO dao.Service[string, model.Run]) Option {
	return func(s *Service) {
		s.runDAO = runDAO
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfig replaces the whole configuration
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
