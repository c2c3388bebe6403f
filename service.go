package schedsim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/comparator"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/dao/run/memory"
	"github.com/viant/schedsim/service/workload"
	wfs "github.com/viant/schedsim/service/workload/fs"
	"github.com/viant/schedsim/service/workload/live"
	"github.com/viant/schedsim/service/workload/synthetic"
	"github.com/viant/schedsim/tracing"
)

// Service is the simulator facade
type Service struct {
	config     *Config
	logger     *slog.Logger
	runDAO     dao.Service[string, model.Run]
	fs         afs.Service
	workloads  *wfs.Service
	sampler    workload.Source
	comparator *comparator.Service
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Runs returns the run store
func (s *Service) Runs() dao.Service[string, model.Run] {
	return s.runDAO
}

// Simulate runs a single policy, derives its metrics and stores the run.
func (s *Service) Simulate(ctx context.Context, cfg *policy.Config, processes model.Processes) (run *model.Run, err error) {
	ctx, span := tracing.StartSpan(ctx, "schedsim.Simulate")
	defer func() { tracing.EndSpan(span, err) }()
	if cfg != nil {
		span.WithAttributes(map[string]string{"policy.name": cfg.Name})
	}

	run, err = comparator.Execute(ctx, cfg, processes, s.config.Starvation.Threshold)
	if err != nil {
		s.logger.Error("simulation failed", logging.ErrAttr(err))
		return nil, err
	}
	if err = s.runDAO.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to store run %s: %w", run.ID, err)
	}
	s.logger.Info("simulation completed", "policy", run.Policy, "run", run.ID,
		"slices", run.Timeline.Len(), "avgWaiting", run.Global.AvgWaiting, "starved", len(run.Starved))
	return run, nil
}

// Compare runs policies (the configured line-up when none are given)
// concurrently over processes.
func (s *Service) Compare(ctx context.Context, processes model.Processes, policies ...*policy.Config) ([]*model.Run, error) {
	if len(policies) == 0 {
		policies = s.config.Policies
	}
	s.logger.Debug("comparing policies", "policies", len(policies), "processes", len(processes))
	return s.comparator.Compare(ctx, processes, policies...)
}

// LoadWorkload reads a workload file
func (s *Service) LoadWorkload(ctx context.Context, URL string) (model.Processes, error) {
	processes, err := s.workloads.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("workload loaded", "url", URL, "processes", len(processes))
	return processes, nil
}

// SaveWorkload writes a workload file
func (s *Service) SaveWorkload(ctx context.Context, URL string, processes model.Processes) error {
	return s.workloads.Save(ctx, URL, processes)
}

// Generate returns a synthetic workload shaped by Config.Workload.Synthetic
func (s *Service) Generate(ctx context.Context) (model.Processes, error) {
	generator, err := synthetic.New(s.config.Workload.Synthetic)
	if err != nil {
		return nil, err
	}
	return generator.Processes(ctx)
}

// Sample takes a live snapshot of the busiest processes
func (s *Service) Sample(ctx context.Context) (model.Processes, error) {
	if s.sampler == nil {
		sampler, err := live.New(s.config.Workload.Live, live.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		s.sampler = sampler
	}
	return s.sampler.Processes(ctx)
}

// Workload resolves the configured default source: the workload URL when
// set, otherwise a synthetic workload.
func (s *Service) Workload(ctx context.Context) (model.Processes, error) {
	if URL := s.config.Workload.URL; URL != "" {
		return s.LoadWorkload(ctx, URL)
	}
	return s.Generate(ctx)
}

// Close releases the live sampler session, if any
func (s *Service) Close() error {
	if closer, ok := s.sampler.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (s *Service) init() error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = logging.New("schedsim", s.config.Log.Level)
	}
	if s.runDAO == nil {
		s.runDAO = memory.New()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	s.workloads = wfs.New(s.fs)
	if t := s.config.Tracing; t.Enabled {
		if err := tracing.Init(t.Service, t.Version, t.Output); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	var err error
	s.comparator, err = comparator.New(
		comparator.WithWorkers(s.config.Comparator.WorkerCount),
		comparator.WithThreshold(s.config.Starvation.Threshold),
		comparator.WithRunDAO(s.runDAO),
		comparator.WithLogger(s.logger),
	)
	return err
}

// New creates a simulator service
func New(options ...Option) (*Service, error) {
	s := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(s)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}
