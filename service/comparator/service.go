package comparator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/viant/schedsim/internal/clock"
	"github.com/viant/schedsim/internal/idgen"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/metrics"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/progress"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/messaging"
	"github.com/viant/schedsim/service/messaging/memory"
	"github.com/viant/schedsim/tracing"
)

// DefaultThreshold is the waiting time above which a process counts as starved.
const DefaultThreshold = 20.0

// Config represents comparator configuration
type Config struct {
	// WorkerCount is the number of policies simulated concurrently
	WorkerCount int

	// Threshold is passed to the starvation detector
	Threshold float64
}

// DefaultConfig returns the default comparator configuration
func DefaultConfig() Config {
	return Config{
		WorkerCount: 4,
		Threshold:   DefaultThreshold,
	}
}

// Job is a single policy run scheduled on the queue
type Job struct {
	Index     int
	Policy    *policy.Config
	Processes model.Processes
}

// Service compares policies over a shared workload
type Service struct {
	config Config
	runDAO dao.Service[string, model.Run]
	logger *slog.Logger
}

// New creates a comparator service
func New(options ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		logger: logging.Discard(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.config.WorkerCount <= 0 {
		return nil, model.NewConfigurationError("worker count must be > 0, got %d", s.config.WorkerCount)
	}
	if s.config.Threshold < 0 {
		return nil, model.NewConfigurationError("starvation threshold must be >= 0, got %v", s.config.Threshold)
	}
	return s, nil
}

// Execute simulates one policy and derives its metrics and starved pids.
func Execute(ctx context.Context, cfg *policy.Config, processes model.Processes, threshold float64) (*model.Run, error) {
	aPolicy, err := policy.New(cfg)
	if err != nil {
		return nil, err
	}
	timeline, err := aPolicy.Simulate(ctx, processes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", aPolicy.Name(), err)
	}
	perProcess, global, err := metrics.Aggregate(timeline, processes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", aPolicy.Name(), err)
	}
	return &model.Run{
		ID:        idgen.NewRunID(aPolicy.Name()),
		Policy:    aPolicy.Name(),
		CreatedAt: clock.Now(),
		Processes: processes,
		Timeline:  timeline,
		Metrics:   perProcess,
		Global:    global,
		Starved:   metrics.DetectStarvation(perProcess, threshold),
	}, nil
}

// Compare runs every policy over processes.  The returned runs follow the
// order of policies; a failed policy yields a run with Error set and its
// error is joined into the returned error.
func (s *Service) Compare(ctx context.Context, processes model.Processes, policies ...*policy.Config) (runs []*model.Run, err error) {
	ctx, span := tracing.StartSpan(ctx, "comparator.Compare")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithInt("process.count", len(processes)).WithInt("policy.count", len(policies))

	if len(policies) == 0 {
		policies = policy.Defaults()
	}
	for _, cfg := range policies {
		if err = cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if err = processes.Validate(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	queue := memory.NewQueue[Job](memory.Config{DeadLetter: true, QueueBuffer: len(policies)})
	for i, cfg := range policies {
		if err = queue.Publish(ctx, &Job{Index: i, Policy: cfg, Processes: processes}); err != nil {
			return nil, fmt.Errorf("failed to schedule %s: %w", cfg.Name, err)
		}
	}
	tracker, ok := progress.FromContext(ctx)
	if !ok {
		ctx, tracker = progress.WithNewTracker(ctx, idgen.New(), func(p progress.Progress) {
			s.logger.Debug("comparison progress", "comparison", p.ComparisonID,
				"completed", p.CompletedRuns, "failed", p.FailedRuns, "running", p.RunningRuns, "total", p.TotalRuns)
		})
	}
	progress.UpdateCtx(ctx, progress.Delta{Total: len(policies)})

	runs = make([]*model.Run, len(policies))
	errs := make([]error, len(policies))
	remaining := int64(len(policies))

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	workers := min(s.config.WorkerCount, len(policies))
	var workerWg sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerWg.Add(1)
		go func(id int) {
			defer workerWg.Done()
			for {
				msg, cErr := queue.Consume(workerCtx)
				if cErr != nil {
					return
				}
				s.handle(workerCtx, id, msg, runs, errs)
				if atomic.AddInt64(&remaining, -1) == 0 {
					cancel()
				}
			}
		}(i)
	}
	workerWg.Wait()
	if atomic.LoadInt64(&remaining) > 0 {
		return nil, ctx.Err()
	}

	snapshot := tracker.Snapshot()
	s.logger.Info("comparison finished", "comparison", snapshot.ComparisonID,
		"completed", snapshot.CompletedRuns, "failed", snapshot.FailedRuns, "elapsed", clock.Now().Sub(snapshot.StartedAt))
	for _, msg := range queue.DeadLetters() {
		s.logger.Warn("policy run dead-lettered", "policy", msg.T().Policy.Name, logging.ErrAttr(msg.Err()))
	}
	return runs, errors.Join(errs...)
}

func (s *Service) handle(ctx context.Context, worker int, msg messaging.Message[Job], runs []*model.Run, errs []error) {
	job := msg.T()
	progress.UpdateCtx(ctx, progress.Delta{Running: 1})
	s.logger.Debug("simulating", "worker", worker, "policy", job.Policy.Name, "processes", len(job.Processes))

	run, err := s.process(ctx, job)
	if err != nil {
		errs[job.Index] = err
		run = &model.Run{
			ID:        idgen.NewRunID(job.Policy.Name),
			Policy:    job.Policy.Name,
			CreatedAt: clock.Now(),
			Processes: job.Processes,
			Error:     err.Error(),
		}
		_ = msg.Nack(err)
		progress.UpdateCtx(ctx, progress.Delta{Running: -1, Failed: 1})
		s.logger.Error("policy run failed", "policy", job.Policy.Name, logging.ErrAttr(err))
	} else {
		_ = msg.Ack()
		progress.UpdateCtx(ctx, progress.Delta{Running: -1, Completed: 1})
		s.logger.Info("policy run completed", "policy", run.Policy, "run", run.ID,
			"avgWaiting", run.Global.AvgWaiting, "starved", len(run.Starved))
	}
	runs[job.Index] = run
}

func (s *Service) process(ctx context.Context, job *Job) (*model.Run, error) {
	run, err := Execute(ctx, job.Policy, job.Processes, s.config.Threshold)
	if err != nil {
		return nil, err
	}
	if s.runDAO != nil {
		if err := s.runDAO.Save(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to store run %s: %w", run.ID, err)
		}
	}
	return run, nil
}
