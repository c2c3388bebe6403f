// Package live samples the top CPU consumers of a local or remote host
// with ps and turns them into a snapshot workload.
package live

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	rssh "github.com/viant/gosh/runner/ssh"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/service/workload"
	"github.com/viant/scy/cred/secret"
	"golang.org/x/crypto/ssh"
)

// Runner executes shell commands; *gosh.Service satisfies it.
type Runner interface {
	Run(ctx context.Context, command string, options ...runner.Option) (string, int, error)
	Close() error
}

// Config controls sampling
type Config struct {
	Host      *Host `json:"host,omitempty" yaml:"host,omitempty"`
	Top       int   `json:"top" yaml:"top"`
	TimeoutMs int   `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty"`
}

// DefaultConfig samples the ten busiest local processes.
func DefaultConfig() Config {
	return Config{Host: &Host{}, Top: 10, TimeoutMs: 10000}
}

// Option configures a Sampler
type Option func(*Sampler)

// WithRunner sets the command runner, bypassing session creation.
func WithRunner(r Runner) Option {
	return func(s *Sampler) {
		s.runner = r
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sampler runs ps on a host
type Sampler struct {
	config Config
	runner Runner
	logger *slog.Logger
	mux    sync.Mutex
}

var _ workload.Source = (*Sampler)(nil)

// Processes implements workload.Source
func (s *Sampler) Processes(ctx context.Context) (model.Processes, error) {
	return s.Sample(ctx)
}

// Sample runs ps and parses its output.
func (s *Sampler) Sample(ctx context.Context) (model.Processes, error) {
	r, err := s.session(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	timeout := time.Duration(s.config.TimeoutMs) * time.Millisecond
	if timeout == 0 {
		timeout = time.Minute
	}
	stdout, status, err := r.Run(ctx, Command, runner.WithTimeout(int(timeout.Milliseconds())))
	if err != nil {
		return nil, fmt.Errorf("failed to run %q: %w", Command, err)
	}
	if status != 0 {
		return nil, fmt.Errorf("%q exited with status %d: %s", Command, status, stdout)
	}
	processes := Parse(stdout, s.config.Top)
	s.logger.Debug("sampled processes", "host", s.config.Host.URL, "count", len(processes))
	if len(processes) == 0 {
		return nil, model.NewInvalidInputError("no processes sampled from %q", s.config.Host.URL)
	}
	return processes, nil
}

// Close releases the underlying session
func (s *Sampler) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.runner == nil {
		return nil
	}
	err := s.runner.Close()
	s.runner = nil
	return err
}

func (s *Sampler) session(ctx context.Context) (Runner, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.runner != nil {
		return s.runner, nil
	}
	var service *gosh.Service
	var err error
	if s.config.Host.IsLocal() {
		service, err = gosh.New(ctx, local.New())
	} else {
		var config *ssh.ClientConfig
		if config, err = s.sshConfig(ctx); err != nil {
			return nil, fmt.Errorf("failed to get SSH config: %w", err)
		}
		service, err = gosh.New(ctx, rssh.New(s.config.Host.address(), config))
	}
	if err != nil {
		return nil, err
	}
	s.runner = service
	return service, nil
}

// sshConfig resolves the host credentials through scy secrets
func (s *Sampler) sshConfig(ctx context.Context) (*ssh.ClientConfig, error) {
	credentials := s.config.Host.Credentials
	if credentials == "" {
		credentials = "localhost"
	}
	secrets := secret.New()
	generic, err := secrets.GetCredentials(ctx, credentials)
	if err != nil {
		return nil, err
	}
	return generic.SSH.Config(ctx)
}

// New creates a sampler
func New(config Config, options ...Option) (*Sampler, error) {
	if config.Host == nil {
		config.Host = &Host{}
	}
	if config.Top < 0 {
		return nil, model.NewConfigurationError("live: top must be >= 0, got %d", config.Top)
	}
	s := &Sampler{config: config, logger: logging.Discard()}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}
