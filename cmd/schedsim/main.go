package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/viant/schedsim"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
	runfs "github.com/viant/schedsim/service/dao/run/fs"
	"github.com/viant/schedsim/service/report"
)

const version = "v0.1.0"

// options holds command line settings.  Zero values leave the loaded
// configuration untouched.
type options struct {
	ConfigURL   string
	WorkloadURL string
	Live        bool
	Top         int
	Synthetic   int
	Seed        int64
	Policy      string
	Quantum     float64
	Threshold   float64
	Gantt       bool
	OutDir      string
	LogLevel    string
	Version     bool
}

func main() {
	opts, err := parseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.Version {
		fmt.Println("schedsim", version)
		return
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "schedsim:", err)
		os.Exit(1)
	}
}

// parseOptions reads flags, falling back to SCHEDSIM_CONFIG and
// SCHEDSIM_LOG_LEVEL; flags take precedence.
func parseOptions(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{Threshold: -1}
	if URL := os.Getenv("SCHEDSIM_CONFIG"); URL != "" {
		opts.ConfigURL = URL
	}
	if level := os.Getenv("SCHEDSIM_LOG_LEVEL"); level != "" {
		opts.LogLevel = level
	}
	fs.StringVar(&opts.ConfigURL, "config", opts.ConfigURL, "configuration file URL (YAML)")
	fs.StringVar(&opts.WorkloadURL, "workload", "", "workload file URL (JSON or YAML)")
	fs.BoolVar(&opts.Live, "live", false, "sample the busiest processes with ps")
	fs.IntVar(&opts.Top, "top", 0, "number of processes to sample with -live")
	fs.IntVar(&opts.Synthetic, "synthetic", 0, "generate N random processes")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed for -synthetic")
	fs.StringVar(&opts.Policy, "policy", "", "run a single policy ("+strings.Join(policy.Names(), ", ")+"); all when empty")
	fs.Float64Var(&opts.Quantum, "quantum", 0, "round robin quantum")
	fs.Float64Var(&opts.Threshold, "threshold", opts.Threshold, "starvation waiting threshold")
	fs.BoolVar(&opts.Gantt, "gantt", false, "print a Gantt chart per policy")
	fs.StringVar(&opts.OutDir, "out", "", "directory to store runs as JSON")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&opts.Version, "version", false, "print version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *options) config(ctx context.Context) (*schedsim.Config, error) {
	config := schedsim.DefaultConfig()
	if o.ConfigURL != "" {
		var err error
		if config, err = schedsim.LoadConfig(ctx, o.ConfigURL); err != nil {
			return nil, err
		}
	}
	if o.LogLevel != "" {
		config.Log.Level = o.LogLevel
	}
	if o.Threshold >= 0 {
		config.Starvation.Threshold = o.Threshold
	}
	if o.WorkloadURL != "" {
		config.Workload.URL = o.WorkloadURL
	}
	if o.Synthetic > 0 {
		config.Workload.URL = ""
		config.Workload.Synthetic.Count = o.Synthetic
	}
	if o.Seed != 0 {
		config.Workload.Synthetic.Seed = o.Seed
	}
	if o.Top > 0 {
		config.Workload.Live.Top = o.Top
	}
	return config, nil
}

func (o *options) policy() *policy.Config {
	ret := &policy.Config{Name: o.Policy}
	if policy.Normalize(ret.Name) == policy.NameRoundRobin {
		ret.Quantum = o.Quantum
	}
	return ret
}

func run(ctx context.Context, opts *options, w io.Writer) error {
	config, err := opts.config(ctx)
	if err != nil {
		return err
	}
	srvOptions := []schedsim.Option{
		schedsim.WithConfig(config),
		schedsim.WithLogger(logging.New("schedsim", config.Log.Level)),
	}
	if opts.OutDir != "" {
		runDAO, err := runfs.New(opts.OutDir)
		if err != nil {
			return err
		}
		srvOptions = append(srvOptions, schedsim.WithRunDAO(runDAO))
	}
	srv, err := schedsim.New(srvOptions...)
	if err != nil {
		return err
	}
	defer srv.Close()

	var processes model.Processes
	if opts.Live {
		processes, err = srv.Sample(ctx)
	} else {
		processes, err = srv.Workload(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to obtain workload: %w", err)
	}
	report.Title(w, "Workload")
	report.Processes(w, processes)

	if opts.Policy != "" {
		aRun, err := srv.Simulate(ctx, opts.policy(), processes)
		if err != nil {
			return err
		}
		printRun(w, aRun, opts.Gantt)
		return nil
	}

	if opts.Quantum > 0 {
		for _, p := range config.Policies {
			if policy.Normalize(p.Name) == policy.NameRoundRobin {
				p.Quantum = opts.Quantum
			}
		}
	}
	runs, err := srv.Compare(ctx, processes)
	for _, aRun := range runs {
		printRun(w, aRun, opts.Gantt)
	}
	report.Title(w, "Scheduler Comparison Summary")
	report.Comparison(w, runs)
	return err
}

func printRun(w io.Writer, aRun *model.Run, gantt bool) {
	report.Title(w, aRun.Policy)
	if gantt && !aRun.Failed() {
		report.Gantt(w, aRun.Timeline)
	}
	report.Metrics(w, aRun)
}
