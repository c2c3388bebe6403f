package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	os.Clearenv()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts, err := parseOptions(fs, []string{"-synthetic", "6", "-policy", "rr", "-quantum", "3", "-gantt"})
	require.NoError(t, err)
	assert.Equal(t, 6, opts.Synthetic)
	assert.Equal(t, "rr", opts.Policy)
	assert.Equal(t, 3.0, opts.policy().Quantum)
	assert.True(t, opts.Gantt)
	assert.Equal(t, -1.0, opts.Threshold)

	for _, name := range []string{"RR", "round-robin", "roundrobin"} {
		opts := &options{Policy: name, Quantum: 3}
		assert.Equal(t, 3.0, opts.policy().Quantum, name)
	}
	assert.Equal(t, 0.0, (&options{Policy: "fcfs", Quantum: 3}).policy().Quantum)

	os.Setenv("SCHEDSIM_LOG_LEVEL", "debug")
	defer os.Clearenv()
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	opts, err = parseOptions(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestRun_SinglePolicy(t *testing.T) {
	dir := t.TempDir()
	workload := filepath.Join(dir, "workload.json")
	require.NoError(t, os.WriteFile(workload, []byte(`{"processes":[{"pid":1,"arrival":0,"burst":3},{"pid":2,"arrival":1,"burst":2}]}`), 0o644))

	out := &bytes.Buffer{}
	opts := &options{WorkloadURL: workload, Policy: "fcfs", Gantt: true, Threshold: -1, LogLevel: "error", OutDir: filepath.Join(dir, "runs")}
	require.NoError(t, run(context.Background(), opts, out))
	assert.Contains(t, out.String(), "Gantt schedule")
	assert.Contains(t, out.String(), "|   1    |   2    |")

	entries, err := os.ReadDir(filepath.Join(dir, "runs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun_Compare(t *testing.T) {
	out := &bytes.Buffer{}
	opts := &options{Synthetic: 5, Seed: 3, Quantum: 4, Threshold: 10, LogLevel: "error"}
	require.NoError(t, run(context.Background(), opts, out))
	assert.Contains(t, out.String(), "Scheduler Comparison Summary")
	for _, name := range []string{"fcfs", "sjf", "srtf", "rr", "priority", "cfs", "mlfq"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestRun_InvalidPolicy(t *testing.T) {
	opts := &options{Synthetic: 2, Seed: 1, Policy: "lottery", Threshold: -1, LogLevel: "error"}
	assert.Error(t, run(context.Background(), opts, &bytes.Buffer{}))
}
