package schedsim

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name        string
		document    string
		expectError bool
		check       func(t *testing.T, config *Config)
	}{
		{
			name: "overrides defaults",
			document: `
policies:
  - name: rr
    quantum: 4
  - name: mlfq
    quanta: [1, 2]
comparator:
  workers: 2
starvation:
  threshold: 12.5
workload:
  synthetic:
    count: 3
    maxBurst: 5
    seed: 9
  live:
    top: 3
    host:
      url: ssh://10.0.0.5/
      credentials: ops
`,
			check: func(t *testing.T, config *Config) {
				require.Len(t, config.Policies, 2)
				assert.Equal(t, 4.0, config.Policies[0].Quantum)
				assert.Equal(t, []float64{1, 2}, config.Policies[1].Quanta)
				assert.Equal(t, 2, config.Comparator.WorkerCount)
				assert.Equal(t, 12.5, config.Starvation.Threshold)
				assert.Equal(t, 3, config.Workload.Synthetic.Count)
				assert.Equal(t, int64(9), config.Workload.Synthetic.Seed)
				assert.Equal(t, "ops", config.Workload.Live.Host.Credentials)
				assert.Equal(t, "info", config.Log.Level)
			},
		},
		{
			name:     "empty document keeps defaults",
			document: "log:\n  level: debug\n",
			check: func(t *testing.T, config *Config) {
				assert.Len(t, config.Policies, len(policy.Names()))
				assert.Equal(t, "debug", config.Log.Level)
			},
		},
		{
			name:        "invalid policy",
			document:    "policies:\n  - name: lottery\n",
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			URL := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(URL, []byte(tc.document), 0o644))
			config, err := LoadConfig(context.Background(), URL)
			if tc.expectError {
				assert.ErrorIs(t, err, model.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			tc.check(t, config)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())

	config.Comparator.WorkerCount = 0
	config.Starvation.Threshold = -1
	config.Policies = append(config.Policies, &policy.Config{Name: policy.NameCFS, Granularity: -1})
	err := config.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.Contains(t, err.Error(), "comparator.workers")
	assert.Contains(t, err.Error(), "starvation.threshold")
	assert.Contains(t, err.Error(), "policies[7]")
}
