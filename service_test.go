package schedsim

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/workload"
)

func newService(t *testing.T, options ...Option) *Service {
	options = append([]Option{WithLogger(logging.Discard())}, options...)
	srv, err := New(options...)
	require.NoError(t, err)
	return srv
}

func sampleWorkload() model.Processes {
	return model.Processes{
		model.NewProcess(1, 0, 8).WithPriority(3),
		model.NewProcess(2, 1, 4).WithPriority(1),
		model.NewProcess(3, 2, 9).WithPriority(4),
		model.NewProcess(4, 3, 5).WithPriority(2),
	}
}

func TestService_Simulate(t *testing.T) {
	srv := newService(t)
	ctx := context.Background()

	run, err := srv.Simulate(ctx, &policy.Config{Name: policy.NameSRTF}, sampleWorkload())
	require.NoError(t, err)
	assert.Equal(t, policy.NameSRTF, run.Policy)
	assert.NoError(t, run.Timeline.Validate())
	// 1 [0,1) 2 [1,5) 4 [5,10) 1 [10,17) 3 [17,26)
	assert.InDelta(t, 6.5, run.Global.AvgWaiting, 1e-9)
	assert.Equal(t, 26.0, run.Global.Makespan)

	stored, err := srv.Runs().Load(ctx, run.ID)
	require.NoError(t, err)
	assert.Same(t, run, stored)

	_, err = srv.Simulate(ctx, &policy.Config{Name: policy.NameRoundRobin, Quantum: -1}, sampleWorkload())
	assert.ErrorIs(t, err, model.ErrConfiguration)
	_, err = srv.Simulate(ctx, &policy.Config{Name: policy.NameFCFS}, model.Processes{model.NewProcess(model.IdlePID, 0, 1)})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestService_Compare(t *testing.T) {
	config := DefaultConfig()
	config.Policies = []*policy.Config{{Name: policy.NameFCFS}, {Name: policy.NameCFS, Granularity: 2}}
	srv := newService(t, WithConfig(config), WithWorkers(2))
	ctx := context.Background()

	runs, err := srv.Compare(ctx, sampleWorkload())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, policy.NameFCFS, runs[0].Policy)
	assert.Equal(t, policy.NameCFS, runs[1].Policy)

	stored, err := srv.Runs().List(ctx, dao.NewParameter(dao.ParameterPolicy, policy.NameCFS))
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	runs, err = srv.Compare(ctx, sampleWorkload(), policy.Defaults()...)
	require.NoError(t, err)
	assert.Len(t, runs, len(policy.Names()))
}

func TestService_Workloads(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "workload.yaml")

	config := DefaultConfig()
	config.Workload.Synthetic.Seed = 11
	config.Workload.Synthetic.Count = 5
	srv := newService(t, WithConfig(config))

	generated, err := srv.Workload(ctx)
	require.NoError(t, err)
	require.Len(t, generated, 5)

	require.NoError(t, srv.SaveWorkload(ctx, URL, generated))
	config.Workload.URL = URL
	loaded, err := srv.Workload(ctx)
	require.NoError(t, err)
	assert.Equal(t, generated, loaded)
}

func TestService_Sample(t *testing.T) {
	expected := model.Processes{model.NewProcess(42, 0, 3).WithName("sshd")}
	srv := newService(t, WithSampler(workload.Func(func(ctx context.Context) (model.Processes, error) {
		return expected, nil
	})))
	actual, err := srv.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.NoError(t, srv.Close())

	srv = newService(t, WithSampler(workload.Func(func(ctx context.Context) (model.Processes, error) {
		return nil, errors.New("ps not found")
	})))
	_, err = srv.Sample(context.Background())
	assert.EqualError(t, err, "ps not found")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(WithWorkers(0))
	assert.ErrorIs(t, err, model.ErrConfiguration)
}
