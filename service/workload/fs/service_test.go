package fs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/schedsim/model"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected model.Processes
	}{
		{
			name: "json envelope",
			data: `{"processes":[{"pid":1,"arrival":0,"burst":3,"priority":2},{"pid":2,"arrival":1.5,"burst":2}]}`,
			expected: model.Processes{
				model.NewProcess(1, 0, 3).WithPriority(2),
				model.NewProcess(2, 1.5, 2),
			},
		},
		{
			name:     "json list",
			data:     `[{"pid":7,"name":"nginx","arrival":0,"burst":4}]`,
			expected: model.Processes{model.NewProcess(7, 0, 4).WithName("nginx")},
		},
		{
			name: "yaml envelope",
			data: "processes:\n  - pid: 1\n    arrival: 0\n    burst: 2\n  - pid: 2\n    arrival: 3\n    burst: 1\n    priority: 5\n",
			expected: model.Processes{
				model.NewProcess(1, 0, 2),
				model.NewProcess(2, 3, 1).WithPriority(5),
			},
		},
		{
			name:     "empty document",
			data:     "",
			expected: model.Processes{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Decode([]byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, err := Decode([]byte("42"))
	assert.Error(t, err)
}

func TestService_SaveLoad(t *testing.T) {
	ctx := context.Background()
	srv := New(afs.New())
	dir := t.TempDir()
	processes := model.Processes{
		model.NewProcess(1, 0, 3).WithName("init"),
		model.NewProcess(2, 2, 5).WithPriority(10),
	}
	for _, name := range []string{"workload.json", "workload.yaml"} {
		URL := filepath.Join(dir, name)
		require.NoError(t, srv.Save(ctx, URL, processes))
		loaded, err := srv.Load(ctx, URL)
		require.NoError(t, err, name)
		assert.Equal(t, processes, loaded, name)
	}

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, srv.Save(ctx, invalid, model.Processes{model.NewProcess(1, 0, 0)}))
	_, err := srv.Load(ctx, invalid)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = srv.Load(ctx, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
