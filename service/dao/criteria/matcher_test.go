package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/schedsim/service/dao"
)

func TestFilterByPolicy(t *testing.T) {
	assert.True(t, FilterByPolicy("rr", nil))
	assert.True(t, FilterByPolicy("rr", []*dao.Parameter{dao.NewParameter(dao.ParameterPolicy, "RR")}))
	assert.False(t, FilterByPolicy("rr", []*dao.Parameter{dao.NewParameter(dao.ParameterPolicy, "cfs")}))
	assert.True(t, FilterByPolicy("cfs", []*dao.Parameter{dao.NewParameter(dao.ParameterPolicy, "rr", "cfs")}))
	assert.False(t, FilterByPolicy("sjf", []*dao.Parameter{dao.NewParameter(dao.ParameterPolicy, "rr", "cfs")}))
	assert.True(t, FilterByPolicy("sjf", []*dao.Parameter{dao.NewParameter("Other", "x")}))
}
