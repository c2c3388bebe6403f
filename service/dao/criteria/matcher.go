package criteria

import (
	"strings"

	"github.com/viant/schedsim/service/dao"
)

// FilterByPolicy reports whether policy matches the Policy parameter, if
// any.  Comparison is case-insensitive; other parameters are ignored.
func FilterByPolicy(policy string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != dao.ParameterPolicy {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			return strings.EqualFold(policy, actual)
		case []string:
			for _, candidate := range actual {
				if strings.EqualFold(policy, candidate) {
					return true
				}
			}
			return false
		}
	}
	return true
}
