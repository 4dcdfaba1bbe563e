package mocap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
)

func TestMetricsForRole(t *testing.T) {
	assert.NotEmpty(t, MetricsForRole(models.RolePitcher))
	assert.NotEmpty(t, MetricsForRole(models.RoleHitter))
	assert.Nil(t, MetricsForRole(models.Role("catcher")))
}

func TestWhitelistKeysAreUnique(t *testing.T) {
	for _, specs := range [][]models.MetricSpec{PitcherMetrics, HitterMetrics} {
		seen := map[string]bool{}
		for _, spec := range specs {
			assert.False(t, seen[spec.Key], "duplicate key %s", spec.Key)
			seen[spec.Key] = true
			assert.NotEmpty(t, spec.Label)
		}
	}
}
