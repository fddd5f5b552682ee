package core

import (
	"testing"

	"github.com/huangsam/modelmeter/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCatalog tests that every built-in metric is registered with docs.
func TestCatalog(t *testing.T) {
	metrics := Catalog()
	assert.Equal(t, 9, len(metrics))

	infos := CatalogInfo()
	require.Equal(t, len(metrics), len(infos))
	for i, info := range infos {
		assert.Equal(t, metrics[i].Name(), info.Name)
		assert.NotEmpty(t, info.Purpose, "metric %s has no purpose", info.Name)
		assert.NotEmpty(t, info.Formula, "metric %s has no formula", info.Name)
	}
}

// TestLookupMetric tests catalog lookup by name.
func TestLookupMetric(t *testing.T) {
	tests := []struct {
		name      string
		kind      schema.MetricKind
		direction schema.Direction
	}{
		{"rmse", schema.NumericMetric, schema.Minimize},
		{"mae", schema.NumericMetric, schema.Minimize},
		{"rsq", schema.NumericMetric, schema.Maximize},
		{"mape", schema.NumericMetric, schema.Minimize},
		{"accuracy", schema.ClassMetric, schema.Maximize},
		{"precision", schema.ClassMetric, schema.Maximize},
		{"recall", schema.ClassMetric, schema.Maximize},
		{"gain_capture", schema.ClassProbMetric, schema.Maximize},
		{"mn_log_loss", schema.ClassProbMetric, schema.Minimize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := LookupMetric(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, m.Kind())
			assert.Equal(t, tt.direction, m.Direction())
		})
	}

	_, ok := LookupMetric("nope")
	assert.False(t, ok)
}
