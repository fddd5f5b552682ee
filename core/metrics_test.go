package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumericMetricValues tests the numeric metric functions on known vectors.
func TestNumericMetricValues(t *testing.T) {
	tests := []struct {
		name     string
		fn       NumericFunc
		truth    []float64
		estimate []float64
		want     float64
	}{
		{"rmse perfect", rmse, []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"rmse known", rmse, []float64{0, 0}, []float64{3, 4}, math.Sqrt(12.5)},
		{"mae known", mae, []float64{0, 0}, []float64{3, 4}, 3.5},
		{"rsq perfect linear", rsq, []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"mape known", mape, []float64{10, 20}, []float64{11, 18}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.truth, tt.estimate)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestNumericMetricErrors tests the guard conditions.
func TestNumericMetricErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := rmse(nil, nil)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := mae([]float64{1, 2}, []float64{1})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("rsq zero variance", func(t *testing.T) {
		_, err := rsq([]float64{5, 5, 5}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("mape zero truth", func(t *testing.T) {
		_, err := mape([]float64{0, 1}, []float64{1, 1})
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}

// TestClassMetricValues tests accuracy, precision and recall.
func TestClassMetricValues(t *testing.T) {
	truth := []string{"a", "a", "b", "b"}
	estimate := []string{"a", "b", "a", "b"}

	t.Run("accuracy", func(t *testing.T) {
		got, err := accuracy(truth, estimate, "a")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("precision", func(t *testing.T) {
		got, err := precision(truth, estimate, "a")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("recall", func(t *testing.T) {
		got, err := recall(truth, estimate, "a")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("precision undefined", func(t *testing.T) {
		_, err := precision([]string{"a", "b"}, []string{"b", "b"}, "a")
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("recall no events", func(t *testing.T) {
		_, err := recall([]string{"b", "b"}, []string{"a", "b"}, "a")
		assert.ErrorIs(t, err, ErrNoPositiveEvents)
	})
}

// TestLogLoss tests binary and clamped probability handling.
func TestLogLoss(t *testing.T) {
	levels := []string{"yes", "no"}

	t.Run("binary complement", func(t *testing.T) {
		truth := []string{"yes", "no"}
		scores := [][]float64{{0.8, 0.3}}
		// -(ln 0.8 + ln 0.7) / 2
		want := -(math.Log(0.8) + math.Log(0.7)) / 2
		got, err := logLoss(truth, levels, scores, "yes")
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9)
	})

	t.Run("zero probability stays finite", func(t *testing.T) {
		got, err := logLoss([]string{"yes"}, levels, [][]float64{{0}}, "yes")
		require.NoError(t, err)
		assert.False(t, math.IsInf(got, 1))
		assert.Greater(t, got, 30.0) // -ln(1e-15) ~ 34.5
	})

	t.Run("unknown truth level", func(t *testing.T) {
		_, err := logLoss([]string{"maybe"}, levels, [][]float64{{0.5}}, "yes")
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}

// TestGainCapture tests the curve-area summary metric.
func TestGainCapture(t *testing.T) {
	levels := []string{"yes", "no"}

	t.Run("perfect ranking", func(t *testing.T) {
		truth := []string{"yes", "yes", "no", "no"}
		scores := [][]float64{{0.9, 0.8, 0.2, 0.1}}
		got, err := gainCapture(truth, levels, scores, "yes")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("inverted ranking is negative", func(t *testing.T) {
		truth := []string{"no", "no", "yes", "yes"}
		scores := [][]float64{{0.9, 0.8, 0.2, 0.1}}
		got, err := gainCapture(truth, levels, scores, "yes")
		require.NoError(t, err)
		assert.Less(t, got, 0.0)
	})

	t.Run("event second mirrors event first", func(t *testing.T) {
		truth := []string{"yes", "yes", "no", "no"}
		scores := [][]float64{{0.9, 0.8, 0.2, 0.1}}
		got, err := gainCapture(truth, levels, scores, "no")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("all events undefined", func(t *testing.T) {
		truth := []string{"yes", "yes"}
		scores := [][]float64{{0.9, 0.8}}
		_, err := gainCapture(truth, levels, scores, "yes")
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}
