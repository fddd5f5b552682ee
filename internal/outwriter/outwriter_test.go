package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMetricRows() []schema.MetricRow {
	return []schema.MetricRow{
		{Metric: "rmse", Estimator: "standard", Value: 1.23456, Direction: schema.Minimize, Kind: schema.NumericMetric},
		{
			Groups:    []schema.GroupValue{{Column: "region", Value: "east"}},
			Metric:    "mae", Estimator: "standard", Value: 0.5,
			Direction: schema.Minimize, Kind: schema.NumericMetric,
		},
	}
}

// TestWriteCSVResultsForMetrics tests the CSV layout for metric rows.
func TestWriteCSVResultsForMetrics(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(3)

	require.NoError(t, writeCSVResultsForMetrics(&buf, sampleMetricRows(), fmtFloat))
	out := buf.String()
	assert.Contains(t, out, "group,metric,estimator,value,direction,kind\n")
	assert.Contains(t, out, ",rmse,standard,1.235,minimize,numeric\n")
	assert.Contains(t, out, "region=east,mae,standard,0.500,minimize,numeric\n")
}

// TestWriteJSONResultsForMetrics tests that JSON output round-trips.
func TestWriteJSONResultsForMetrics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForMetrics(&buf, sampleMetricRows()))

	var decoded []schema.MetricRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "rmse", decoded[0].Metric)
	assert.Equal(t, "east", decoded[1].Groups[0].Value)
}

// TestWriteMetricTable tests table rendering with and without groups.
func TestWriteMetricTable(t *testing.T) {
	cfg := &contract.Config{Precision: 3, ResultLimit: 50, Width: 120}
	fmtFloat, _ := createFormatters(cfg.Precision)

	t.Run("with groups", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeMetricTable(sampleMetricRows(), cfg, fmtFloat, time.Millisecond, &buf))
		out := buf.String()
		assert.Contains(t, strings.ToUpper(out), "GROUP")
		assert.Contains(t, out, "region=east")
		assert.Contains(t, out, "Computed 2 metric values")
	})

	t.Run("without groups", func(t *testing.T) {
		var buf bytes.Buffer
		rows := sampleMetricRows()[:1]
		require.NoError(t, writeMetricTable(rows, cfg, fmtFloat, time.Millisecond, &buf))
		out := buf.String()
		assert.Contains(t, out, "rmse")
		assert.NotContains(t, strings.ToUpper(out), "GROUP")
	})
}

// TestWriteCSVResultsForGain tests the CSV layout for curve points.
func TestWriteCSVResultsForGain(t *testing.T) {
	points := []schema.GainPoint{
		{SampleIndex: 1, RankIndex: 1, PercentTested: 20, PercentFound: 100.0 / 3},
		{Level: "a", SampleIndex: 2, RankIndex: 2, PercentTested: 40, PercentFound: 200.0 / 3},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)
	require.NoError(t, writeCSVResultsForGain(&buf, points, fmtFloat))
	out := buf.String()
	assert.Contains(t, out, "group,level,sample_index,rank_index,percent_tested,percent_found\n")
	assert.Contains(t, out, ",,1,1,20.00,33.33\n")
	assert.Contains(t, out, ",a,2,2,40.00,66.67\n")
}

// TestWriteCSVResultsForLift tests the lift CSV header and values.
func TestWriteCSVResultsForLift(t *testing.T) {
	points := []schema.LiftPoint{
		{SampleIndex: 1, RankIndex: 1, PercentTested: 20, Lift: 1.6667},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)
	require.NoError(t, writeCSVResultsForLift(&buf, points, fmtFloat))
	out := buf.String()
	assert.Contains(t, out, "group,level,sample_index,rank_index,percent_tested,lift\n")
	assert.Contains(t, out, ",,1,1,20.00,1.67\n")
}

// TestWriteCurveTableLimit tests that the display limit caps table rows.
func TestWriteCurveTableLimit(t *testing.T) {
	cfg := &contract.Config{Precision: 2, ResultLimit: 2, Width: 120}
	fmtFloat, _ := createFormatters(cfg.Precision)

	points := make([]schema.GainPoint, 5)
	for i := range points {
		points[i] = schema.GainPoint{SampleIndex: i + 1, RankIndex: i + 1}
	}

	var buf bytes.Buffer
	rows := curveRowsFromGain(points, fmtFloat)
	require.NoError(t, writeCurveTable(rows, "%Found", len(points), cfg, time.Millisecond, &buf))
	assert.Contains(t, buf.String(), "Showing 2 of 5 curve points")
}

// TestWriteCSVResultsForCatalog tests the catalog CSV layout.
func TestWriteCSVResultsForCatalog(t *testing.T) {
	var buf bytes.Buffer
	infos := core.CatalogInfo()
	require.NoError(t, writeCSVResultsForCatalog(&buf, infos))
	out := buf.String()
	assert.Contains(t, out, "metric,kind,direction,purpose,formula\n")
	assert.Contains(t, out, "rmse,numeric,minimize,")
}

// TestTruncateCell tests tail-keeping truncation.
func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "short", truncateCell("short", 10))
	assert.Equal(t, "...f=value", truncateCell("prefix=value", 10))
	assert.Equal(t, "pre", truncateCell("prefix", 3))
}

// TestGetMaxGroupWidth tests width override clamping.
func TestGetMaxGroupWidth(t *testing.T) {
	assert.Equal(t, 12, getMaxGroupWidth(&contract.Config{Width: 40}))
	assert.Equal(t, 25, getMaxGroupWidth(&contract.Config{Width: 80}))
	assert.Equal(t, 50, getMaxGroupWidth(&contract.Config{Width: 500}))
}
