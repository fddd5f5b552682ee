// Package parquet provides data structures and functions for exporting
// evaluation results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/schema"
	"github.com/parquet-go/parquet-go"
)

// EvalRun represents a single evaluation run with metadata.
// This struct maps to the modelmeter_eval_runs database table.
type EvalRun struct {
	// RunID is the unique identifier for this evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the evaluation began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the evaluation completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds
	RunDurationMs int64 `parquet:"run_duration_ms,snappy"`

	// DataPath is the input file the run evaluated
	DataPath string `parquet:"data_path,snappy"`

	// RowCount is the number of result rows the run produced
	RowCount int32 `parquet:"row_count,snappy"`

	// Params contains the JSON-encoded evaluation parameters (nullable)
	Params *string `parquet:"params,optional,snappy"`
}

// MetricRowRecord represents one metric result row.
// This struct maps to the modelmeter_metric_rows database table.
type MetricRowRecord struct {
	// RunID references the parent evaluation run (0 for direct exports)
	RunID int64 `parquet:"run_id,snappy"`

	// GroupKey is the partition key tuple, empty for ungrouped data (nullable)
	GroupKey *string `parquet:"group_key,optional,snappy"`

	// Metric is the metric name
	Metric string `parquet:"metric,snappy"`

	// Estimator indicates how the metric was computed
	Estimator string `parquet:"estimator,snappy"`

	// Value is the computed metric value
	Value float64 `parquet:"value,snappy"`

	// Direction is the metric's declared optimization direction
	Direction string `parquet:"direction,snappy"`

	// Kind is the metric kind tag
	Kind string `parquet:"kind,snappy"`
}

// CurvePointRecord represents one gain or lift curve point.
type CurvePointRecord struct {
	// GroupKey is the partition key tuple, empty for ungrouped data (nullable)
	GroupKey *string `parquet:"group_key,optional,snappy"`

	// Level is the originating class level for multiclass curves (nullable)
	Level *string `parquet:"level,optional,snappy"`

	// SampleIndex is the 1-based rank position after sorting
	SampleIndex int32 `parquet:"sample_index,snappy"`

	// RankIndex collapses tied scores to one index
	RankIndex int32 `parquet:"rank_index,snappy"`

	// PercentTested is the cumulative percent of samples examined
	PercentTested float64 `parquet:"percent_tested,snappy"`

	// PercentFound is the cumulative percent of events captured (gain curves)
	PercentFound *float64 `parquet:"percent_found,optional,snappy"`

	// Lift is percent found over percent tested (lift curves)
	Lift *float64 `parquet:"lift,optional,snappy"`
}

// WriteEvalRunsParquet writes evaluation runs to a Parquet file.
func WriteEvalRunsParquet(runs []EvalRun, outputPath string) error {
	return writeParquet(runs, outputPath)
}

// WriteMetricRowsParquet converts metric rows and writes them to a Parquet file.
func WriteMetricRowsParquet(rows []schema.MetricRow, outputPath string) error {
	records := make([]MetricRowRecord, len(rows))
	for i, r := range rows {
		records[i] = MetricRowRecord{
			GroupKey:  optionalString(contract.GroupKeyString(r.Groups)),
			Metric:    r.Metric,
			Estimator: r.Estimator,
			Value:     r.Value,
			Direction: string(r.Direction),
			Kind:      string(r.Kind),
		}
	}
	return writeParquet(records, outputPath)
}

// WriteRowRecordsParquet writes stored metric rows (with run IDs) to a Parquet file.
func WriteRowRecordsParquet(rows []contract.RowRecord, outputPath string) error {
	records := make([]MetricRowRecord, len(rows))
	for i, r := range rows {
		records[i] = MetricRowRecord{
			RunID:     r.RunID,
			GroupKey:  optionalString(r.GroupKey),
			Metric:    r.Metric,
			Estimator: r.Estimator,
			Value:     r.Value,
			Direction: string(r.Direction),
			Kind:      string(r.Kind),
		}
	}
	return writeParquet(records, outputPath)
}

// WriteGainPointsParquet converts gain points and writes them to a Parquet file.
func WriteGainPointsParquet(points []schema.GainPoint, outputPath string) error {
	records := make([]CurvePointRecord, len(points))
	for i, p := range points {
		found := p.PercentFound
		records[i] = CurvePointRecord{
			GroupKey:      optionalString(contract.GroupKeyString(p.Groups)),
			Level:         optionalString(p.Level),
			SampleIndex:   int32(p.SampleIndex),
			RankIndex:     int32(p.RankIndex),
			PercentTested: p.PercentTested,
			PercentFound:  &found,
		}
	}
	return writeParquet(records, outputPath)
}

// WriteLiftPointsParquet converts lift points and writes them to a Parquet file.
func WriteLiftPointsParquet(points []schema.LiftPoint, outputPath string) error {
	records := make([]CurvePointRecord, len(points))
	for i, p := range points {
		lift := p.Lift
		records[i] = CurvePointRecord{
			GroupKey:      optionalString(contract.GroupKeyString(p.Groups)),
			Level:         optionalString(p.Level),
			SampleIndex:   int32(p.SampleIndex),
			RankIndex:     int32(p.RankIndex),
			PercentTested: p.PercentTested,
			Lift:          &lift,
		}
	}
	return writeParquet(records, outputPath)
}

// writeParquet writes any record slice to a Parquet file with the schema
// derived from the record type.
func writeParquet[T any](records []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file %s: %w", outputPath, err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet records: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// optionalString maps empty strings to nil for optional parquet fields.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
