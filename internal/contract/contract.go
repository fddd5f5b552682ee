// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/modelmeter/schema"
)

// RunInfo describes one evaluation run about to be recorded.
type RunInfo struct {
	DataPath   string
	StartTime  time.Time
	DurationMs int64
	RowCount   int
	Params     string // JSON-encoded evaluation parameters
}

// RunRecord is one stored evaluation run.
type RunRecord struct {
	RunID      int64      `json:"run_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	DataPath   string     `json:"data_path"`
	DurationMs int64      `json:"run_duration_ms"`
	RowCount   int        `json:"row_count"`
	Params     string     `json:"params,omitempty"`
}

// RowRecord is one stored metric result row, joined to its run.
type RowRecord struct {
	RunID     int64             `json:"run_id"`
	GroupKey  string            `json:"group_key,omitempty"`
	Metric    string            `json:"metric"`
	Estimator string            `json:"estimator"`
	Value     float64           `json:"value"`
	Direction schema.Direction  `json:"direction"`
	Kind      schema.MetricKind `json:"kind"`
}

// StoreStatus summarizes the state of a result store.
type StoreStatus struct {
	Backend  schema.DatabaseBackend `json:"backend"`
	Location string                 `json:"location,omitempty"`
	RunCount int                    `json:"run_count"`
	RowCount int                    `json:"row_count"`
}

// ResultStore persists evaluation runs and their metric rows.
// This allows the storage layer to be mocked for testing.
type ResultStore interface {
	// RecordRun stores one run with its metric rows in a single transaction
	// and returns the new run ID.
	RecordRun(run RunInfo, rows []schema.MetricRow) (int64, error)

	// Status reports backend and row counts.
	Status() (StoreStatus, error)

	// Clear removes all stored runs and rows.
	Clear() error

	// FetchRuns returns all stored runs, newest first.
	FetchRuns() ([]RunRecord, error)

	// FetchRows returns all stored metric rows, newest run first.
	FetchRows() ([]RowRecord, error)

	// Close releases the underlying connection.
	Close() error
}
