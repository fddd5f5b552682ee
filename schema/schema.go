// Package schema has column, frame and result models for all parts of modelmeter.
package schema

import (
	"fmt"
	"math"
)

// SeriesKind distinguishes numeric columns from categorical label columns.
type SeriesKind string

// All series kinds supported.
const (
	NumericSeries SeriesKind = "numeric"
	LabelSeries   SeriesKind = "label"
)

// Series is one named column of a Frame. A numeric series stores float64
// values with NaN marking missing cells. A label series stores strings with
// a validity mask, plus an ordered list of category levels.
type Series struct {
	Name   string
	Kind   SeriesKind
	Floats []float64 // Numeric values; NaN marks a missing cell
	Labels []string  // Label values; only meaningful where Valid is true
	Valid  []bool    // Validity mask for label series
	Levels []string  // Ordered category levels for label series
}

// NewNumericSeries creates a numeric series. Missing cells are NaN.
func NewNumericSeries(name string, values []float64) *Series {
	return &Series{Name: name, Kind: NumericSeries, Floats: values}
}

// NewLabelSeries creates a label series. Levels are derived from the data in
// first-appearance order; empty strings are treated as missing.
func NewLabelSeries(name string, values []string) *Series {
	valid := make([]bool, len(values))
	for i, v := range values {
		valid[i] = v != ""
	}
	return NewLabelSeriesWithLevels(name, values, valid, nil)
}

// NewLabelSeriesWithLevels creates a label series with an explicit validity
// mask and level order. When levels is nil, levels are derived from the valid
// values in first-appearance order.
func NewLabelSeriesWithLevels(name string, values []string, valid []bool, levels []string) *Series {
	if valid == nil {
		valid = make([]bool, len(values))
		for i := range valid {
			valid[i] = true
		}
	}
	if levels == nil {
		seen := make(map[string]bool)
		for i, v := range values {
			if valid[i] && !seen[v] {
				seen[v] = true
				levels = append(levels, v)
			}
		}
	}
	return &Series{Name: name, Kind: LabelSeries, Labels: values, Valid: valid, Levels: levels}
}

// Len returns the number of cells in the series.
func (s *Series) Len() int {
	if s.Kind == NumericSeries {
		return len(s.Floats)
	}
	return len(s.Labels)
}

// Missing reports whether the cell at index i is missing.
func (s *Series) Missing(i int) bool {
	if s.Kind == NumericSeries {
		return math.IsNaN(s.Floats[i])
	}
	return !s.Valid[i]
}

// ValueString renders the cell at index i for display and group keys.
func (s *Series) ValueString(i int) string {
	if s.Missing(i) {
		return ""
	}
	if s.Kind == NumericSeries {
		return fmt.Sprintf("%g", s.Floats[i])
	}
	return s.Labels[i]
}

// subset returns a copy of the series restricted to the given row indices.
// Level order is preserved even when a level is absent from the subset.
func (s *Series) subset(rows []int) *Series {
	out := &Series{Name: s.Name, Kind: s.Kind}
	if s.Kind == NumericSeries {
		out.Floats = make([]float64, len(rows))
		for i, r := range rows {
			out.Floats[i] = s.Floats[r]
		}
		return out
	}
	out.Labels = make([]string, len(rows))
	out.Valid = make([]bool, len(rows))
	for i, r := range rows {
		out.Labels[i] = s.Labels[r]
		out.Valid[i] = s.Valid[r]
	}
	out.Levels = s.Levels
	return out
}

// Frame is an ordered collection of equal-length series, optionally grouped
// by one or more of its columns. Frames are treated as immutable once built.
type Frame struct {
	names  []string
	cols   map[string]*Series
	rows   int
	groups []string
}

// NewFrame builds a frame from the given series. Column names must be unique
// and all series must have the same length.
func NewFrame(series ...*Series) (*Frame, error) {
	f := &Frame{cols: make(map[string]*Series)}
	for i, s := range series {
		if s.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, ok := f.cols[s.Name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", s.Name)
		}
		if i == 0 {
			f.rows = s.Len()
		} else if s.Len() != f.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", s.Name, s.Len(), f.rows)
		}
		f.names = append(f.names, s.Name)
		f.cols[s.Name] = s
	}
	return f, nil
}

// NumRows returns the number of rows in the frame.
func (f *Frame) NumRows() int { return f.rows }

// Names returns the column names in insertion order.
func (f *Frame) Names() []string { return f.names }

// Column returns the named series, or false if it does not exist.
func (f *Frame) Column(name string) (*Series, bool) {
	s, ok := f.cols[name]
	return s, ok
}

// GroupBy returns a copy of the frame marked as grouped by the given columns.
// Passing no columns clears the grouping.
func (f *Frame) GroupBy(cols ...string) (*Frame, error) {
	for _, c := range cols {
		if _, ok := f.cols[c]; !ok {
			return nil, fmt.Errorf("unknown grouping column %q", c)
		}
	}
	out := &Frame{names: f.names, cols: f.cols, rows: f.rows, groups: cols}
	return out, nil
}

// Groups returns the grouping column names, empty when ungrouped.
func (f *Frame) Groups() []string { return f.groups }

// IsGrouped reports whether grouping columns were supplied.
func (f *Frame) IsGrouped() bool { return len(f.groups) > 0 }

// Subset returns a new ungrouped frame containing only the given rows, in the
// given order.
func (f *Frame) Subset(rows []int) *Frame {
	out := &Frame{cols: make(map[string]*Series), rows: len(rows), names: f.names}
	for _, name := range f.names {
		out.cols[name] = f.cols[name].subset(rows)
	}
	return out
}
