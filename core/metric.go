// Package core has core logic for metric composition, group partitioning and
// rank-based curve computation.
package core

import (
	"fmt"

	"github.com/huangsam/modelmeter/schema"
)

// NumericFunc computes a numeric metric over aligned truth and estimate
// values. Extra numeric columns requested by the caller are passed through;
// metrics that do not need them ignore the variadic argument.
type NumericFunc func(truth, estimate []float64, extras ...[]float64) (float64, error)

// ClassFunc computes a class metric over aligned truth and predicted labels.
// The event argument names the level treated as positive.
type ClassFunc func(truth, estimate []string, event string) (float64, error)

// ProbFunc computes a class-probability metric. scores[k] holds the predicted
// probability of levels[k] for every row.
type ProbFunc func(truth []string, levels []string, scores [][]float64, event string) (float64, error)

// Metric pairs one metric function with its kind and direction metadata.
// Metrics are immutable once created; the metadata is consulted only by the
// set builder and external tooling, never by the computation itself.
type Metric struct {
	name      string
	kind      schema.MetricKind
	direction schema.Direction

	numericFn NumericFunc
	classFn   ClassFunc
	probFn    ProbFunc
}

// NewNumericMetric wraps a numeric metric function.
func NewNumericMetric(name string, fn NumericFunc, direction schema.Direction) (*Metric, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %q has a nil function", ErrInvalidMetric, name)
	}
	m := &Metric{name: name, kind: schema.NumericMetric, numericFn: fn}
	return finishMetric(m, direction)
}

// NewClassMetric wraps a class (hard label) metric function.
func NewClassMetric(name string, fn ClassFunc, direction schema.Direction) (*Metric, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %q has a nil function", ErrInvalidMetric, name)
	}
	m := &Metric{name: name, kind: schema.ClassMetric, classFn: fn}
	return finishMetric(m, direction)
}

// NewProbMetric wraps a class-probability metric function.
func NewProbMetric(name string, fn ProbFunc, direction schema.Direction) (*Metric, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %q has a nil function", ErrInvalidMetric, name)
	}
	m := &Metric{name: name, kind: schema.ClassProbMetric, probFn: fn}
	return finishMetric(m, direction)
}

// finishMetric runs the validation shared by all constructors.
func finishMetric(m *Metric, direction schema.Direction) (*Metric, error) {
	if m.name == "" {
		return nil, fmt.Errorf("%w: metric name must not be empty", ErrInvalidMetric)
	}
	if _, ok := schema.ValidDirections[direction]; !ok {
		return nil, fmt.Errorf("%w: %q is not maximize, minimize or zero", ErrInvalidDirection, direction)
	}
	m.direction = direction
	return m, nil
}

// Name returns the metric's unique name.
func (m *Metric) Name() string { return m.name }

// Kind returns the metric's kind tag.
func (m *Metric) Kind() schema.MetricKind { return m.kind }

// Direction returns the metric's declared optimization direction.
func (m *Metric) Direction() schema.Direction { return m.direction }
