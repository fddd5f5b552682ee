package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/modelmeter/schema"
)

// SetKind is the combined kind of a metric set, derived at build time.
type SetKind string

// All set kinds supported.
const (
	NumericSet     SetKind = "numeric"
	ClassOrProbSet SetKind = "class_or_prob"
)

// Set is an ordered, immutable collection of metrics that evaluate together.
// A set is either all-numeric or a mix of class and class-probability
// metrics; the two families never combine.
type Set struct {
	metrics []*Metric
	kind    SetKind
}

// NewSet validates kind compatibility and name uniqueness, then builds a set.
// Insertion order is preserved.
func NewSet(metrics ...*Metric) (*Set, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: at least one metric is required", ErrEmptySet)
	}

	var numeric, classOrProb []string
	seen := make(map[string]bool)
	for i, m := range metrics {
		if m == nil {
			return nil, fmt.Errorf("%w: metric %d is nil", ErrInvalidMetric, i)
		}
		if seen[m.Name()] {
			return nil, fmt.Errorf("%w: duplicate metric name %q", ErrInvalidMetric, m.Name())
		}
		seen[m.Name()] = true
		if m.Kind() == schema.NumericMetric {
			numeric = append(numeric, m.Name())
		} else {
			classOrProb = append(classOrProb, m.Name())
		}
	}
	if len(numeric) > 0 && len(classOrProb) > 0 {
		return nil, fmt.Errorf("%w: numeric metrics [%s] cannot combine with class/probability metrics [%s]",
			ErrIncompatibleKinds, strings.Join(numeric, ", "), strings.Join(classOrProb, ", "))
	}

	kind := NumericSet
	if len(classOrProb) > 0 {
		kind = ClassOrProbSet
	}
	return &Set{metrics: append([]*Metric(nil), metrics...), kind: kind}, nil
}

// Kind returns the combined kind derived at build time.
func (s *Set) Kind() SetKind { return s.kind }

// Len returns the number of metrics in the set.
func (s *Set) Len() int { return len(s.metrics) }

// Metrics returns the set members in insertion order.
func (s *Set) Metrics() []*Metric { return append([]*Metric(nil), s.metrics...) }

// NumericEvaluator is the dispatcher shape for all-numeric sets: truth and
// estimate columns plus any extra numeric columns individual metrics consume.
type NumericEvaluator func(data *schema.Frame, truth, estimate string, extras []string, opts ...EvalOption) ([]schema.MetricRow, error)

// ClassEvaluator is the dispatcher shape for class/probability sets: score
// columns feed probability metrics while estimate names the hard-label
// column, passed separately so it can never be confused with a score.
type ClassEvaluator func(data *schema.Frame, truth string, scores []string, estimate string, opts ...EvalOption) ([]schema.MetricRow, error)

// NumericEvaluator synthesizes the dispatcher for an all-numeric set.
func (s *Set) NumericEvaluator() (NumericEvaluator, error) {
	if s.kind != NumericSet {
		return nil, fmt.Errorf("%w: set contains class/probability metrics; use ClassEvaluator", ErrIncompatibleKinds)
	}
	return s.evaluateNumeric, nil
}

// ClassEvaluator synthesizes the dispatcher for a class/probability set.
func (s *Set) ClassEvaluator() (ClassEvaluator, error) {
	if s.kind != ClassOrProbSet {
		return nil, fmt.Errorf("%w: set contains only numeric metrics; use NumericEvaluator", ErrIncompatibleKinds)
	}
	return s.evaluateClass, nil
}

// evaluateNumeric runs every numeric metric per partition. Columns are
// resolved and type-checked once here, never per partition.
func (s *Set) evaluateNumeric(data *schema.Frame, truth, estimate string, extras []string, opts ...EvalOption) ([]schema.MetricRow, error) {
	o := newEvalOptions(opts)

	truthCol, err := numericColumn(data, truth)
	if err != nil {
		return nil, err
	}
	estCol, err := numericColumn(data, estimate)
	if err != nil {
		return nil, err
	}
	extraCols := make([]*schema.Series, len(extras))
	for i, name := range extras {
		if extraCols[i], err = numericColumn(data, name); err != nil {
			return nil, err
		}
	}

	parts, err := Partitions(data)
	if err != nil {
		return nil, err
	}

	var out []schema.MetricRow
	for _, p := range parts {
		rows, err := filterNumericRows(p.Rows, truthCol, estCol, extraCols, o.naRM)
		if err != nil {
			return nil, err
		}
		t := gatherFloats(truthCol, rows)
		e := gatherFloats(estCol, rows)
		ex := make([][]float64, len(extraCols))
		for i, c := range extraCols {
			ex[i] = gatherFloats(c, rows)
		}
		for _, m := range s.metrics {
			value, err := m.numericFn(t, e, ex...)
			if err != nil {
				return nil, err
			}
			out = append(out, schema.MetricRow{
				Groups:    p.Keys,
				Metric:    m.Name(),
				Estimator: "standard",
				Value:     value,
				Direction: m.Direction(),
				Kind:      m.Kind(),
			})
		}
	}
	return out, nil
}

// evaluateClass runs every class and probability metric per partition.
// Class metrics see only truth and estimate labels; probability metrics see
// only truth and the score columns.
func (s *Set) evaluateClass(data *schema.Frame, truth string, scores []string, estimate string, opts ...EvalOption) ([]schema.MetricRow, error) {
	o := newEvalOptions(opts)

	truthCol, err := labelColumn(data, truth)
	if err != nil {
		return nil, err
	}
	estCol, err := labelColumn(data, estimate)
	if err != nil {
		return nil, err
	}
	scoreCols := make([]*schema.Series, len(scores))
	for i, name := range scores {
		if scoreCols[i], err = numericColumn(data, name); err != nil {
			return nil, err
		}
	}

	levels := truthCol.Levels
	if len(levels) < 2 {
		return nil, fmt.Errorf("%w: truth column %q has %d levels, need at least 2", ErrMalformedInput, truth, len(levels))
	}
	if s.hasProbMetrics() {
		if err := checkScoreShape(len(scores), len(levels)); err != nil {
			return nil, err
		}
	}
	event, err := resolveEvent(levels, o.eventLevel)
	if err != nil {
		return nil, err
	}
	estimator := "binary"
	if len(levels) > 2 {
		estimator = "multiclass"
	}

	parts, err := Partitions(data)
	if err != nil {
		return nil, err
	}

	var out []schema.MetricRow
	for _, p := range parts {
		rows, err := filterLabelRows(p.Rows, truthCol, estCol, scoreCols, o.naRM)
		if err != nil {
			return nil, err
		}
		t := gatherLabels(truthCol, rows)
		e := gatherLabels(estCol, rows)
		sc := make([][]float64, len(scoreCols))
		for i, c := range scoreCols {
			sc[i] = gatherFloats(c, rows)
		}
		for _, m := range s.metrics {
			var value float64
			switch m.Kind() {
			case schema.ClassMetric:
				value, err = m.classFn(t, e, event)
			case schema.ClassProbMetric:
				value, err = m.probFn(t, levels, sc, event)
			default:
				err = fmt.Errorf("%w: %q in class/probability set", ErrIncompatibleKinds, m.Name())
			}
			if err != nil {
				return nil, err
			}
			out = append(out, schema.MetricRow{
				Groups:    p.Keys,
				Metric:    m.Name(),
				Estimator: estimator,
				Value:     value,
				Direction: m.Direction(),
				Kind:      m.Kind(),
			})
		}
	}
	return out, nil
}

// hasProbMetrics reports whether any member consumes score columns.
func (s *Set) hasProbMetrics() bool {
	for _, m := range s.metrics {
		if m.Kind() == schema.ClassProbMetric {
			return true
		}
	}
	return false
}

// checkScoreShape validates the score column count against the level count:
// one column for the binary case, or one column per level.
func checkScoreShape(nScores, nLevels int) error {
	if nScores == 1 && nLevels == 2 {
		return nil
	}
	if nScores == nLevels {
		return nil
	}
	return fmt.Errorf("%w: %d score columns for %d truth levels", ErrMalformedInput, nScores, nLevels)
}

// resolveEvent maps the event polarity to a concrete truth level.
func resolveEvent(levels []string, level schema.EventLevel) (string, error) {
	switch level {
	case schema.FirstLevel:
		return levels[0], nil
	case schema.SecondLevel:
		return levels[1], nil
	default:
		return "", fmt.Errorf("%w: event level %q", ErrMalformedInput, level)
	}
}

// numericColumn resolves a column and requires it to be numeric.
func numericColumn(data *schema.Frame, name string) (*schema.Series, error) {
	col, ok := data.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", ErrMalformedInput, name)
	}
	if col.Kind != schema.NumericSeries {
		return nil, fmt.Errorf("%w: column %q is not numeric", ErrMalformedInput, name)
	}
	return col, nil
}

// labelColumn resolves a column and requires it to be a label column.
func labelColumn(data *schema.Frame, name string) (*schema.Series, error) {
	col, ok := data.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", ErrMalformedInput, name)
	}
	if col.Kind != schema.LabelSeries {
		return nil, fmt.Errorf("%w: column %q is not a label column", ErrMalformedInput, name)
	}
	return col, nil
}

// filterNumericRows drops rows with missing values when naRM is set, or
// fails on the first missing value otherwise.
func filterNumericRows(rows []int, truth, estimate *schema.Series, extras []*schema.Series, naRM bool) ([]int, error) {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		missing := truth.Missing(r) || estimate.Missing(r)
		for _, c := range extras {
			missing = missing || c.Missing(r)
		}
		if missing {
			if !naRM {
				return nil, fmt.Errorf("%w: row %d has a missing truth or estimate value", ErrMissingValue, r)
			}
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// filterLabelRows is the label/score counterpart of filterNumericRows.
func filterLabelRows(rows []int, truth, estimate *schema.Series, scores []*schema.Series, naRM bool) ([]int, error) {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		missing := truth.Missing(r) || estimate.Missing(r)
		for _, c := range scores {
			missing = missing || c.Missing(r)
		}
		if missing {
			if !naRM {
				return nil, fmt.Errorf("%w: row %d has a missing truth or estimate value", ErrMissingValue, r)
			}
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// gatherFloats copies the values at the given rows.
func gatherFloats(s *schema.Series, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = s.Floats[r]
	}
	return out
}

// gatherLabels copies the labels at the given rows.
func gatherLabels(s *schema.Series, rows []int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = s.Labels[r]
	}
	return out
}
