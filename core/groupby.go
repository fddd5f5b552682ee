package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/modelmeter/schema"
)

// Partition is one maximal subset of rows sharing a grouping-key tuple.
// Rows keep their original relative order.
type Partition struct {
	Keys []schema.GroupValue
	Rows []int
}

// Partitions splits a frame by its grouping columns. Key tuples appear in
// order of first appearance. An ungrouped frame yields a single partition
// with no keys. Rows where any grouping value is missing form their own
// partitions keyed by the empty string, like any other value.
func Partitions(f *schema.Frame) ([]Partition, error) {
	groups := f.Groups()
	if len(groups) == 0 {
		rows := make([]int, f.NumRows())
		for i := range rows {
			rows[i] = i
		}
		return []Partition{{Rows: rows}}, nil
	}

	cols := make([]*schema.Series, len(groups))
	for i, g := range groups {
		s, ok := f.Column(g)
		if !ok {
			return nil, fmt.Errorf("%w: unknown grouping column %q", ErrMalformedInput, g)
		}
		cols[i] = s
	}

	var parts []Partition
	index := make(map[string]int)
	var sb strings.Builder
	for r := range f.NumRows() {
		sb.Reset()
		values := make([]string, len(cols))
		for i, s := range cols {
			values[i] = s.ValueString(r)
			sb.WriteString(values[i])
			sb.WriteByte('\x1f') // unit separator avoids key collisions
		}
		key := sb.String()
		p, ok := index[key]
		if !ok {
			keys := make([]schema.GroupValue, len(groups))
			for i, g := range groups {
				keys[i] = schema.GroupValue{Column: g, Value: values[i]}
			}
			p = len(parts)
			index[key] = p
			parts = append(parts, Partition{Keys: keys})
		}
		parts[p].Rows = append(parts[p].Rows, r)
	}
	return parts, nil
}

// groupApply runs fn once per partition and concatenates the outputs in
// partition order. fn receives an ungrouped single-partition frame and the
// partition's key tuple; it is responsible for stamping the keys onto its
// output rows. Partitions are independent, so this loop could run them
// concurrently as long as output order is restored afterward.
func groupApply[T any](f *schema.Frame, fn func(part *schema.Frame, keys []schema.GroupValue) ([]T, error)) ([]T, error) {
	parts, err := Partitions(f)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, p := range parts {
		rows, err := fn(f.Subset(p.Rows), p.Keys)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}
