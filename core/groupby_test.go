package core

import (
	"testing"

	"github.com/huangsam/modelmeter/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPartitionsUngrouped tests the single-partition fallback.
func TestPartitionsUngrouped(t *testing.T) {
	f, err := schema.NewFrame(schema.NewNumericSeries("a", []float64{1, 2, 3}))
	require.NoError(t, err)

	parts, err := Partitions(f)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Empty(t, parts[0].Keys)
	assert.Equal(t, []int{0, 1, 2}, parts[0].Rows)
}

// TestPartitionsGrouped tests first-seen key order and row stability.
func TestPartitionsGrouped(t *testing.T) {
	f, err := schema.NewFrame(
		schema.NewNumericSeries("a", []float64{1, 2, 3, 4, 5}),
		schema.NewLabelSeries("g", []string{"west", "east", "west", "east", "west"}),
	)
	require.NoError(t, err)
	grouped, err := f.GroupBy("g")
	require.NoError(t, err)

	parts, err := Partitions(grouped)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, []schema.GroupValue{{Column: "g", Value: "west"}}, parts[0].Keys)
	assert.Equal(t, []int{0, 2, 4}, parts[0].Rows)
	assert.Equal(t, []schema.GroupValue{{Column: "g", Value: "east"}}, parts[1].Keys)
	assert.Equal(t, []int{1, 3}, parts[1].Rows)
}

// TestPartitionsMultipleColumns tests composite key tuples.
func TestPartitionsMultipleColumns(t *testing.T) {
	f, err := schema.NewFrame(
		schema.NewNumericSeries("a", []float64{1, 2, 3, 4}),
		schema.NewLabelSeries("g1", []string{"x", "x", "y", "x"}),
		schema.NewLabelSeries("g2", []string{"1", "2", "1", "1"}),
	)
	require.NoError(t, err)
	grouped, err := f.GroupBy("g1", "g2")
	require.NoError(t, err)

	parts, err := Partitions(grouped)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, []int{0, 3}, parts[0].Rows)
	assert.Equal(t, []schema.GroupValue{{Column: "g1", Value: "x"}, {Column: "g2", Value: "2"}}, parts[1].Keys)
}

// TestPartitionsMissingGroupValue tests that missing grouping values form
// their own partition instead of failing.
func TestPartitionsMissingGroupValue(t *testing.T) {
	f, err := schema.NewFrame(
		schema.NewNumericSeries("a", []float64{1, 2, 3}),
		schema.NewLabelSeries("g", []string{"x", "", "x"}),
	)
	require.NoError(t, err)
	grouped, err := f.GroupBy("g")
	require.NoError(t, err)

	parts, err := Partitions(grouped)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, []int{0, 2}, parts[0].Rows)
	assert.Equal(t, "", parts[1].Keys[0].Value)
	assert.Equal(t, []int{1}, parts[1].Rows)
}

// TestGroupApply tests output concatenation in partition order.
func TestGroupApply(t *testing.T) {
	f, err := schema.NewFrame(
		schema.NewNumericSeries("a", []float64{1, 2, 3}),
		schema.NewLabelSeries("g", []string{"x", "y", "x"}),
	)
	require.NoError(t, err)
	grouped, err := f.GroupBy("g")
	require.NoError(t, err)

	out, err := groupApply(grouped, func(part *schema.Frame, keys []schema.GroupValue) ([]string, error) {
		col, _ := part.Column("a")
		res := make([]string, part.NumRows())
		for i := range res {
			res[i] = keys[0].Value + ":" + col.ValueString(i)
		}
		return res, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x:1", "x:3", "y:2"}, out)
}
