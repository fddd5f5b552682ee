package core

import (
	"fmt"
	"sort"

	"github.com/huangsam/modelmeter/schema"
)

// GainCurve computes cumulative gain curves from ranked probability scores.
// One score column with a two-level truth column yields a binary curve; K
// score columns paired with K truth levels yield one-vs-all curves tagged by
// level and concatenated in level order. Grouped frames produce one curve
// block per partition, in first-seen partition order.
//
// In the binary case the score column always carries the probability of the
// first truth level. Selecting the second level via WithEventLevel ranks that
// same column ascending; do not pass a P(second level) column, or rows will
// be mis-ranked.
func GainCurve(data *schema.Frame, truth string, scores []string, opts ...EvalOption) ([]schema.GainPoint, error) {
	o := newEvalOptions(opts)

	truthCol, err := labelColumn(data, truth)
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
	if err := checkScoreShape(len(scores), len(levels)); err != nil {
		return nil, err
	}

	return groupApply(data, func(part *schema.Frame, keys []schema.GroupValue) ([]schema.GainPoint, error) {
		pTruth, _ := part.Column(truth)

		if len(scores) == 1 {
			// Binary: one score column carrying the probability of the first
			// level. Selecting the second level flips ranking and counting.
			event, err := resolveEvent(levels, o.eventLevel)
			if err != nil {
				return nil, err
			}
			pScore, _ := part.Column(scores[0])
			flip := o.eventLevel == schema.SecondLevel
			points, err := gainScan(pTruth, pScore, event, flip, o.naRM)
			if err != nil {
				return nil, err
			}
			stampGroups(points, keys)
			return points, nil
		}

		// Multiclass: K independent one-vs-all passes, one per level, each
		// ranked by its own score column. No normalization across levels.
		var out []schema.GainPoint
		for k, level := range levels {
			pScore, _ := part.Column(scores[k])
			points, err := gainScan(pTruth, pScore, level, false, o.naRM)
			if err != nil {
				return nil, err
			}
			for i := range points {
				points[i].Level = level
			}
			stampGroups(points, keys)
			out = append(out, points...)
		}
		return out, nil
	})
}

// LiftCurve computes lift curves as a transform over the gain computation.
// It never re-ranks: lift is percent found divided by percent tested for the
// matching gain point.
func LiftCurve(data *schema.Frame, truth string, scores []string, opts ...EvalOption) ([]schema.LiftPoint, error) {
	gain, err := GainCurve(data, truth, scores, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]schema.LiftPoint, len(gain))
	for i, g := range gain {
		out[i] = schema.LiftPoint{
			Groups:        g.Groups,
			Level:         g.Level,
			SampleIndex:   g.SampleIndex,
			RankIndex:     g.RankIndex,
			PercentTested: g.PercentTested,
			Lift:          g.PercentFound / g.PercentTested,
		}
	}
	return out, nil
}

// gainScan is the single sequential pass at the heart of the curve engine:
// filter, rank, then accumulate. flip ranks ascending instead of descending,
// for the binary case where the score column carries the probability of the
// other level.
func gainScan(truth, score *schema.Series, event string, flip, naRM bool) ([]schema.GainPoint, error) {
	rows := make([]int, 0, truth.Len())
	for r := range truth.Len() {
		if truth.Missing(r) || score.Missing(r) {
			if !naRM {
				return nil, fmt.Errorf("%w: row %d has a missing truth or estimate value", ErrMissingValue, r)
			}
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows left after removing missing values", ErrMalformedInput)
	}

	// Stable sort so that reordering tied rows cannot change cumulative
	// values at the emitted (collapsed) points.
	sort.SliceStable(rows, func(i, j int) bool {
		if flip {
			return score.Floats[rows[i]] < score.Floats[rows[j]]
		}
		return score.Floats[rows[i]] > score.Floats[rows[j]]
	})

	total := 0
	for _, r := range rows {
		if truth.Labels[r] == event {
			total++
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: truth column contains no %q events", ErrNoPositiveEvents, event)
	}

	n := len(rows)
	points := make([]schema.GainPoint, 0, n)
	found := 0
	rank := 0
	for i, r := range rows {
		if i == 0 || score.Floats[r] != score.Floats[rows[i-1]] {
			rank++
		}
		if truth.Labels[r] == event {
			found++
		}
		// Rows sharing a score collapse into the last row of the tie block,
		// so no point implies the model could separate tied scores.
		if i+1 < n && score.Floats[rows[i+1]] == score.Floats[r] {
			continue
		}
		points = append(points, schema.GainPoint{
			SampleIndex:   i + 1,
			RankIndex:     rank,
			PercentTested: float64(i+1) / float64(n) * 100,
			PercentFound:  float64(found) / float64(total) * 100,
		})
	}
	return points, nil
}

// stampGroups attaches a partition's key tuple to every point.
func stampGroups(points []schema.GainPoint, keys []schema.GroupValue) {
	if len(keys) == 0 {
		return
	}
	for i := range points {
		points[i].Groups = keys
	}
}
