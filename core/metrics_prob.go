package core

import (
	"fmt"
	"math"

	"github.com/huangsam/modelmeter/schema"
)

// probEps keeps log loss finite when a probability hits 0 or 1 exactly.
const probEps = 1e-15

// gainCapture summarizes a gain curve as the area captured between the curve
// and the random baseline, scaled by the same area for a perfect model. It
// delegates the ranking pass to the curve engine. Multiclass inputs average
// the one-vs-all captures across levels.
func gainCapture(truth []string, levels []string, scores [][]float64, event string) (float64, error) {
	if len(scores) == 1 {
		flip := len(levels) > 1 && event == levels[1]
		return gainCaptureBinary(truth, levels, scores[0], event, flip)
	}
	var sum float64
	for k, level := range levels {
		c, err := gainCaptureBinary(truth, levels, scores[k], level, false)
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum / float64(len(levels)), nil
}

// gainCaptureBinary runs one binary gain pass and integrates it.
func gainCaptureBinary(truth []string, levels []string, score []float64, event string, flip bool) (float64, error) {
	truthCol := schema.NewLabelSeriesWithLevels("truth", truth, nil, levels)
	scoreCol := schema.NewNumericSeries("score", score)
	points, err := gainScan(truthCol, scoreCol, event, flip, true)
	if err != nil {
		return 0, err
	}

	events := 0
	for _, t := range truth {
		if t == event {
			events++
		}
	}
	rate := float64(events) / float64(len(truth))
	if rate == 1 {
		return 0, fmt.Errorf("%w: every row is an event, gain capture is undefined", ErrMalformedInput)
	}

	// Trapezoidal area between the curve and the y=x baseline, in fraction
	// space, anchored at the origin.
	var area, prevX, prevY float64
	for _, p := range points {
		x := p.PercentTested / 100
		y := p.PercentFound / 100
		area += ((y - x) + (prevY - prevX)) / 2 * (x - prevX)
		prevX, prevY = x, y
	}
	perfect := (1 - rate) / 2
	return area / perfect, nil
}

// logLoss is the mean negative log probability assigned to the true class.
// With a single score column the column is the probability of the first
// truth level; the complement covers the second.
func logLoss(truth []string, levels []string, scores [][]float64, _ string) (float64, error) {
	if len(truth) == 0 {
		return 0, fmt.Errorf("%w: no rows to evaluate", ErrMalformedInput)
	}
	index := make(map[string]int, len(levels))
	for k, l := range levels {
		index[l] = k
	}

	var sum float64
	for i, t := range truth {
		k, ok := index[t]
		if !ok {
			return 0, fmt.Errorf("%w: truth value %q is not a known level", ErrMalformedInput, t)
		}
		var p float64
		if len(scores) == 1 {
			p = scores[0][i]
			if k == 1 {
				p = 1 - p
			}
		} else {
			p = scores[k][i]
		}
		p = math.Min(math.Max(p, probEps), 1-probEps)
		sum -= math.Log(p)
	}
	return sum / float64(len(truth)), nil
}
