package core

import (
	"fmt"
	"math"
)

// rmse is the root mean squared error.
func rmse(truth, estimate []float64, _ ...[]float64) (float64, error) {
	if err := checkPairs(truth, estimate); err != nil {
		return 0, err
	}
	var sum float64
	for i := range truth {
		d := truth[i] - estimate[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(truth))), nil
}

// mae is the mean absolute error.
func mae(truth, estimate []float64, _ ...[]float64) (float64, error) {
	if err := checkPairs(truth, estimate); err != nil {
		return 0, err
	}
	var sum float64
	for i := range truth {
		sum += math.Abs(truth[i] - estimate[i])
	}
	return sum / float64(len(truth)), nil
}

// rsq is the squared Pearson correlation between truth and estimate.
func rsq(truth, estimate []float64, _ ...[]float64) (float64, error) {
	if err := checkPairs(truth, estimate); err != nil {
		return 0, err
	}
	n := float64(len(truth))
	var mt, me float64
	for i := range truth {
		mt += truth[i]
		me += estimate[i]
	}
	mt /= n
	me /= n
	var cov, vt, ve float64
	for i := range truth {
		dt := truth[i] - mt
		de := estimate[i] - me
		cov += dt * de
		vt += dt * dt
		ve += de * de
	}
	if vt == 0 || ve == 0 {
		return 0, fmt.Errorf("%w: variance of truth or estimate is zero", ErrMalformedInput)
	}
	r := cov / math.Sqrt(vt*ve)
	return r * r, nil
}

// mape is the mean absolute percentage error.
func mape(truth, estimate []float64, _ ...[]float64) (float64, error) {
	if err := checkPairs(truth, estimate); err != nil {
		return 0, err
	}
	var sum float64
	for i := range truth {
		if truth[i] == 0 {
			return 0, fmt.Errorf("%w: truth contains zero, percentage error is undefined", ErrMalformedInput)
		}
		sum += math.Abs((truth[i] - estimate[i]) / truth[i])
	}
	return sum / float64(len(truth)) * 100, nil
}

// checkPairs guards the public numeric functions against direct misuse; the
// dispatcher already guarantees aligned inputs.
func checkPairs(truth, estimate []float64) error {
	if len(truth) == 0 {
		return fmt.Errorf("%w: no rows to evaluate", ErrMalformedInput)
	}
	if len(truth) != len(estimate) {
		return fmt.Errorf("%w: truth has %d rows, estimate has %d", ErrMalformedInput, len(truth), len(estimate))
	}
	return nil
}
