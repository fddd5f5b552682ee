package core

import "fmt"

// accuracy is the fraction of rows where the predicted label matches truth.
// The event level plays no role.
func accuracy(truth, estimate []string, _ string) (float64, error) {
	if err := checkLabelPairs(truth, estimate); err != nil {
		return 0, err
	}
	matches := 0
	for i := range truth {
		if truth[i] == estimate[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(truth)), nil
}

// precision is the fraction of predicted events that are true events.
func precision(truth, estimate []string, event string) (float64, error) {
	if err := checkLabelPairs(truth, estimate); err != nil {
		return 0, err
	}
	tp, fp := 0, 0
	for i := range truth {
		if estimate[i] != event {
			continue
		}
		if truth[i] == event {
			tp++
		} else {
			fp++
		}
	}
	if tp+fp == 0 {
		return 0, fmt.Errorf("%w: no rows predicted as %q, precision is undefined", ErrMalformedInput, event)
	}
	return float64(tp) / float64(tp+fp), nil
}

// recall is the fraction of true events that were predicted as events.
func recall(truth, estimate []string, event string) (float64, error) {
	if err := checkLabelPairs(truth, estimate); err != nil {
		return 0, err
	}
	tp, fn := 0, 0
	for i := range truth {
		if truth[i] != event {
			continue
		}
		if estimate[i] == event {
			tp++
		} else {
			fn++
		}
	}
	if tp+fn == 0 {
		return 0, fmt.Errorf("%w: truth column contains no %q events", ErrNoPositiveEvents, event)
	}
	return float64(tp) / float64(tp+fn), nil
}

// checkLabelPairs guards the public class functions against direct misuse.
func checkLabelPairs(truth, estimate []string) error {
	if len(truth) == 0 {
		return fmt.Errorf("%w: no rows to evaluate", ErrMalformedInput)
	}
	if len(truth) != len(estimate) {
		return fmt.Errorf("%w: truth has %d rows, estimate has %d", ErrMalformedInput, len(truth), len(estimate))
	}
	return nil
}
