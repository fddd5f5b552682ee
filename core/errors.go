package core

import "errors"

// Sentinel errors for metric construction and evaluation. All of them mark
// programming or input errors that the caller must fix; none are transient.
var (
	// ErrInvalidMetric means a nil function or empty name was supplied to a
	// metric constructor.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrInvalidDirection means the direction is not maximize, minimize or zero.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrIncompatibleKinds means numeric metrics were combined with class or
	// class-probability metrics in one set.
	ErrIncompatibleKinds = errors.New("incompatible metric kinds")

	// ErrEmptySet means a metric set was built with no members.
	ErrEmptySet = errors.New("empty metric set")

	// ErrMissingValue means a missing truth or estimate value was found while
	// missing-value removal was disabled.
	ErrMissingValue = errors.New("missing value")

	// ErrNoPositiveEvents means a curve computation saw zero true events, so
	// percent found and lift are undefined.
	ErrNoPositiveEvents = errors.New("no positive events")

	// ErrMalformedInput means a column is missing, has the wrong type, or the
	// truth column has too few levels for the requested computation.
	ErrMalformedInput = errors.New("malformed input")
)
