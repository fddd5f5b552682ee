package core

import "github.com/huangsam/modelmeter/schema"

// evalOptions holds the per-call knobs shared by set evaluation and curve
// computation. Missing-value removal defaults to on; the first truth level is
// the event of interest by default.
type evalOptions struct {
	naRM       bool
	eventLevel schema.EventLevel
}

// EvalOption configures one evaluation or curve call.
type EvalOption func(*evalOptions)

// WithKeepMissing disables missing-value removal. Any missing truth or
// estimate value then fails the computation with ErrMissingValue.
func WithKeepMissing() EvalOption {
	return func(o *evalOptions) { o.naRM = false }
}

// WithEventLevel selects which truth level is the event of interest for
// class, probability and curve computations.
func WithEventLevel(level schema.EventLevel) EvalOption {
	return func(o *evalOptions) { o.eventLevel = level }
}

// newEvalOptions applies opts over the defaults.
func newEvalOptions(opts []EvalOption) evalOptions {
	o := evalOptions{naRM: true, eventLevel: schema.FirstLevel}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
