package schema

// GroupValue is one grouping column and its value for a partition. Result
// rows carry the full ordered key tuple of the partition they came from.
type GroupValue struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// MetricRow is one computed metric value for one partition.
type MetricRow struct {
	Groups    []GroupValue `json:"groups,omitempty"`
	Metric    string       `json:"metric"`
	Estimator string       `json:"estimator"`
	Value     float64      `json:"value"`
	Direction Direction    `json:"direction"`
	Kind      MetricKind   `json:"kind"`
}

// GainPoint is one row of a cumulative gain curve. SampleIndex is the 1-based
// position after ranking (the last index of a tie block); RankIndex collapses
// rows with identical scores to the same value.
type GainPoint struct {
	Groups        []GroupValue `json:"groups,omitempty"`
	Level         string       `json:"level,omitempty"`
	SampleIndex   int          `json:"sample_index"`
	RankIndex     int          `json:"rank_index"`
	PercentTested float64      `json:"percent_tested"`
	PercentFound  float64      `json:"percent_found"`
}

// LiftPoint is one row of a lift curve, derived from the gain curve by
// dividing percent found by percent tested.
type LiftPoint struct {
	Groups        []GroupValue `json:"groups,omitempty"`
	Level         string       `json:"level,omitempty"`
	SampleIndex   int          `json:"sample_index"`
	RankIndex     int          `json:"rank_index"`
	PercentTested float64      `json:"percent_tested"`
	Lift          float64      `json:"lift"`
}
