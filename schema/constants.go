package schema

// Custom string types for type safety.
type (
	// MetricKind classifies what a metric function consumes.
	MetricKind string

	// Direction is the declared optimization sense of a metric. It is
	// metadata for downstream tooling and never consulted by the metric
	// computation itself.
	Direction string

	// EventLevel selects which truth level is the event of interest.
	EventLevel string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for result storage.
	DatabaseBackend string
)

// All metric kinds supported.
const (
	NumericMetric   MetricKind = "numeric"
	ClassMetric     MetricKind = "class"
	ClassProbMetric MetricKind = "class_prob"
)

// All optimization directions supported.
const (
	Maximize Direction = "maximize"
	Minimize Direction = "minimize"
	Zero     Direction = "zero"
)

// All event levels supported.
const (
	FirstLevel  EventLevel = "first" // default
	SecondLevel EventLevel = "second"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDirections lists all valid metric directions.
var ValidDirections = map[Direction]struct{}{
	Maximize: {},
	Minimize: {},
	Zero:     {},
}

// ValidEventLevels lists all valid event levels.
var ValidEventLevels = map[EventLevel]struct{}{
	FirstLevel:  {},
	SecondLevel: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
