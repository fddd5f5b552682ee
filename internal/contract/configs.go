package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/modelmeter/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 10000
	DefaultPrecision   = 3
	MaxPrecision       = 6
)

// Config holds the validated runtime configuration for an evaluation.
// Fields that are set directly by simple flags remain the same (e.g.,
// Precision). Fields that require parsing (comma-separated column lists) are
// set by ProcessAndValidate after flags are read.
type Config struct {
	DataPath     string                 // Path to the input CSV (set by positional arg)
	TruthColumn  string                 // Ground-truth column name
	EstimateCol  string                 // Hard estimate column (numeric or label depending on command)
	ScoreColumns []string               // Probability score columns (FINAL processed list)
	GroupColumns []string               // Grouping columns (FINAL processed list)
	MetricNames  []string               // Built-in metric names to evaluate (FINAL processed list)
	EventLevel   schema.EventLevel      // Which truth level is the event of interest
	KeepMissing  bool                   // If true, missing values are an error instead of dropped
	Output       schema.OutputMode      // Output format
	OutputFile   string                 // Optional path to write output to
	Precision    int                    // Decimal precision for numeric columns
	ResultLimit  int                    // Maximum number of rows to display
	Width        int                    // Absolute terminal width override (0 = detect)
	StoreBackend schema.DatabaseBackend // Result store backend
	StoreConnect string                 // Result store connection string
	Color        bool                   // Colorize table output
}

// ConfigRawInput holds the raw inputs from flags that require parsing or
// validation. These fields are bound to Cobra's flags and unmarshalled by
// Viper.
type ConfigRawInput struct {
	DataPathStr     string `mapstructure:"-"`
	Truth           string `mapstructure:"truth"`
	Estimate        string `mapstructure:"estimate"`
	ScoresStr       string `mapstructure:"scores"`
	GroupByStr      string `mapstructure:"group-by"`
	MetricsStr      string `mapstructure:"metrics"`
	EventLevel      string `mapstructure:"event-level"`
	KeepNA          bool   `mapstructure:"keep-na"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Precision       int    `mapstructure:"precision"`
	ResultLimit     int    `mapstructure:"limit"`
	Width           int    `mapstructure:"width"`
	StoreBackend    string `mapstructure:"store-backend"`
	StoreConnect    string `mapstructure:"store-connect"`
	Color           string `mapstructure:"color"`
}

// Clone returns a shallow copy of the config with the column slices copied,
// so per-request overrides never mutate the shared base config.
func (cfg *Config) Clone() *Config {
	out := *cfg
	out.ScoreColumns = append([]string(nil), cfg.ScoreColumns...)
	out.GroupColumns = append([]string(nil), cfg.GroupColumns...)
	out.MetricNames = append([]string(nil), cfg.MetricNames...)
	return &out
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	cfg.Width = input.Width

	// --- 3. Event Level Validation ---
	cfg.EventLevel = schema.EventLevel(strings.ToLower(input.EventLevel))
	if cfg.EventLevel == "" {
		cfg.EventLevel = schema.FirstLevel
	}
	if _, ok := schema.ValidEventLevels[cfg.EventLevel]; !ok {
		return fmt.Errorf("invalid event level '%s'. must be first or second", input.EventLevel)
	}
	cfg.KeepMissing = input.KeepNA

	// --- 4. Column Lists ---
	cfg.TruthColumn = strings.TrimSpace(input.Truth)
	cfg.EstimateCol = strings.TrimSpace(input.Estimate)
	cfg.ScoreColumns = SplitColumns(input.ScoresStr)
	cfg.GroupColumns = SplitColumns(input.GroupByStr)
	cfg.MetricNames = SplitColumns(input.MetricsStr)

	// --- 5. Store Backend Validation ---
	backend := strings.ToLower(input.StoreBackend)
	if backend == "" {
		backend = string(schema.NoneBackend)
	}
	cfg.StoreBackend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect

	// --- 6. Color Handling ---
	cfg.Color = strings.ToLower(input.Color) != "no"

	cfg.DataPath = input.DataPathStr
	return nil
}

// RequireEvaluationColumns checks the column flags every data-driven command
// needs. Curve commands pass needEstimate=false since they consume scores
// only.
func (cfg *Config) RequireEvaluationColumns(needEstimate bool) error {
	if cfg.DataPath == "" {
		return fmt.Errorf("a data file path is required")
	}
	if cfg.TruthColumn == "" {
		return fmt.Errorf("--truth is required")
	}
	if needEstimate && cfg.EstimateCol == "" {
		return fmt.Errorf("--estimate is required")
	}
	return nil
}

// ValidateDatabaseConnectionString checks connection strings by backend.
// SQLite works with an empty string (default file path) and none needs
// nothing at all.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-connect is required when using %s backend", backend)
		}
	default:
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	return nil
}

// SplitColumns parses a comma-separated column list, dropping empty entries.
func SplitColumns(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
