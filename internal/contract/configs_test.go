package contract

import (
	"testing"

	"github.com/huangsam/modelmeter/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		DataPathStr: "data.csv",
		Truth:       "actual",
		Estimate:    "predicted",
		MetricsStr:  "rmse,mae",
		EventLevel:  "first",
		Output:      "text",
		Precision:   DefaultPrecision,
		ResultLimit: DefaultResultLimit,
		Color:       "yes",
	}
}

// TestProcessAndValidate tests the happy path and parsed field population.
func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.ScoresStr = "p_a, p_b"
	input.GroupByStr = "region"

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "data.csv", cfg.DataPath)
	assert.Equal(t, "actual", cfg.TruthColumn)
	assert.Equal(t, []string{"rmse", "mae"}, cfg.MetricNames)
	assert.Equal(t, []string{"p_a", "p_b"}, cfg.ScoreColumns)
	assert.Equal(t, []string{"region"}, cfg.GroupColumns)
	assert.Equal(t, schema.FirstLevel, cfg.EventLevel)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.StoreBackend)
	assert.True(t, cfg.Color)
}

// TestProcessAndValidateErrors tests the rejection matrix.
func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero limit", func(i *ConfigRawInput) { i.ResultLimit = 0 }},
		{"excessive limit", func(i *ConfigRawInput) { i.ResultLimit = MaxResultLimit + 1 }},
		{"zero precision", func(i *ConfigRawInput) { i.Precision = 0 }},
		{"excessive precision", func(i *ConfigRawInput) { i.Precision = MaxPrecision + 1 }},
		{"bad output", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"parquet without file", func(i *ConfigRawInput) { i.Output = "parquet" }},
		{"bad event level", func(i *ConfigRawInput) { i.EventLevel = "third" }},
		{"bad backend", func(i *ConfigRawInput) { i.StoreBackend = "oracle" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestProcessAndValidateDefaults tests defaulted enum fields.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.EventLevel = ""
	input.StoreBackend = ""
	input.Color = "no"

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.FirstLevel, cfg.EventLevel)
	assert.Equal(t, schema.NoneBackend, cfg.StoreBackend)
	assert.False(t, cfg.Color)
}

// TestRequireEvaluationColumns tests the per-command column checks.
func TestRequireEvaluationColumns(t *testing.T) {
	cfg := &Config{DataPath: "data.csv", TruthColumn: "actual", EstimateCol: "predicted"}
	assert.NoError(t, cfg.RequireEvaluationColumns(true))

	t.Run("missing data path", func(t *testing.T) {
		c := *cfg
		c.DataPath = ""
		assert.Error(t, c.RequireEvaluationColumns(true))
	})

	t.Run("missing truth", func(t *testing.T) {
		c := *cfg
		c.TruthColumn = ""
		assert.Error(t, c.RequireEvaluationColumns(false))
	})

	t.Run("estimate optional for curves", func(t *testing.T) {
		c := *cfg
		c.EstimateCol = ""
		assert.NoError(t, c.RequireEvaluationColumns(false))
		assert.Error(t, c.RequireEvaluationColumns(true))
	})
}

// TestSplitColumns tests comma list parsing.
func TestSplitColumns(t *testing.T) {
	assert.Nil(t, SplitColumns(""))
	assert.Equal(t, []string{"a"}, SplitColumns("a"))
	assert.Equal(t, []string{"a", "b"}, SplitColumns(" a , b ,"))
}

// TestValidateDatabaseConnectionString tests per-backend rules.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/db"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "not-a-dsn"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "postgres://u:p@localhost:5432/db"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.DatabaseBackend("oracle"), "x"))
}

// TestConfigClone tests that clones do not share slice storage.
func TestConfigClone(t *testing.T) {
	cfg := &Config{MetricNames: []string{"rmse"}, ScoreColumns: []string{"p"}, GroupColumns: []string{"g"}}
	clone := cfg.Clone()
	clone.MetricNames[0] = "mae"
	clone.TruthColumn = "actual"

	assert.Equal(t, "rmse", cfg.MetricNames[0])
	assert.Empty(t, cfg.TruthColumn)
}
