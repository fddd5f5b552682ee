package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/dataio"
	"github.com/huangsam/modelmeter/internal/outwriter"
	"github.com/huangsam/modelmeter/internal/resultstore"
	"github.com/huangsam/modelmeter/schema"
	"github.com/spf13/cobra"
)

// evaluateCmd computes a metric set over a prediction table.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <data.csv>",
	Short: "Compute performance metrics over truth and estimate columns.",
	Long: `Evaluate model predictions with one or more built-in metrics.

The metrics named by --metrics must share a compatible kind: numeric metrics
(rmse, mae, rsq, mape) evaluate a numeric estimate column, while class
metrics (accuracy, precision, recall) and probability metrics (gain_capture,
mn_log_loss) evaluate label and score columns together.

Examples:
  # Regression metrics
  modelmeter evaluate preds.csv --truth actual --estimate predicted --metrics rmse,mae,rsq

  # Classification metrics with probabilities
  modelmeter evaluate preds.csv --truth outcome --estimate class --scores prob_yes \
    --metrics accuracy,gain_capture,mn_log_loss

  # Grouped evaluation with persisted results
  modelmeter evaluate preds.csv --truth actual --estimate predicted \
    --metrics rmse --group-by region --store-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runEvaluate(); err != nil {
			contract.LogFatal("Cannot run evaluation", err)
		}
	},
}

// runEvaluate wires data loading, metric dispatch, persistence and output.
func runEvaluate() error {
	if err := cfg.RequireEvaluationColumns(true); err != nil {
		return err
	}
	if len(cfg.MetricNames) == 0 {
		return fmt.Errorf("--metrics is required")
	}

	set, err := buildMetricSet(cfg.MetricNames)
	if err != nil {
		return err
	}

	start := time.Now()
	data, err := loadEvaluationFrame(cfg)
	if err != nil {
		return err
	}

	rows, err := dispatchMetricSet(set, data, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	recordEvaluationRun(data.NumRows(), start, duration, rows)
	return outwriter.WriteMetricRows(rows, cfg, duration)
}

// buildMetricSet resolves metric names against the catalog and validates
// that the resulting set is kind-compatible.
func buildMetricSet(names []string) (*core.Set, error) {
	metrics := make([]*core.Metric, 0, len(names))
	for _, name := range names {
		m, ok := core.LookupMetric(name)
		if !ok {
			return nil, fmt.Errorf("unknown metric '%s' (see 'modelmeter metrics' for the catalog)", name)
		}
		metrics = append(metrics, m)
	}
	return core.NewSet(metrics...)
}

// dispatchMetricSet runs the evaluator matching the set's combined kind.
func dispatchMetricSet(set *core.Set, data *schema.Frame, cfg *contract.Config) ([]schema.MetricRow, error) {
	opts := evalOptionsFromConfig(cfg)
	if set.Kind() == core.NumericSet {
		eval, err := set.NumericEvaluator()
		if err != nil {
			return nil, err
		}
		return eval(data, cfg.TruthColumn, cfg.EstimateCol, nil, opts...)
	}
	eval, err := set.ClassEvaluator()
	if err != nil {
		return nil, err
	}
	return eval(data, cfg.TruthColumn, cfg.ScoreColumns, cfg.EstimateCol, opts...)
}

// loadEvaluationFrame loads the input CSV and applies grouping columns.
func loadEvaluationFrame(cfg *contract.Config) (*schema.Frame, error) {
	data, err := dataio.LoadCSV(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	if len(cfg.GroupColumns) > 0 {
		data, err = data.GroupBy(cfg.GroupColumns...)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// evalOptionsFromConfig translates config flags into evaluation options.
func evalOptionsFromConfig(cfg *contract.Config) []core.EvalOption {
	opts := []core.EvalOption{core.WithEventLevel(cfg.EventLevel)}
	if cfg.KeepMissing {
		opts = append(opts, core.WithKeepMissing())
	}
	return opts
}

// recordEvaluationRun persists the run when a result store is configured.
// Persistence failures are warnings; the evaluation output still matters.
func recordEvaluationRun(rowCount int, start time.Time, duration time.Duration, rows []schema.MetricRow) {
	store := resultstore.GetStore()
	if store == nil {
		return
	}

	params, _ := json.Marshal(map[string]any{
		"truth":    cfg.TruthColumn,
		"estimate": cfg.EstimateCol,
		"scores":   cfg.ScoreColumns,
		"group_by": cfg.GroupColumns,
		"metrics":  cfg.MetricNames,
	})
	run := contract.RunInfo{
		DataPath:   cfg.DataPath,
		StartTime:  start,
		DurationMs: duration.Milliseconds(),
		RowCount:   rowCount,
		Params:     string(params),
	}
	if _, err := store.RecordRun(run, rows); err != nil {
		contract.LogWarn("Could not record evaluation run", err)
	}
}
