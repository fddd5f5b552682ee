package cmd

import (
	"time"

	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/outwriter"
	"github.com/spf13/cobra"
)

// gainCmd computes a cumulative gain curve.
var gainCmd = &cobra.Command{
	Use:   "gain <data.csv>",
	Short: "Compute a cumulative gain curve from ranked scores.",
	Long: `Rank rows by probability score and report the cumulative share of events
found at each tested depth.

Rows are sorted by the score for the event of interest, ties share a rank
and collapse to a single curve point. For multiclass truth columns, pass one
score column per level and each level produces its own one-vs-all curve.

Examples:
  # Binary gain curve
  modelmeter gain preds.csv --truth outcome --scores prob_yes

  # Treat the second truth level as the event
  modelmeter gain preds.csv --truth outcome --scores prob_yes --event-level second

  # Multiclass, one curve per level, partitioned by region
  modelmeter gain preds.csv --truth species --scores p_a,p_b,p_c --group-by region`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runGain(); err != nil {
			contract.LogFatal("Cannot run gain curve", err)
		}
	},
}

func runGain() error {
	if err := cfg.RequireEvaluationColumns(false); err != nil {
		return err
	}

	start := time.Now()
	data, err := loadEvaluationFrame(cfg)
	if err != nil {
		return err
	}

	points, err := core.GainCurve(data, cfg.TruthColumn, cfg.ScoreColumns, evalOptionsFromConfig(cfg)...)
	if err != nil {
		return err
	}

	return outwriter.WriteGainResults(points, cfg, time.Since(start))
}
