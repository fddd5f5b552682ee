package cmd

import (
	"time"

	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/outwriter"
	"github.com/spf13/cobra"
)

// liftCmd computes a lift curve.
var liftCmd = &cobra.Command{
	Use:   "lift <data.csv>",
	Short: "Compute a lift curve from ranked scores.",
	Long: `Rank rows by probability score and report, at each tested depth, how many
times better the model finds events than random selection.

Lift is the gain curve's percent found divided by percent tested, so a lift
of 2 at 10% tested means the top decile holds twice the events a random
decile would.

Examples:
  # Binary lift curve
  modelmeter lift preds.csv --truth outcome --scores prob_yes

  # Export to CSV
  modelmeter lift preds.csv --truth outcome --scores prob_yes --output csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runLift(); err != nil {
			contract.LogFatal("Cannot run lift curve", err)
		}
	},
}

func runLift() error {
	if err := cfg.RequireEvaluationColumns(false); err != nil {
		return err
	}

	start := time.Now()
	data, err := loadEvaluationFrame(cfg)
	if err != nil {
		return err
	}

	points, err := core.LiftCurve(data, cfg.TruthColumn, cfg.ScoreColumns, evalOptionsFromConfig(cfg)...)
	if err != nil {
		return err
	}

	return outwriter.WriteLiftResults(points, cfg, time.Since(start))
}
