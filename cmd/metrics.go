package cmd

import (
	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all built-in metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display definitions and formulas for all built-in metrics.",
	Long: `Show the catalog of built-in metrics with kind, direction and formula.

No data is read - this is purely informational.

Each metric has:
- A kind (numeric, class, class_prob) deciding which columns it consumes
- A direction (maximize, minimize, zero) for interpreting its value
- A formula describing the computation

Examples:
  # Show the catalog
  modelmeter metrics

  # Machine-readable catalog
  modelmeter metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.WriteCatalog(core.CatalogInfo(), cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
