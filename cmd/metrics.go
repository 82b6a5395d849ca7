package cmd

import (
	"github.com/spf13/cobra"
	"github.com/worldsys/worldsys/core"
	"github.com/worldsys/worldsys/internal/contract"
)

// metricsCmd displays the indicator definitions.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the indicators, their sources and the composite formula",
	Long: `Show every indicator with its source, unit, ranking direction and whether it
is active in the current selection, followed by the composite formula.

No ranking is performed - this is purely informational.

Examples:
  # Show the default selection
  worldsys metrics

  # View the selection from a config file
  worldsys metrics --config .worldsys.yaml`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
