package cmd

import (
	"github.com/spf13/cobra"
	"github.com/worldsys/worldsys/core"
)

// compareCmd shows how the classification moves between two selections.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the classification under two metric selections.",
	Long: `Classify the dataset twice and report how each country moved.

A country is promoted when it lands in a more core-like category, demoted when
it lands in a less core-like one, unchanged otherwise. A side that is not given
uses --metrics.

Examples:
  # What changes when military power is ignored?
  worldsys compare --base-metrics economic,military,diplomatic --target-metrics economic,diplomatic

  # Largest movers only
  worldsys compare --target-metrics economic --limit 20

  # Export the movement table
  worldsys compare --target-metrics diplomatic --output csv --output-file movement.csv`,
	Args:    cobra.NoArgs,
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteCompare, "Cannot run comparison")
	},
}
