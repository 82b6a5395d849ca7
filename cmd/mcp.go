package cmd

import (
	"github.com/spf13/cobra"
	"github.com/worldsys/worldsys/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the worldsys MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents classify, summarize and compare via standard tools.`,
	Args:  cobra.NoArgs,
	// Logs go to stderr, so stdout stays free for the protocol.
	PreRunE: datasetSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, ds)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
