package cmd

import (
	"github.com/huangsam/modelmeter/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Modelmeter MCP server",
	Long:  `Launch an MCP server that allows AI agents to evaluate model predictions via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The MCP protocol owns stdio, so setup must not print anything.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
