package main

import (
	"github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the unary_add tool and the turing://table resource to MCP clients over stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		// Nothing serves /metrics in stdio mode.
		cfg.Metrics.Enabled = false

		setup, err := newEngine(cmd.Context(), cfg, logger, nil)
		if err != nil {
			return err
		}
		defer setup.Close()

		logger.Info("Starting MCP server (stdio)")
		return mcp.NewServer(setup.Engine).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
