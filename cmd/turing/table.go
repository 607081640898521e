package main

import (
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the states and the transition function",
	RunE: func(cmd *cobra.Command, args []string) error {
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		eng := turing.New()

		if mermaid {
			_, err := fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(eng.States(), eng.Table(), nil))
			return err
		}
		return runner.FormatTable(cmd.OutOrStdout(), eng.States(), eng.Table())
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("mermaid", false, "Print a Mermaid state diagram instead of the table")
}
