package main

import (
	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the self-check battery",
	Long:  `Runs six fixed additions with a 1000-step ceiling and reports which ones produced the expected sum.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tui.IsTerminal(out) {
			tui.PrintBanner(out)
		}

		eng := turing.New(turing.WithMaxSteps(turing.ManualMaxSteps), turing.WithLogger(logger))
		report := runner.SelfCheck(cmd.Context(), eng, runner.DefaultCases)
		if err := report.Write(out); err != nil {
			return err
		}
		if code := report.ExitCode(); code != 0 {
			return &exitError{code: code}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
