package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [A B]",
	Short: "Add two unary numbers",
	Long: `Runs the machine on A + B and prints the result.

Operands are runs of '1' (an empty string is zero), or decimal counts with --count.
With --json and no arguments, a request {"a": ..., "b": ...} is read from stdin
and the result is written as JSON.`,
	Example: `  turing run 111 11
  turing run --count 3 2 --verbose
  echo '{"a": "111", "b": 2}' | turing run --json`,
	Args: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		if jsonMode && len(args) == 0 {
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		countMode, _ := cmd.Flags().GetBool("count")
		verbose, _ := cmd.Flags().GetBool("verbose")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")

		cfg, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		if maxSteps <= 0 {
			maxSteps = cfg.MaxSteps
			if verbose {
				maxSteps = turing.ManualMaxSteps
			}
		}
		eng := turing.New(turing.WithMaxSteps(maxSteps), turing.WithLogger(logger))

		if jsonMode {
			in := cmd.InOrStdin()
			if len(args) == 2 {
				body, err := requestBody(args[0], args[1], countMode)
				if err != nil {
					return err
				}
				in = bytes.NewReader(body)
			}
			handler := runner.NewJSONHandler(in, cmd.OutOrStdout())
			handler.Logger = logger
			if code := handler.Handle(cmd.Context(), eng); code != 0 {
				return &exitError{code: code}
			}
			return nil
		}

		a, b, err := parseOperands(args[0], args[1], countMode)
		if err != nil {
			return err
		}
		res, err := eng.Run(cmd.Context(), a, b)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if verbose || !tui.IsTerminal(out) {
			err = runner.FormatReport(out, a, b, res, verbose)
		} else {
			err = renderMarkdown(out, tui.NewRenderer(), runner.FormatMarkdown(a, b, res))
		}
		if err != nil {
			return err
		}

		if res.Err() != nil {
			return &exitError{code: 1}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("json", false, "Read a JSON request from stdin (without arguments) and write JSON output")
	runCmd.Flags().Bool("count", false, "Treat A and B as decimal counts instead of unary strings")
	runCmd.Flags().BoolP("verbose", "v", false, "Print every transition (ceiling defaults to 1000 steps)")
	runCmd.Flags().Int("max-steps", 0, "Step ceiling (defaults to the configured max_steps)")
}

func parseOperands(a, b string, counts bool) (domain.Operand, domain.Operand, error) {
	if !counts {
		opA, err := domain.ParseOperand("a", a)
		if err != nil {
			return domain.Operand{}, domain.Operand{}, err
		}
		opB, err := domain.ParseOperand("b", b)
		if err != nil {
			return domain.Operand{}, domain.Operand{}, err
		}
		return opA, opB, nil
	}

	m, err := strconv.Atoi(a)
	if err != nil {
		return domain.Operand{}, domain.Operand{}, fmt.Errorf("operand a: %w", err)
	}
	n, err := strconv.Atoi(b)
	if err != nil {
		return domain.Operand{}, domain.Operand{}, fmt.Errorf("operand b: %w", err)
	}
	opA, err := domain.OperandFromCount("a", m)
	if err != nil {
		return domain.Operand{}, domain.Operand{}, err
	}
	opB, err := domain.OperandFromCount("b", n)
	if err != nil {
		return domain.Operand{}, domain.Operand{}, err
	}
	return opA, opB, nil
}

// requestBody encodes command-line operands as a JSON request.
func requestBody(a, b string, counts bool) ([]byte, error) {
	if !counts {
		return json.Marshal(map[string]any{"a": a, "b": b})
	}
	m, err := strconv.Atoi(a)
	if err != nil {
		return nil, fmt.Errorf("operand a: %w", err)
	}
	n, err := strconv.Atoi(b)
	if err != nil {
		return nil, fmt.Errorf("operand b: %w", err)
	}
	return json.Marshal(map[string]any{"a": m, "b": n})
}

func renderMarkdown(w io.Writer, render runner.ContentRenderer, markdown string) error {
	rendered, err := render(markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}
