package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

const rule = "======================================================================"

// ContentRenderer transforms formatted content before it is written.
// This allows TUI rendering (markdown to ANSI) without coupling this package to a terminal library.
type ContentRenderer func(string) (string, error)

func displaySymbol(s domain.Symbol) string {
	if s == domain.SymbolBlank {
		return "BLANK"
	}
	return s.String()
}

// FormatReport writes a human-readable account of a run.
// verbose adds one line per transition.
func FormatReport(w io.Writer, a, b domain.Operand, res *domain.Result, verbose bool) error {
	var sb strings.Builder

	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "Initialized tape for %d + %d\n", a.Value(), b.Value())
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "Tape: %s\n", res.InitialTape)
	fmt.Fprintf(&sb, "Initial state: %s\n\n", domain.StateInitial)

	if verbose {
		for i, t := range res.Transitions {
			fmt.Fprintf(&sb, "Step %d: δ(%s, %s) = (%s, %s, %s) | Head: %d | Tape: %s\n",
				i, t.State, displaySymbol(t.Read), t.NextState, displaySymbol(t.Write), t.Direction, t.Head, t.TapeSnapshot)
		}
		if res.Status == domain.StatusUndefinedTransition {
			fmt.Fprintf(&sb, "Step %d: undefined transition in %s - HALTING\n", res.Steps, res.FinalState)
		}
		fmt.Fprintln(&sb)
	}

	fmt.Fprintln(&sb, rule)
	if res.Halted() {
		fmt.Fprintln(&sb, "EXECUTION COMPLETE")
	} else {
		fmt.Fprintln(&sb, "EXECUTION INCOMPLETE")
	}
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "Final tape: %s\n", res.FinalTape)
	fmt.Fprintf(&sb, "Final state: %s (%s)\n", res.FinalState, res.Status)
	fmt.Fprintf(&sb, "Result: %d + %d = %d\n", a.Value(), b.Value(), res.Sum)
	fmt.Fprintf(&sb, "Total steps: %d\n", res.Steps)
	if err := res.Err(); err != nil {
		fmt.Fprintf(&sb, "Warning: %v\n", err)
	}
	fmt.Fprintln(&sb, rule)

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatMarkdown renders a run as a Markdown document, suitable for a ContentRenderer.
func FormatMarkdown(a, b domain.Operand, res *domain.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %d + %d = %d\n\n", a.Value(), b.Value(), res.Sum)
	fmt.Fprintf(&sb, "- Initial tape: `%s`\n", res.InitialTape)
	fmt.Fprintf(&sb, "- Final tape: `%s`\n", res.FinalTape)
	fmt.Fprintf(&sb, "- Status: **%s** in `%s` after %d steps\n\n", res.Status, res.FinalState, res.Steps)

	if len(res.Transitions) > 0 {
		sb.WriteString("| Step | State | Read | Write | Move | Next | Head | Tape |\n")
		sb.WriteString("|---|---|---|---|---|---|---|---|\n")
		for i, t := range res.Transitions {
			fmt.Fprintf(&sb, "| %d | %s | `%s` | `%s` | %s | %s | %d | `%s` |\n",
				i, t.State, t.Read, t.Write, t.Direction, t.NextState, t.Head, t.TapeSnapshot)
		}
	}
	return sb.String()
}

// FormatTable writes the state list and the transition function.
func FormatTable(w io.Writer, states []domain.StateID, rules []domain.Rule) error {
	var sb strings.Builder

	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "STATE DIAGRAM AND TRANSITION TABLE")
	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "\nStates:")
	for _, s := range states {
		fmt.Fprintf(&sb, "  %s: %s\n", s, s.Description())
	}

	fmt.Fprintln(&sb, "\nTransition Function δ(q, a) = (q', a', d):")
	fmt.Fprintf(&sb, "%-8s %-8s %-12s %-8s %-6s\n", "State", "Input", "Next State", "Output", "Move")
	fmt.Fprintln(&sb, strings.Repeat("-", 50))
	for _, r := range rules {
		fmt.Fprintf(&sb, "%-8s %-8s %-12s %-8s %-6s\n", r.From, displaySymbol(r.Read), r.To, displaySymbol(r.Write), r.Move)
	}
	fmt.Fprintln(&sb, rule)

	_, err := io.WriteString(w, sb.String())
	return err
}
