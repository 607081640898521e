package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// CheckCase is one addition with its expected sum.
type CheckCase struct {
	A, B     int
	Expected int
}

// DefaultCases is the fixed self-check battery.
var DefaultCases = []CheckCase{
	{A: 3, B: 2, Expected: 5}, // basic case
	{A: 2, B: 3, Expected: 5}, // reversed
	{A: 5, B: 1, Expected: 6}, // longer first operand
	{A: 1, B: 1, Expected: 2}, // minimal
	{A: 0, B: 5, Expected: 5}, // zero first operand
	{A: 4, B: 4, Expected: 8}, // equal operands
}

// CheckOutcome records the result of one case.
type CheckOutcome struct {
	Case   CheckCase
	Got    int
	Steps  int
	Status domain.Status
	Err    error
}

// Passed reports whether the case produced the expected sum after a normal halt.
func (o CheckOutcome) Passed() bool {
	return o.Err == nil && o.Status.Halted() && o.Got == o.Case.Expected
}

// CheckReport aggregates a battery run.
type CheckReport struct {
	Outcomes []CheckOutcome
}

// Passed counts passing cases.
func (r CheckReport) Passed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Passed() {
			n++
		}
	}
	return n
}

// Failed counts failing cases.
func (r CheckReport) Failed() int {
	return len(r.Outcomes) - r.Passed()
}

// OK reports whether every case passed.
func (r CheckReport) OK() bool {
	return r.Failed() == 0
}

// ExitCode maps the report to a process exit code.
func (r CheckReport) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}

// SelfCheck runs each case through sim.
func SelfCheck(ctx context.Context, sim ports.Simulator, cases []CheckCase) CheckReport {
	report := CheckReport{Outcomes: make([]CheckOutcome, 0, len(cases))}
	for _, c := range cases {
		report.Outcomes = append(report.Outcomes, runCase(ctx, sim, c))
	}
	return report
}

func runCase(ctx context.Context, sim ports.Simulator, c CheckCase) CheckOutcome {
	out := CheckOutcome{Case: c}

	a, err := domain.OperandFromCount("a", c.A)
	if err != nil {
		out.Err = err
		return out
	}
	b, err := domain.OperandFromCount("b", c.B)
	if err != nil {
		out.Err = err
		return out
	}

	res, err := sim.Run(ctx, a, b)
	if err != nil {
		out.Err = err
		return out
	}
	out.Got = res.Sum
	out.Steps = res.Steps
	out.Status = res.Status
	out.Err = res.Err()
	return out
}

// Write prints the pass/fail report.
func (r CheckReport) Write(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "TURING MACHINE SIMULATOR - TEST SUITE")
	fmt.Fprintln(&sb, rule)
	for _, o := range r.Outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(&sb, "✗ ERROR in test %d + %d: %v\n", o.Case.A, o.Case.B, o.Err)
		case o.Passed():
			fmt.Fprintf(&sb, "✓ PASSED: %d + %d = %d (%d steps)\n", o.Case.A, o.Case.B, o.Got, o.Steps)
		default:
			fmt.Fprintf(&sb, "✗ FAILED: %d + %d = %d, expected %d\n", o.Case.A, o.Case.B, o.Got, o.Case.Expected)
		}
	}
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "TEST SUMMARY: %d passed, %d failed\n", r.Passed(), r.Failed())
	fmt.Fprintln(&sb, rule)

	_, err := io.WriteString(w, sb.String())
	return err
}
