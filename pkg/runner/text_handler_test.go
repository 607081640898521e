package runner_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport(t *testing.T) {
	a, b := domain.MustOperand(3), domain.MustOperand(2)
	res, err := turing.New().Run(context.Background(), a, b)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runner.FormatReport(&buf, a, b, res, false))
	out := buf.String()

	assert.Contains(t, out, "Initialized tape for 3 + 2")
	assert.Contains(t, out, "EXECUTION COMPLETE")
	assert.Contains(t, out, "Result: 3 + 2 = 5")
	assert.Contains(t, out, "Total steps: 8")
	assert.NotContains(t, out, "Step 0:")
}

func TestFormatReport_Verbose(t *testing.T) {
	a, b := domain.MustOperand(2), domain.Operand{}
	res, err := turing.New().Run(context.Background(), a, b)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runner.FormatReport(&buf, a, b, res, true))
	out := buf.String()

	assert.Contains(t, out, "Step 0: δ(q0, 1) = (q0, 1, R) | Head: 1")
	assert.Contains(t, out, "Step 3: undefined transition in q2 - HALTING")
	assert.Contains(t, out, "Final state: q2 (undefined_transition)")
}

func TestFormatReport_Incomplete(t *testing.T) {
	a, b := domain.MustOperand(4), domain.MustOperand(4)
	res, err := turing.New(turing.WithMaxSteps(2)).Run(context.Background(), a, b)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runner.FormatReport(&buf, a, b, res, false))
	assert.Contains(t, buf.String(), "EXECUTION INCOMPLETE")
	assert.Contains(t, buf.String(), "did not converge")
}

func TestFormatMarkdown(t *testing.T) {
	a, b := domain.MustOperand(1), domain.MustOperand(1)
	res, err := turing.New().Run(context.Background(), a, b)
	require.NoError(t, err)

	md := runner.FormatMarkdown(a, b, res)
	assert.Contains(t, md, "# 1 + 1 = 2")
	assert.Contains(t, md, "| 4 | q4 | `1` | `1` | S | q5 | 3 | `1+1` |")
}

func TestFormatTable(t *testing.T) {
	eng := turing.New()

	var buf bytes.Buffer
	require.NoError(t, runner.FormatTable(&buf, eng.States(), eng.Table()))
	out := buf.String()

	assert.Contains(t, out, "q1: Reserved - never reached")
	assert.Contains(t, out, "q3       BLANK    q4           BLANK    L")
	assert.Contains(t, out, "q4       1        q5           1        S")
}
