package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// Simulator is the engine surface used by adapters (HTTP, MCP, stdio).
type Simulator interface {
	// Run executes a + b and returns the full result.
	// Only store failures are returned as errors; non-convergence is reported in the result.
	Run(ctx context.Context, a, b domain.Operand) (*domain.Result, error)

	// Table returns the transition rules in declaration order.
	Table() []domain.Rule
}
