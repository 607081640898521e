package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// LoggingHooks returns hooks that emit one Info record per transition and one per halt.
// The logger is meant to be a dedicated audit sink, separate from diagnostics.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.InfoContext(ctx, "transition",
				"step", e.Step,
				"state", e.Entry.State,
				"next_state", e.Entry.NextState,
				"head", e.Entry.Head,
			)
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			logger.InfoContext(ctx, "halt",
				"status", e.Status,
				"final_state", e.FinalState,
				"steps", e.Steps,
				"sum", e.Sum,
			)
		},
	}
}
