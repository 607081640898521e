package turing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

const (
	// DefaultMaxSteps is the step ceiling for trace-producing runs.
	DefaultMaxSteps = runtime.DefaultMaxSteps
	// ManualMaxSteps is the step ceiling used by the self-check battery.
	ManualMaxSteps = runtime.ManualMaxSteps
)

// Engine is the high-level entry point for the turing library.
// It wraps the internal runtime and provides a simplified API for consumers.
// An Engine keeps no per-run state, so one instance can serve concurrent callers.
type Engine struct {
	runtime  *runtime.Engine
	store    ports.ResultStore
	maxSteps int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithMaxSteps sets the step ceiling (default DefaultMaxSteps).
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore memoises results in the given store.
// Runs are deterministic, so a cached result is identical to a fresh one.
func WithStore(store ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithMaxSteps(eng.maxSteps),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	eng.maxSteps = eng.runtime.MaxSteps()

	return eng
}

// MaxSteps returns the effective step ceiling.
func (e *Engine) MaxSteps() int {
	return e.maxSteps
}

// RunKey identifies a run for caching purposes.
func RunKey(a, b domain.Operand, maxSteps int) string {
	return fmt.Sprintf("%d+%d@%d", a.Value(), b.Value(), maxSteps)
}

// OperandLimit returns the largest combined operand length Run accepts:
// the step ceiling, but never less than DefaultMaxSteps.
// Longer inputs cannot converge within the ceiling.
func (e *Engine) OperandLimit() int {
	return max(e.maxSteps, DefaultMaxSteps)
}

// Run executes a + b. Non-convergence is reported through Result.Status.
// Errors are returned for operands over OperandLimit (wrapping
// domain.ErrInvalidOperand) and for store failures.
func (e *Engine) Run(ctx context.Context, a, b domain.Operand) (*domain.Result, error) {
	if total, limit := a.Value()+b.Value(), e.OperandLimit(); total > limit {
		return nil, &domain.OperandError{
			Operand: "a+b",
			Value:   total,
			Reason:  fmt.Sprintf("combined length exceeds %d", limit),
		}
	}

	if e.store == nil {
		return e.runtime.Run(ctx, a, b), nil
	}

	key := RunKey(a, b, e.maxSteps)
	cached, err := e.store.Load(ctx, key)
	switch {
	case err == nil:
		e.logger.Debug("result served from store", "key", key)
		e.replay(ctx, cached)
		return cached, nil
	case !errors.Is(err, domain.ErrRunNotFound):
		return nil, fmt.Errorf("failed to load cached result %s: %w", key, err)
	}

	res := e.runtime.Run(ctx, a, b)
	if err := e.store.Save(ctx, key, res); err != nil {
		// The result is still valid.
		e.logger.Warn("failed to cache result", "key", key, "error", err)
	}
	return res, nil
}

// replay fires the lifecycle hooks for a cached result, so observers count
// every run whether or not it was computed.
func (e *Engine) replay(ctx context.Context, res *domain.Result) {
	if e.hooks.OnStep != nil {
		for i, entry := range res.Transitions {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep},
				Step:      i + 1,
				Entry:     entry,
			})
		}
	}
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.HaltEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventHalt},
			Status:     res.Status,
			FinalState: res.FinalState,
			Steps:      res.Steps,
			Sum:        res.Sum,
		})
	}
}

// RunStrings validates two unary strings and runs them.
// Validation failures return an error wrapping domain.ErrInvalidOperand and no result.
func (e *Engine) RunStrings(ctx context.Context, a, b string) (*domain.Result, error) {
	opA, err := domain.ParseOperand("a", a)
	if err != nil {
		return nil, err
	}
	opB, err := domain.ParseOperand("b", b)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, opA, opB)
}

// RunCounts encodes two non-negative counts in unary and runs them.
func (e *Engine) RunCounts(ctx context.Context, m, n int) (*domain.Result, error) {
	opA, err := domain.OperandFromCount("a", m)
	if err != nil {
		return nil, err
	}
	opB, err := domain.OperandFromCount("b", n)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, opA, opB)
}

// Table returns the transition rules in declaration order.
func (e *Engine) Table() []domain.Rule {
	return e.runtime.Table().Rules()
}

// States returns every declared state, including the reserved q1.
func (e *Engine) States() []domain.StateID {
	return domain.States()
}
