package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
)

const (
	// DefaultMaxSteps is the ceiling used when a trace is produced for callers.
	DefaultMaxSteps = 10000
	// ManualMaxSteps is the ceiling used by the self-check battery.
	ManualMaxSteps = 1000
)

// Engine runs the addition machine with a step ceiling.
// It holds no per-run state and is safe for concurrent use.
type Engine struct {
	table    *Table
	maxSteps int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithMaxSteps sets the step ceiling. Non-positive values keep the default.
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// withTable swaps the transition table. Only tests need a different program.
func withTable(t *Table) EngineOption {
	return func(e *Engine) {
		e.table = t
	}
}

// NewEngine creates an engine bound to the addition table.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		table:    Addition(),
		maxSteps: DefaultMaxSteps,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxSteps returns the configured ceiling.
func (e *Engine) MaxSteps() int {
	return e.maxSteps
}

// Table returns the transition table.
func (e *Engine) Table() *Table {
	return e.table
}

// Run executes a + b until the machine halts or the ceiling is reached.
// Reaching the ceiling is reported through Result.Status, not as an error.
func (e *Engine) Run(ctx context.Context, a, b domain.Operand) *domain.Result {
	m := newMachine(e.table, a, b)
	initial := m.tape.String()

	e.logger.Debug("run started",
		"a", a.Value(),
		"b", b.Value(),
		"max_steps", e.maxSteps,
	)

	for m.steps < e.maxSteps {
		before := m.steps
		halted := m.Step()
		if m.steps > before {
			entry := m.trace[before]
			e.logger.Debug("step",
				"step", m.steps,
				"state", entry.State,
				"read", entry.Read,
				"write", entry.Write,
				"move", entry.Direction,
				"head", entry.Head,
			)
			if e.hooks.OnStep != nil {
				e.hooks.OnStep(ctx, &domain.StepEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep},
					Step:      m.steps,
					Entry:     entry,
				})
			}
		}
		if halted {
			break
		}
	}
	// A ceiling that lands exactly on an undefined transition is still a halt.
	m.settle()

	res := &domain.Result{
		InitialTape: initial,
		Transitions: m.trace,
		FinalTape:   m.tape.String(),
		Steps:       m.steps,
		Status:      m.Status(),
		FinalState:  m.state,
		Head:        m.tape.Head(),
		Sum:         m.tape.Count(domain.SymbolOne),
		MaxSteps:    e.maxSteps,
	}
	if res.Transitions == nil {
		res.Transitions = []domain.TraceEntry{}
	}

	if res.Status == domain.StatusNonConvergent {
		e.logger.Warn("step ceiling reached", "steps", res.Steps, "state", res.FinalState)
	} else {
		e.logger.Info("run halted",
			"status", res.Status,
			"state", res.FinalState,
			"steps", res.Steps,
			"sum", res.Sum,
		)
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

	return res
}
