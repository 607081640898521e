package domain

import "fmt"

// Status describes how a run ended.
type Status string

const (
	// StatusAccepted means the machine entered the accepting state.
	StatusAccepted Status = "accepted"
	// StatusUndefinedTransition means no rule matched the current (state, symbol).
	// This is a controlled halt, not an error.
	StatusUndefinedTransition Status = "undefined_transition"
	// StatusNonConvergent means the step ceiling was reached without halting.
	StatusNonConvergent Status = "non_convergent"
)

// Halted reports whether the status is a normal halt.
func (s Status) Halted() bool {
	return s == StatusAccepted || s == StatusUndefinedTransition
}

// TraceEntry is a snapshot taken before a transition is applied.
type TraceEntry struct {
	State        StateID   `json:"state"`
	Head         int       `json:"head"`
	Read         Symbol    `json:"read"`
	Write        Symbol    `json:"write"`
	Direction    Direction `json:"direction"`
	NextState    StateID   `json:"next_state"`
	TapeSnapshot string    `json:"tape_snapshot"`
}

// Result is the outcome of a complete run.
type Result struct {
	InitialTape string       `json:"initial_tape"`
	Transitions []TraceEntry `json:"transitions"`
	FinalTape   string       `json:"final_tape"`
	Steps       int          `json:"steps"`

	Status     Status  `json:"status"`
	FinalState StateID `json:"final_state"`
	Head       int     `json:"head"`
	// Sum is the number of '1' symbols left on the tape, separator ignored.
	Sum int `json:"sum"`
	// MaxSteps is the ceiling the run was executed with.
	MaxSteps int `json:"max_steps"`
}

// Halted reports whether the machine stopped on its own.
func (r *Result) Halted() bool {
	return r.Status.Halted()
}

// Err returns a wrapped ErrNonConvergent when the ceiling was exhausted, nil otherwise.
func (r *Result) Err() error {
	if r.Status == StatusNonConvergent {
		return fmt.Errorf("%w within %d steps", ErrNonConvergent, r.MaxSteps)
	}
	return nil
}
