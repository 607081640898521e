package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOperand is returned when an operand is not a valid unary number.
var ErrInvalidOperand = errors.New("invalid operand")

// ErrNonConvergent is reported when the step ceiling is reached before the machine halts.
var ErrNonConvergent = errors.New("operation did not converge")

// ErrRunNotFound is returned when a run key cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// OperandError describes which operand was rejected and why.
type OperandError struct {
	Operand string // Operand name ("a" or "b")
	Value   any    // The rejected value
	Reason  string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("invalid unary number '%s': %v (%s)", e.Operand, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidOperand).
func (e *OperandError) Unwrap() error {
	return ErrInvalidOperand
}

// SymbolError is returned when decoding a character outside the alphabet.
type SymbolError struct {
	Value string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Value)
}
