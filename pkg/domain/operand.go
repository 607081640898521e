package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxOperandLength bounds the unary length accepted from callers.
const MaxOperandLength = 1 << 20

// Operand is a validated unary number: zero or more '1' symbols.
// The zero value is the empty operand (zero).
type Operand struct {
	unary string
}

// ParseOperand validates a unary string. The empty string is zero.
func ParseOperand(name, s string) (Operand, error) {
	if len(s) > MaxOperandLength {
		return Operand{}, &OperandError{Operand: name, Value: len(s), Reason: "operand too long"}
	}
	for i := 0; i < len(s); i++ {
		if Symbol(s[i]) != SymbolOne {
			return Operand{}, &OperandError{
				Operand: name,
				Value:   s,
				Reason:  fmt.Sprintf("unexpected %q at position %d", s[i], i),
			}
		}
	}
	return Operand{unary: s}, nil
}

// OperandFromCount encodes a non-negative count as n repetitions of '1'.
func OperandFromCount(name string, n int) (Operand, error) {
	if n < 0 {
		return Operand{}, &OperandError{Operand: name, Value: n, Reason: "must be non-negative"}
	}
	if n > MaxOperandLength {
		return Operand{}, &OperandError{Operand: name, Value: n, Reason: "operand too long"}
	}
	return Operand{unary: strings.Repeat(SymbolOne.String(), n)}, nil
}

// MustOperand is like OperandFromCount but panics on error. Intended for tests and fixtures.
func MustOperand(n int) Operand {
	op, err := OperandFromCount("operand", n)
	if err != nil {
		panic(err)
	}
	return op
}

// Unary returns the unary encoding.
func (o Operand) Unary() string {
	return o.unary
}

// Value returns the integer the operand encodes.
func (o Operand) Value() int {
	return len(o.unary)
}

func (o Operand) String() string {
	return o.unary
}

// MarshalJSON encodes the operand as its unary string.
func (o Operand) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.unary)
}

// UnmarshalJSON accepts either a unary string or a non-negative integer.
// The operand name is unknown here, so errors carry a generic label; RawOperand
// should be used when the caller needs the field name in the message.
func (o *Operand) UnmarshalJSON(data []byte) error {
	var raw RawOperand
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	op, err := raw.Resolve("operand")
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// RawOperand keeps the undecoded JSON form of an operand so validation can be
// deferred until the field name is known.
type RawOperand struct {
	json.RawMessage
}

// UnmarshalJSON stores the raw bytes.
func (r *RawOperand) UnmarshalJSON(data []byte) error {
	r.RawMessage = append(r.RawMessage[:0], data...)
	return nil
}

// Resolve validates the raw value as a unary string or a non-negative integer.
// A missing or null value is zero.
func (r RawOperand) Resolve(name string) (Operand, error) {
	data := bytes.TrimSpace(r.RawMessage)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Operand{}, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Operand{}, &OperandError{Operand: name, Value: string(data), Reason: err.Error()}
		}
		return ParseOperand(name, s)
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return Operand{}, &OperandError{Operand: name, Value: string(data), Reason: "expected a unary string or an integer"}
	}
	count, err := n.Int64()
	if err != nil {
		return Operand{}, &OperandError{Operand: name, Value: n.String(), Reason: "expected an integer"}
	}
	return OperandFromCount(name, int(count))
}
