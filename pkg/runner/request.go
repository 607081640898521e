package runner

import (
	"encoding/json"

	"github.com/aretw0/turing/pkg/domain"
)

// Request is the JSON call contract of the stdio and HTTP surfaces.
// Operands may be unary strings or non-negative integers.
type Request struct {
	A domain.RawOperand `json:"a"`
	B domain.RawOperand `json:"b"`
	// SpeedMS is an animation hint for clients. It is kept undecoded, so any
	// JSON value is accepted and the engine ignores it.
	SpeedMS json.RawMessage `json:"speed_ms,omitempty"`
}

// Operands validates both operands, reporting the offending field by name.
func (r Request) Operands() (domain.Operand, domain.Operand, error) {
	a, err := r.A.Resolve("a")
	if err != nil {
		return domain.Operand{}, domain.Operand{}, err
	}
	b, err := r.B.Resolve("b")
	if err != nil {
		return domain.Operand{}, domain.Operand{}, err
	}
	return a, b, nil
}

// ErrorResponse is written when a request cannot produce a result.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageFailed is the fixed human-readable message of ErrorResponse.
const MessageFailed = "Simulation failed"

// NewErrorResponse wraps err in the wire error shape.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Message: MessageFailed}
}
