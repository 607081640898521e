package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/ports"
)

// JSONHandler serves a single JSON request over a reader/writer pair.
type JSONHandler struct {
	Decoder *json.Decoder
	Encoder *json.Encoder
	Logger  *slog.Logger
}

// NewJSONHandler creates a handler for JSON IO.
// Nil streams default to Stdin and Stdout.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Decoder: json.NewDecoder(r),
		Encoder: json.NewEncoder(w),
		Logger:  logging.NewNop(),
	}
}

// Handle decodes one request, runs it and writes the response.
// It returns the process exit code: 0 on success, 1 on any failure.
// Every failure, including a non-convergent run, is written as an ErrorResponse.
func (h *JSONHandler) Handle(ctx context.Context, sim ports.Simulator) int {
	var req Request
	if err := h.Decoder.Decode(&req); err != nil {
		return h.fail(fmt.Errorf("invalid request: %w", err))
	}

	a, b, err := req.Operands()
	if err != nil {
		return h.fail(err)
	}

	res, err := sim.Run(ctx, a, b)
	if err != nil {
		return h.fail(err)
	}
	if err := res.Err(); err != nil {
		return h.fail(err)
	}

	if err := h.Encoder.Encode(res); err != nil {
		h.Logger.Error("failed to encode result", "error", err)
		return 1
	}
	return 0
}

func (h *JSONHandler) fail(err error) int {
	h.Logger.Warn("request failed", "error", err)
	if encErr := h.Encoder.Encode(NewErrorResponse(err)); encErr != nil {
		h.Logger.Error("failed to encode error", "error", encErr)
	}
	return 1
}
