package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryAdd(t *testing.T) {
	s := NewServer(turing.New())

	tests := []struct {
		name string
		args map[string]interface{}
		sum  int
	}{
		{"Unary strings", map[string]interface{}{"a": "111", "b": "11"}, 5},
		{"Counts", map[string]interface{}{"a": 4, "b": 4}, 8},
		// Numbers decoded from a JSON-RPC call arrive as float64.
		{"Decoded JSON counts", map[string]interface{}{"a": float64(3), "b": float64(2)}, 5},
		{"Mixed forms", map[string]interface{}{"a": "1", "b": float64(1)}, 2},
		{"Empty second operand", map[string]interface{}{"a": "11", "b": ""}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleUnaryAdd(context.Background(), mcp.CallToolRequest{}, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.sum, res.Sum)
			assert.True(t, res.Halted())
		})
	}
}

func TestUnaryAdd_InvalidOperand(t *testing.T) {
	s := NewServer(turing.New())

	_, err := s.handleUnaryAdd(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"a": "1x", "b": "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}

func TestUnaryAdd_CountValidation(t *testing.T) {
	s := NewServer(turing.New())

	for name, args := range map[string]map[string]interface{}{
		"Negative":   {"a": float64(-1), "b": float64(2)},
		"Fractional": {"a": 1.5, "b": float64(2)},
		"Over limit": {"a": float64(50000), "b": float64(0)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.handleUnaryAdd(context.Background(), mcp.CallToolRequest{}, args)
			assert.ErrorIs(t, err, domain.ErrInvalidOperand)
		})
	}
}

func TestOperandDescription(t *testing.T) {
	desc := operandDescription("First")
	assert.Contains(t, desc, "run of '1' characters")
	assert.Contains(t, desc, "integer count")
}

func TestUnaryAdd_NonConvergent(t *testing.T) {
	s := NewServer(turing.New(turing.WithMaxSteps(3)))

	_, err := s.handleUnaryAdd(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"a": "111", "b": "11"})
	assert.ErrorIs(t, err, domain.ErrNonConvergent)
}

func TestReadTable(t *testing.T) {
	s := NewServer(turing.New())

	contents, err := s.readTable(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TableURI, text.URI)

	var rules []domain.Rule
	require.NoError(t, json.Unmarshal([]byte(text.Text), &rules))
	assert.Equal(t, turing.New().Table(), rules)
}
