package domain_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	op, err := domain.ParseOperand("a", "111")
	require.NoError(t, err)
	assert.Equal(t, 3, op.Value())
	assert.Equal(t, "111", op.Unary())

	zero, err := domain.ParseOperand("a", "")
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Value())
}

func TestParseOperand_RejectsAnyForeignSymbol(t *testing.T) {
	// The offending character is rejected wherever it appears.
	for _, bad := range []string{"x111", "1x11", "11x1", "111x", "+", "_", "1+1", " 1", "abc"} {
		_, err := domain.ParseOperand("b", bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidOperand, bad)

		var opErr *domain.OperandError
		require.True(t, errors.As(err, &opErr), bad)
		assert.Equal(t, "b", opErr.Operand)
		assert.Equal(t, bad, opErr.Value)
	}
}

func TestParseOperand_TooLong(t *testing.T) {
	_, err := domain.ParseOperand("a", strings.Repeat("1", domain.MaxOperandLength+1))
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}

func TestOperandFromCount(t *testing.T) {
	op, err := domain.OperandFromCount("a", 4)
	require.NoError(t, err)
	assert.Equal(t, "1111", op.Unary())

	_, err = domain.OperandFromCount("a", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
	assert.Contains(t, err.Error(), "invalid unary number 'a'")

	_, err = domain.OperandFromCount("a", domain.MaxOperandLength+1)
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}

func TestMustOperand_Panics(t *testing.T) {
	assert.Panics(t, func() { domain.MustOperand(-1) })
}

func TestOperand_JSON(t *testing.T) {
	var payload struct {
		A domain.Operand `json:"a"`
		B domain.Operand `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "11", "b": 3}`), &payload))
	assert.Equal(t, 2, payload.A.Value())
	assert.Equal(t, 3, payload.B.Value())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "11", "b": "111"}`, string(out))

	err = json.Unmarshal([]byte(`{"a": "1a"}`), &payload)
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}

func TestRawOperand_Resolve(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{`"111"`, 3, false},
		{`""`, 0, false},
		{`0`, 0, false},
		{`7`, 7, false},
		{`null`, 0, false},
		{``, 0, false},
		{`-1`, 0, true},
		{`2.5`, 0, true},
		{`"12"`, 0, true},
		{`[1]`, 0, true},
		{`{}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			raw := domain.RawOperand{RawMessage: json.RawMessage(tt.raw)}
			op, err := raw.Resolve("a")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidOperand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, op.Value())
		})
	}
}
