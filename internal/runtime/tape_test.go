package runtime

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewTape_Layout(t *testing.T) {
	tape := NewTape(domain.MustOperand(3), domain.MustOperand(2))

	assert.Equal(t, 8, tape.Len())
	assert.Equal(t, 1, tape.Head())
	assert.Equal(t, domain.SymbolOne, tape.Read())
	assert.Equal(t, "111+11", tape.String())
}

func TestNewTape_ZeroOperands(t *testing.T) {
	tape := NewTape(domain.Operand{}, domain.Operand{})

	assert.Equal(t, 3, tape.Len())
	assert.Equal(t, domain.SymbolSeparator, tape.Read(), "head should start on the separator when a is empty")
	assert.Equal(t, "+", tape.String())
}

func TestTape_GrowRight(t *testing.T) {
	tape := NewTape(domain.Operand{}, domain.Operand{})
	tape.Move(domain.Right)
	tape.Move(domain.Right)

	assert.Equal(t, 3, tape.Head())
	assert.Equal(t, 4, tape.Len())
	assert.Equal(t, domain.SymbolBlank, tape.Read())
}

func TestTape_GrowLeftRezeroesHead(t *testing.T) {
	tape := NewTape(domain.MustOperand(1), domain.Operand{})
	tape.Move(domain.Left)
	assert.Equal(t, 0, tape.Head())

	tape.Move(domain.Left)
	assert.Equal(t, 0, tape.Head(), "head is re-zeroed after prepending")
	assert.Equal(t, 5, tape.Len())
	assert.Equal(t, domain.SymbolBlank, tape.Read())
	assert.Equal(t, "1+", tape.String())
}

func TestTape_StayKeepsHead(t *testing.T) {
	tape := NewTape(domain.MustOperand(2), domain.MustOperand(2))
	tape.Move(domain.Stay)
	assert.Equal(t, 1, tape.Head())
}

func TestTape_StringAllBlank(t *testing.T) {
	tape := NewTape(domain.Operand{}, domain.Operand{})
	tape.Write(domain.SymbolBlank)
	assert.Equal(t, "_", tape.String())
}

func TestTape_StringKeepsInnerBlanks(t *testing.T) {
	tape := NewTape(domain.MustOperand(2), domain.MustOperand(1))
	tape.Move(domain.Right)
	tape.Write(domain.SymbolBlank)
	assert.Equal(t, "1_+1", tape.String())
	assert.Equal(t, 2, tape.Count(domain.SymbolOne))
}
