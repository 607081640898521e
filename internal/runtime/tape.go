package runtime

import (
	"bytes"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is a growable run of cells with a blank sentinel at each end.
// The head always indexes a materialized cell.
type Tape struct {
	cells []domain.Symbol
	head  int
}

// NewTape lays out [_] a [+] b [_] and places the head on the first cell of a.
func NewTape(a, b domain.Operand) *Tape {
	cells := make([]domain.Symbol, 0, a.Value()+b.Value()+3)
	cells = append(cells, domain.SymbolBlank)
	for i := 0; i < a.Value(); i++ {
		cells = append(cells, domain.SymbolOne)
	}
	cells = append(cells, domain.SymbolSeparator)
	for i := 0; i < b.Value(); i++ {
		cells = append(cells, domain.SymbolOne)
	}
	cells = append(cells, domain.SymbolBlank)

	return &Tape{cells: cells, head: 1}
}

// Head returns the current head index.
func (t *Tape) Head() int {
	return t.head
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Read returns the symbol under the head.
func (t *Tape) Read() domain.Symbol {
	return t.cells[t.head]
}

// Write replaces the symbol under the head.
func (t *Tape) Write(s domain.Symbol) {
	t.cells[t.head] = s
}

// Move shifts the head, materializing a blank cell when it would leave the tape.
// Growing on the left re-zeroes the head index.
func (t *Tape) Move(d domain.Direction) {
	t.head += d.Delta()
	switch {
	case t.head >= len(t.cells):
		t.cells = append(t.cells, domain.SymbolBlank)
	case t.head < 0:
		t.cells = append([]domain.Symbol{domain.SymbolBlank}, t.cells...)
		t.head = 0
	}
}

// String renders the tape trimmed of surrounding blanks. An all-blank tape renders as "_".
func (t *Tape) String() string {
	raw := make([]byte, len(t.cells))
	for i, c := range t.cells {
		raw[i] = byte(c)
	}
	trimmed := bytes.Trim(raw, domain.SymbolBlank.String())
	if len(trimmed) == 0 {
		return domain.SymbolBlank.String()
	}
	return string(trimmed)
}

// Count returns how many cells hold s.
func (t *Tape) Count(s domain.Symbol) int {
	n := 0
	for _, c := range t.cells {
		if c == s {
			n++
		}
	}
	return n
}
