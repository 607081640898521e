package runtime

import "github.com/aretw0/turing/pkg/domain"

// program is the unary-addition transition function.
// The separator is never rewritten: the sum is the count of '1' cells.
var program = []domain.Rule{
	{From: domain.Q0, Read: domain.SymbolOne, To: domain.Q0, Write: domain.SymbolOne, Move: domain.Right},
	{From: domain.Q0, Read: domain.SymbolSeparator, To: domain.Q2, Write: domain.SymbolSeparator, Move: domain.Right},
	{From: domain.Q2, Read: domain.SymbolOne, To: domain.Q3, Write: domain.SymbolOne, Move: domain.Right},
	{From: domain.Q3, Read: domain.SymbolOne, To: domain.Q3, Write: domain.SymbolOne, Move: domain.Right},
	{From: domain.Q3, Read: domain.SymbolBlank, To: domain.Q4, Write: domain.SymbolBlank, Move: domain.Left},
	{From: domain.Q4, Read: domain.SymbolOne, To: domain.Q5, Write: domain.SymbolOne, Move: domain.Stay},
}

// Table is a read-only transition lookup.
type Table struct {
	rules map[domain.Key]domain.Rule
	order []domain.Rule
}

// NewTable indexes rules by (state, symbol). Later duplicates win.
func NewTable(rules []domain.Rule) *Table {
	t := &Table{
		rules: make(map[domain.Key]domain.Rule, len(rules)),
		order: make([]domain.Rule, len(rules)),
	}
	copy(t.order, rules)
	for _, r := range rules {
		t.rules[r.Key()] = r
	}
	return t
}

var addition = NewTable(program)

// Addition returns the fixed unary-addition table.
func Addition() *Table {
	return addition
}

// Lookup returns the rule for (state, symbol).
func (t *Table) Lookup(state domain.StateID, symbol domain.Symbol) (domain.Rule, bool) {
	r, ok := t.rules[domain.Key{State: state, Symbol: symbol}]
	return r, ok
}

// Rules returns a copy of the rules in declaration order.
func (t *Table) Rules() []domain.Rule {
	out := make([]domain.Rule, len(t.order))
	copy(out, t.order)
	return out
}
