package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Machine holds the mutable state of a single run: tape, head, current state,
// step counter and trace. It is built per run and discarded afterwards.
type Machine struct {
	table *Table
	tape  *Tape
	state domain.StateID
	steps int
	trace []domain.TraceEntry

	// undefined is set when the last Step found no matching rule.
	undefined bool
}

// NewMachine prepares a machine for a + b using the addition table.
func NewMachine(a, b domain.Operand) *Machine {
	return newMachine(Addition(), a, b)
}

func newMachine(table *Table, a, b domain.Operand) *Machine {
	return &Machine{
		table: table,
		tape:  NewTape(a, b),
		state: domain.StateInitial,
	}
}

// State returns the current state.
func (m *Machine) State() domain.StateID {
	return m.state
}

// Steps returns the number of transitions applied so far.
func (m *Machine) Steps() int {
	return m.steps
}

// Tape exposes the tape for inspection.
func (m *Machine) Tape() *Tape {
	return m.tape
}

// Trace returns the entries recorded so far.
func (m *Machine) Trace() []domain.TraceEntry {
	return m.trace
}

// Halted reports whether the machine cannot advance any further.
func (m *Machine) Halted() bool {
	return m.state.Terminal() || m.undefined
}

// Status reports how the machine stopped. A machine that can still advance
// reports StatusNonConvergent.
func (m *Machine) Status() domain.Status {
	switch {
	case m.state.Terminal():
		return domain.StatusAccepted
	case m.undefined:
		return domain.StatusUndefinedTransition
	}
	return domain.StatusNonConvergent
}

// Step applies one transition and reports whether the machine is now halted.
//
// A machine already in the accepting state returns true without recording
// anything. A missing rule halts the machine in place: state and tape are left
// as they are and no trace entry is recorded.
func (m *Machine) Step() bool {
	if m.state.Terminal() {
		return true
	}

	read := m.tape.Read()
	rule, ok := m.table.Lookup(m.state, read)
	if !ok {
		m.undefined = true
		return true
	}

	m.trace = append(m.trace, domain.TraceEntry{
		State:        m.state,
		Head:         m.tape.Head(),
		Read:         read,
		Write:        rule.Write,
		Direction:    rule.Move,
		NextState:    rule.To,
		TapeSnapshot: m.tape.String(),
	})

	m.tape.Write(rule.Write)
	m.tape.Move(rule.Move)
	m.state = rule.To
	m.steps++

	return m.state.Terminal()
}

// settle marks the machine halted when no rule applies to the current cell.
// Unlike Step it never applies a transition, so it is safe to call at the ceiling.
func (m *Machine) settle() {
	if m.state.Terminal() || m.undefined {
		return
	}
	if _, ok := m.table.Lookup(m.state, m.tape.Read()); !ok {
		m.undefined = true
	}
}
