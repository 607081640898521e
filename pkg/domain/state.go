package domain

// StateID identifies a machine state.
type StateID string

const (
	Q0 StateID = "q0"
	// Q1 is declared for documentation only. No rule enters or leaves it.
	Q1 StateID = "q1"
	Q2 StateID = "q2"
	Q3 StateID = "q3"
	Q4 StateID = "q4"
	Q5 StateID = "q5"

	StateInitial = Q0
	StateAccept  = Q5
)

var stateDescriptions = map[StateID]string{
	Q0: "Initial state - skip over the first operand",
	Q1: "Reserved - never reached",
	Q2: "Separator crossed - expect the second operand",
	Q3: "Scan to the end of the second operand",
	Q4: "Step back onto the last symbol",
	Q5: "Halt state - accept",
}

// States returns every declared state in order.
func States() []StateID {
	return []StateID{Q0, Q1, Q2, Q3, Q4, Q5}
}

// Terminal reports whether the state is the accepting state.
func (s StateID) Terminal() bool {
	return s == StateAccept
}

// Description returns a human readable role for the state.
func (s StateID) Description() string {
	return stateDescriptions[s]
}

func (s StateID) String() string {
	return string(s)
}
