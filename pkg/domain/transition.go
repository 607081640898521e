package domain

import "fmt"

// Key is the lookup key of the transition function.
type Key struct {
	State  StateID
	Symbol Symbol
}

// Rule defines one entry of the transition function:
// δ(From, Read) = (To, Write, Move).
type Rule struct {
	From  StateID   `json:"from" yaml:"from"`
	Read  Symbol    `json:"read" yaml:"read"`
	To    StateID   `json:"to" yaml:"to"`
	Write Symbol    `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

// Key returns the lookup key of the rule.
func (r Rule) Key() Key {
	return Key{State: r.From, Symbol: r.Read}
}

func (r Rule) String() string {
	return fmt.Sprintf("δ(%s, %s) = (%s, %s, %s)", r.From, r.Read, r.To, r.Write, r.Move)
}
