package domain

// Symbol is a single tape cell value.
type Symbol byte

const (
	SymbolOne       Symbol = '1'
	SymbolSeparator Symbol = '+'
	SymbolBlank     Symbol = '_'
)

// Symbols lists the complete alphabet.
func Symbols() []Symbol {
	return []Symbol{SymbolOne, SymbolSeparator, SymbolBlank}
}

// Valid reports whether s belongs to the alphabet.
func (s Symbol) Valid() bool {
	switch s {
	case SymbolOne, SymbolSeparator, SymbolBlank:
		return true
	}
	return false
}

func (s Symbol) String() string {
	return string(rune(s))
}

// MarshalText encodes the symbol as its single character.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

// UnmarshalText decodes a single character symbol.
func (s *Symbol) UnmarshalText(text []byte) error {
	if len(text) != 1 || !Symbol(text[0]).Valid() {
		return &SymbolError{Value: string(text)}
	}
	*s = Symbol(text[0])
	return nil
}

// Direction is the head movement applied after a write.
type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
	Stay  Direction = "S"
)

// Delta returns the head offset for the direction.
func (d Direction) Delta() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}
