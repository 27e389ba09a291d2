package mana

import "strconv"

// GenericKind discriminates the variants of a Generic symbol.
type GenericKind uint8

const (
	GenericNumber GenericKind = iota
	GenericX
	GenericY
	GenericZ
)

// Generic is a generic mana symbol: a fixed number or one of the
// variables X, Y and Z.
type Generic struct {
	Kind  GenericKind
	Value int // meaningful only for GenericNumber
}

func (g Generic) String() string {
	switch g.Kind {
	case GenericX:
		return "X"
	case GenericY:
		return "Y"
	case GenericZ:
		return "Z"
	default:
		return strconv.Itoa(g.Value)
	}
}

// ManaValue returns the mana value contribution of the symbol.
// Variables contribute 0.
func (g Generic) ManaValue() int {
	if g.Kind == GenericNumber {
		return g.Value
	}
	return 0
}

// LeftHalfColor implements Symbol. Generic symbols have no color.
func (g Generic) LeftHalfColor() (Color, bool) {
	return 0, false
}

// RightHalfColor implements Symbol. Generic symbols have no color.
func (g Generic) RightHalfColor() (Color, bool) {
	return 0, false
}

func (Generic) isSymbol() {}

func parseGeneric(s string) (Generic, string, bool) {
	if len(s) > 0 {
		switch s[0] {
		case 'X':
			return Generic{Kind: GenericX}, s[1:], true
		case 'Y':
			return Generic{Kind: GenericY}, s[1:], true
		case 'Z':
			return Generic{Kind: GenericZ}, s[1:], true
		}
	}

	digits, rest := cutDigits(s)
	if len(digits) == 0 {
		return Generic{}, s, false
	}

	v, err := strconv.Atoi(digits)
	if err != nil {
		return Generic{}, s, false
	}

	return Generic{Kind: GenericNumber, Value: v}, rest, true
}

func cutDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
