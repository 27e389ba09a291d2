package mana

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidMana is returned when input does not match the mana symbol
// grammar. Parsing is all or nothing; there are no partial results.
var ErrInvalidMana = errors.New("invalid mana symbol")

// Symbol is one mana symbol in a cost. The implementations are exactly
// Single, Generic, Split, Colorless and Snow.
type Symbol interface {
	fmt.Stringer

	// ManaValue is the symbol's contribution to the total mana value.
	ManaValue() int

	// LeftHalfColor is the color nearest the left side of the symbol,
	// if any.
	LeftHalfColor() (Color, bool)

	// RightHalfColor is the color nearest the right side of the symbol,
	// if any.
	RightHalfColor() (Color, bool)

	isSymbol()
}

// Colorless is the plain colorless mana symbol C.
type Colorless struct{}

func (Colorless) String() string { return "C" }

// ManaValue returns the mana value contribution of the symbol.
func (Colorless) ManaValue() int { return 1 }

// LeftHalfColor implements Symbol. Colorless has no color.
func (Colorless) LeftHalfColor() (Color, bool) { return 0, false }

// RightHalfColor implements Symbol. Colorless has no color.
func (Colorless) RightHalfColor() (Color, bool) { return 0, false }

func (Colorless) isSymbol() {}

// Snow is the snow mana symbol S.
type Snow struct{}

func (Snow) String() string { return "S" }

// ManaValue returns the mana value contribution of the symbol.
func (Snow) ManaValue() int { return 1 }

// LeftHalfColor implements Symbol. Snow has no color.
func (Snow) LeftHalfColor() (Color, bool) { return 0, false }

// RightHalfColor implements Symbol. Snow has no color.
func (Snow) RightHalfColor() (Color, bool) { return 0, false }

func (Snow) isSymbol() {}

// parseSymbol consumes one symbol from the front of s. The alternatives
// are ordered so that no kind's text is swallowed as a prefix of
// another's: split forms first, then generic, single, and the C and S
// literals.
func parseSymbol(s string) (Symbol, string, bool) {
	if sp, rest, ok := parseSplit(s); ok {
		return sp, rest, true
	}
	if g, rest, ok := parseGeneric(s); ok {
		return g, rest, true
	}
	if sg, rest, ok := parseSingle(s); ok {
		return sg, rest, true
	}
	if len(s) > 0 {
		switch s[0] {
		case 'C':
			return Colorless{}, s[1:], true
		case 'S':
			return Snow{}, s[1:], true
		}
	}
	return nil, s, false
}

// ParseSymbol parses a single mana symbol, with or without a single
// pair of surrounding braces. The whole input must be consumed.
func ParseSymbol(s string) (Symbol, error) {
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		if sym, rest, ok := parseSymbol(s[1 : len(s)-1]); ok && len(rest) == 0 {
			return sym, nil
		}
		return nil, errors.Wrapf(ErrInvalidMana, "failed to parse %q", s)
	}

	if sym, rest, ok := parseSymbol(s); ok && len(rest) == 0 {
		return sym, nil
	}

	return nil, errors.Wrapf(ErrInvalidMana, "failed to parse %q", s)
}

// normalizeSymbol canonicalizes the color order of hybrid symbols.
func normalizeSymbol(sym Symbol) Symbol {
	if sp, ok := sym.(Split); ok {
		return sp.normalize()
	}
	return sym
}
