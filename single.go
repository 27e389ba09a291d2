package mana

import "strings"

// Single is a one-colored mana symbol, optionally phyrexian
// (payable with life instead of mana).
type Single struct {
	Color     Color
	Phyrexian bool
}

func (s Single) String() string {
	if s.Phyrexian {
		return s.Color.String() + "/P"
	}
	return s.Color.String()
}

// ManaValue returns the mana value contribution of the symbol.
func (s Single) ManaValue() int {
	return 1
}

// LeftHalfColor implements Symbol. Both halves carry the symbol's color.
func (s Single) LeftHalfColor() (Color, bool) {
	return s.Color, true
}

// RightHalfColor implements Symbol. Both halves carry the symbol's color.
func (s Single) RightHalfColor() (Color, bool) {
	return s.Color, true
}

func (Single) isSymbol() {}

func parseSingle(s string) (Single, string, bool) {
	c, rest, ok := parseColor(s)
	if !ok {
		return Single{}, s, false
	}

	// The phyrexian form shares the color prefix, so it is attempted
	// first and falls back to the plain form.
	if r, ok := strings.CutPrefix(rest, "/P"); ok {
		return Single{Color: c, Phyrexian: true}, r, true
	}

	return Single{Color: c}, rest, true
}
