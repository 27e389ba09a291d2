package mana

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitKind discriminates the variants of a Split symbol.
type SplitKind uint8

const (
	// SplitMono is a generic-or-color hybrid such as 2/G.
	SplitMono SplitKind = iota
	// SplitColorless is a colorless-or-color hybrid such as C/U.
	SplitColorless
	// SplitDuo is a color-or-color hybrid such as W/U, optionally
	// phyrexian such as G/W/P.
	SplitDuo
)

// Split is a hybrid mana symbol, payable by either of two alternatives.
type Split struct {
	Kind      SplitKind
	Value     int   // generic half of a SplitMono
	A         Color // left color of a SplitDuo
	B         Color // right color; the colored half for SplitMono and SplitColorless
	Phyrexian bool  // SplitDuo only
}

func (s Split) String() string {
	switch s.Kind {
	case SplitMono:
		return fmt.Sprintf("%d/%s", s.Value, s.B)
	case SplitColorless:
		return "C/" + s.B.String()
	default:
		if s.Phyrexian {
			return fmt.Sprintf("%s/%s/P", s.A, s.B)
		}
		return fmt.Sprintf("%s/%s", s.A, s.B)
	}
}

// ManaValue returns the mana value contribution of the symbol.
func (s Split) ManaValue() int {
	if s.Kind == SplitMono {
		return s.Value
	}
	return 1
}

// LeftHalfColor implements Symbol. Only a SplitDuo has a left color.
func (s Split) LeftHalfColor() (Color, bool) {
	if s.Kind == SplitDuo {
		return s.A, true
	}
	return 0, false
}

// RightHalfColor implements Symbol.
func (s Split) RightHalfColor() (Color, bool) {
	return s.B, true
}

func (Split) isSymbol() {}

// normalize puts the two colors of a SplitDuo into canonical wheel
// order. Other kinds are returned unchanged.
func (s Split) normalize() Split {
	if s.Kind != SplitDuo {
		return s
	}

	var set colorSet
	set.add(s.A)
	set.add(s.B)

	order := set.orderValues()
	if order[s.A] > order[s.B] {
		s.A, s.B = s.B, s.A
	}

	return s
}

func parseSplit(s string) (Split, string, bool) {
	// C/<color>; tried first since C matches no other split prefix
	if r, ok := strings.CutPrefix(s, "C/"); ok {
		if c, r, ok := parseColor(r); ok {
			return Split{Kind: SplitColorless, B: c}, r, true
		}
	}

	// <color>/<color>/P, then <color>/<color>; the phyrexian form
	// shares the two-color prefix and is attempted first
	if a, r, ok := parseColor(s); ok {
		if r, ok := strings.CutPrefix(r, "/"); ok {
			if b, r, ok := parseColor(r); ok {
				if r2, ok := strings.CutPrefix(r, "/P"); ok {
					return Split{Kind: SplitDuo, A: a, B: b, Phyrexian: true}, r2, true
				}
				return Split{Kind: SplitDuo, A: a, B: b}, r, true
			}
		}
	}

	// <digits>/<color>
	if digits, r := cutDigits(s); len(digits) > 0 {
		if r, ok := strings.CutPrefix(r, "/"); ok {
			if c, r, ok := parseColor(r); ok {
				v, err := strconv.Atoi(digits)
				if err == nil {
					return Split{Kind: SplitMono, Value: v, B: c}, r, true
				}
			}
		}
	}

	return Split{}, s, false
}
