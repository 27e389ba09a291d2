package mana

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Cost is an ordered sequence of mana symbols; the order is the printed
// order of the cost.
type Cost []Symbol

// ParseCost parses a full cost string: zero or more brace-delimited
// groups with nothing before, between or after them. An empty string is
// the empty cost; anything else that is not fully consumed by the group
// grammar fails.
func ParseCost(s string) (Cost, error) {
	cost := Cost{}

	for len(s) > 0 {
		if s[0] != '{' {
			return nil, errors.Wrapf(ErrInvalidMana, "failed to parse %q: expected '{'", s)
		}

		sym, rest, ok := parseSymbol(s[1:])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidMana, "failed to parse %q", s)
		}
		if len(rest) == 0 || rest[0] != '}' {
			return nil, errors.Wrapf(ErrInvalidMana, "failed to parse %q: expected '}'", s)
		}

		cost = append(cost, sym)
		s = rest[1:]
	}

	return cost, nil
}

func (c Cost) String() string {
	var b strings.Builder
	for _, sym := range c {
		b.WriteByte('{')
		b.WriteString(sym.String())
		b.WriteByte('}')
	}
	return b.String()
}

// ManaValue returns the total mana value of the cost.
func (c Cost) ManaValue() int {
	total := 0
	for _, sym := range c {
		total += sym.ManaValue()
	}
	return total
}

// NormalizeHybrid puts the two colors of every two-color hybrid symbol
// into canonical wheel order. The order of the symbols is unaffected.
func (c Cost) NormalizeHybrid() {
	for i, sym := range c {
		c[i] = normalizeSymbol(sym)
	}
}

// Sort orders the symbols into the canonical printed sequence, in
// groups:
//  1. generic mana (X, then Y, then Z, then numbers)
//  2. generic hybrids, by right half color
//  3. colorless mana
//  4. colorless hybrids, by right half color
//  5. colored mana, by left half color, then normal before phyrexian
//     before two-color hybrids, then by right half color
//  6. snow mana
//
// Every pass is stable, so symbols the rules do not distinguish keep
// their input order. Call NormalizeHybrid first for fully canonical
// output.
func (c Cost) Sort() {
	sort.SliceStable(c, func(i, j int) bool {
		return sortBucket(c[i]) < sortBucket(c[j])
	})

	_, rest := cutRun(c, func(sym Symbol) bool {
		_, ok := sym.(Generic)
		return ok
	})

	monos, rest := cutRun(rest, isSplitKind(SplitMono))
	sortByColor(monos, rightHalfColor)

	_, rest = cutRun(rest, func(sym Symbol) bool {
		_, ok := sym.(Colorless)
		return ok
	})

	hybrids, rest := cutRun(rest, isSplitKind(SplitColorless))
	sortByColor(hybrids, rightHalfColor)

	colored, snow := cutRun(rest, func(sym Symbol) bool {
		if _, ok := sym.(Single); ok {
			return true
		}
		sp, ok := sym.(Split)
		return ok && sp.Kind == SplitDuo
	})

	sortByColor(colored, leftHalfColor)

	// Each run of symbols sharing a left half color sorts on its own.
	for len(colored) > 0 {
		left := leftHalfColor(colored[0])
		var run Cost
		run, colored = cutRun(colored, func(sym Symbol) bool {
			return leftHalfColor(sym) == left
		})
		sortColoredRun(run)
	}

	for _, sym := range snow {
		if _, ok := sym.(Snow); !ok {
			panic("mana: non-snow symbol after the colored run")
		}
	}
}

// sortBucket is the primary grouping key of the sort pipeline.
func sortBucket(sym Symbol) int {
	switch sym := sym.(type) {
	case Generic:
		switch sym.Kind {
		case GenericX:
			return 0
		case GenericY:
			return 1
		case GenericZ:
			return 2
		default:
			return 3
		}
	case Split:
		switch sym.Kind {
		case SplitMono:
			return 4
		case SplitColorless:
			return 6
		default:
			return 7
		}
	case Colorless:
		return 5
	case Single:
		return 7
	default:
		return 8 // Snow
	}
}

func sortColoredRun(run Cost) {
	sort.SliceStable(run, func(i, j int) bool {
		return coloredKey(run[i]) < coloredKey(run[j])
	})

	_, rest := cutRun(run, func(sym Symbol) bool {
		_, ok := sym.(Single)
		return ok
	})

	plain, phyrexian := cutRun(rest, func(sym Symbol) bool {
		sp, ok := sym.(Split)
		return ok && !sp.Phyrexian
	})

	sortByColor(plain, rightHalfColor)
	sortByColor(phyrexian, rightHalfColor)
}

// coloredKey orders symbols sharing a left half color: normal singles,
// then phyrexian singles, then plain duos, then phyrexian duos.
func coloredKey(sym Symbol) int {
	switch sym := sym.(type) {
	case Single:
		if sym.Phyrexian {
			return 1
		}
		return 0
	case Split:
		if sym.Phyrexian {
			return 3
		}
		return 2
	}
	panic("mana: unexpected symbol kind in colored run")
}

// sortByColor stably sorts a run by the wheel rank of one of its color
// accessors, within the subset of colors actually present in the run.
func sortByColor(run Cost, color func(Symbol) Color) {
	var set colorSet
	for _, sym := range run {
		set.add(color(sym))
	}
	order := set.orderValues()

	sort.SliceStable(run, func(i, j int) bool {
		return order[color(run[i])] < order[color(run[j])]
	})
}

// cutRun splits off the longest prefix whose symbols satisfy pred.
func cutRun(c Cost, pred func(Symbol) bool) (head, rest Cost) {
	i := 0
	for i < len(c) && pred(c[i]) {
		i++
	}
	return c[:i], c[i:]
}

func isSplitKind(kind SplitKind) func(Symbol) bool {
	return func(sym Symbol) bool {
		sp, ok := sym.(Split)
		return ok && sp.Kind == kind
	}
}

func leftHalfColor(sym Symbol) Color {
	c, ok := sym.LeftHalfColor()
	if !ok {
		panic("mana: symbol has no left half color")
	}
	return c
}

func rightHalfColor(sym Symbol) Color {
	c, ok := sym.RightHalfColor()
	if !ok {
		panic("mana: symbol has no right half color")
	}
	return c
}
