package mana

import (
	"testing"

	"github.com/m0t0k1ch1/mtg-mana-go/internal/testutil"
)

func mustParseCost(t *testing.T, s string) Cost {
	t.Helper()

	cost, err := ParseCost(s)
	if err != nil {
		t.Fatalf("failed to parse cost: %v", err)
	}

	return cost
}

func TestParseCostEmpty(t *testing.T) {
	testutil.Equal(t, Cost{}, mustParseCost(t, ""))
}

// https://scryfall.com/card/hop/96/arsenal-thresher
func TestParseCostArsenalThresher(t *testing.T) {
	s := "{2}{W/B}{U}"
	cost := mustParseCost(t, s)

	testutil.Equal(t, Cost{
		Generic{Kind: GenericNumber, Value: 2},
		Split{Kind: SplitDuo, A: White, B: Black},
		Single{Color: Blue},
	}, cost)
	testutil.Equal(t, 4, cost.ManaValue())
	testutil.Equal(t, s, cost.String())
}

func TestParseCostRoundTrip(t *testing.T) {
	s := "{X}{Y}{4}{2/B}{2/R}{C}{C/U}{B}{B/R/P}{R/P}{R/W}{G}{G/W/P}{W}{W/U}{S}"
	testutil.Equal(t, s, mustParseCost(t, s).String())
}

func TestParseCostInvalid(t *testing.T) {
	tcs := []string{
		"{}",
		"U",
		"U ",
		" U",
		"{W}{",
		"{W} {U}",
		"{W}x",
		"{W}{U",
		"{W/}",
		"{W}}",
	}

	for _, tc := range tcs {
		t.Run(tc, func(t *testing.T) {
			_, err := ParseCost(tc)
			testutil.ErrorIs(t, err, ErrInvalidMana)
		})
	}
}

func TestCostManaValue(t *testing.T) {
	testutil.Equal(t, 6, mustParseCost(t, "{X}{Y}{4}{2/B}").ManaValue())
}

func TestNormalizeHybrid(t *testing.T) {
	// Every two-color pair in its official printed order, parsed from
	// the reversed notation.
	tcs := []struct {
		in   string
		want string
	}{
		{"{U/W}", "{W/U}"},
		{"{B/U}", "{U/B}"},
		{"{R/B}", "{B/R}"},
		{"{G/R}", "{R/G}"},
		{"{W/G}", "{G/W}"},
		{"{B/W}", "{W/B}"},
		{"{R/U}", "{U/R}"},
		{"{G/B}", "{B/G}"},
		{"{W/R}", "{R/W}"},
		{"{U/G}", "{G/U}"},
		{"{G/W/P}", "{G/W/P}"},
		{"{W/G/P}", "{G/W/P}"},
		// only two-color hybrids are touched
		{"{C/G}{2/R}{W}{S}", "{C/G}{2/R}{W}{S}"},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			cost := mustParseCost(t, tc.in)
			cost.NormalizeHybrid()
			testutil.Equal(t, tc.want, cost.String())
		})
	}
}

func TestNormalizeHybridIdempotent(t *testing.T) {
	cost := mustParseCost(t, "{U/W}{R/B}{G/W/P}")
	cost.NormalizeHybrid()
	once := cost.String()
	cost.NormalizeHybrid()
	testutil.Equal(t, once, cost.String())
}

func TestSort(t *testing.T) {
	before := "{R/P}{X}{C/U}{2/B}{W}{W/U}{B}{B/R/P}{2/R}{G}{C}{G/W/P}{S}{4}{Y}{R/W}"
	after := "{X}{Y}{4}{2/B}{2/R}{C}{C/U}{B}{B/R/P}{R/P}{R/W}{G}{G/W/P}{W}{W/U}{S}"

	cost := mustParseCost(t, before)
	cost.NormalizeHybrid()
	cost.Sort()

	testutil.Equal(t, after, cost.String())
}

func TestSortIdempotent(t *testing.T) {
	cost := mustParseCost(t, "{R/P}{X}{C/U}{2/B}{W}{W/U}{B}{B/R/P}{2/R}{G}{C}{G/W/P}{S}{4}{Y}{R/W}")
	cost.NormalizeHybrid()
	cost.Sort()
	once := cost.String()
	cost.Sort()
	testutil.Equal(t, once, cost.String())
}

func TestSortKeepsManaValue(t *testing.T) {
	cost := mustParseCost(t, "{R/P}{X}{C/U}{2/B}{W}{W/U}{B}{B/R/P}{2/R}{G}{C}{G/W/P}{S}{4}{Y}{R/W}")
	before := cost.ManaValue()
	cost.NormalizeHybrid()
	cost.Sort()
	testutil.Equal(t, before, cost.ManaValue())
}

// Number symbols are indistinguishable to the sort rules and must keep
// their input order.
func TestSortNumberStability(t *testing.T) {
	cost := mustParseCost(t, "{3}{1}{2}")
	cost.Sort()
	testutil.Equal(t, "{3}{1}{2}", cost.String())
}

func TestSortEmpty(t *testing.T) {
	cost := Cost{}
	cost.Sort()
	testutil.Equal(t, "", cost.String())
}
