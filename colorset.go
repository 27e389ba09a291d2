package mana

// colorSet is a subset of the five colors, one bit per color.
type colorSet uint8

func (s *colorSet) add(c Color) {
	*s |= 1 << c
}

// orderValues returns the canonical wheel rank of each color within the
// subset. Ranks are meaningful only for colors present in the subset;
// entries for absent colors stay zero and must not be compared.
func (s colorSet) orderValues() [5]uint8 {
	return orderTable[s]
}

// orderTable maps each of the 32 color subsets to a per-color rank.
// Built once at package init and never mutated afterwards.
var orderTable = newOrderTable()

func newOrderTable() (table [32][5]uint8) {
	for _, anchor := range AllColors {
		// adjacent pair
		addOrder(&table, anchor, 0, 1)

		// pair two steps apart
		addOrder(&table, anchor, 0, 2)

		// three adjacent colors
		addOrder(&table, anchor, 0, 1, 2)

		// two adjacent colors plus the opposite one; the resulting
		// order follows printed multicolor convention, not wheel
		// distance
		addOrder(&table, anchor, 1, 3, 0)

		// four consecutive colors
		addOrder(&table, anchor, 0, 1, 2, 3)
	}

	// the full wheel
	table[0b11111] = [5]uint8{0, 1, 2, 3, 4}

	return table
}

// addOrder writes the rank entry for the subset reached from anchor via
// the given clockwise offsets. The shapes are chosen so that every
// nontrivial subset is produced by exactly one anchor/offsets pair.
func addOrder(table *[32][5]uint8, anchor Color, offsets ...int) {
	var set colorSet
	for _, off := range offsets {
		set.add(anchor.Next(off))
	}
	for i := 1; i < len(offsets); i++ {
		table[set][anchor.Next(offsets[i])] = uint8(i)
	}
}
