package mana

// Color is one of the five colors of the color pie, arranged on the
// color wheel in the order White, Blue, Black, Red, Green.
type Color uint8

const (
	White Color = iota // W
	Blue               // U
	Black              // B
	Red                // R
	Green              // G
)

// AllColors lists the five colors in wheel order.
var AllColors = [5]Color{White, Blue, Black, Red, Green}

var colorLetters = [5]byte{'W', 'U', 'B', 'R', 'G'}

// Next returns the color n positions clockwise on the color wheel.
func (c Color) Next(n int) Color {
	return Color((int(c) + n) % 5)
}

// String returns the single letter representing the color.
// White -> W, Blue -> U, etc.
func (c Color) String() string {
	return string(colorLetters[c])
}

func parseColor(s string) (Color, string, bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	for _, c := range AllColors {
		if s[0] == colorLetters[c] {
			return c, s[1:], true
		}
	}
	return 0, s, false
}
