// Package render draws mana symbols as SVG images and as HTML <img>
// tags with the SVG embedded as a base64 data URI.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	mana "github.com/m0t0k1ch1/mtg-mana-go"
)

// width of the symbol circle in user units
const width = 32.0

// Fills of the five colors.
const (
	hexWhite = "#fffbd5"
	hexBlue  = "#aae0fa"
	hexBlack = "#cbc2bf"
	hexRed   = "#f9aa8f"
	hexGreen = "#9bd3ae"

	// generic and colorless fill
	hexColorless = "#cbc2bf"
)

const (
	phyrexianGlyph = "Φ"
	snowGlyph      = "❄"
)

// Config controls SVG output.
type Config struct {
	// Shadow draws a circular drop shadow behind the symbol.
	Shadow bool

	// ShadowOffset is how far the shadow is offset from the main
	// circle. Even if the shadow is not drawn, it affects the size of
	// the margin around the main circle.
	ShadowOffset float64
}

// DefaultConfig returns the default SVG options.
func DefaultConfig() Config {
	return Config{Shadow: true, ShadowOffset: 1.5}
}

// WriteSymbol writes the symbol as a standalone SVG document.
func WriteSymbol(w io.Writer, sym mana.Symbol, cfg Config) {
	canvas := svg.New(w)

	off := cfg.ShadowOffset
	canvas.Start(width+2*off, width+2*off,
		fmt.Sprintf(`viewBox="%g %g %g %g"`, -off, -off, width+2*off, width+2*off))

	if cfg.Shadow {
		canvas.Circle(width/2-off, width/2+off, width/2, "fill:black;stroke:none")
	}

	switch sym := sym.(type) {
	case mana.Single:
		circle(canvas, hexColor(sym.Color))
		if sym.Phyrexian {
			glyph(canvas, phyrexianGlyph)
		} else {
			glyph(canvas, sym.Color.String())
		}

	case mana.Generic:
		circle(canvas, hexColorless)
		glyph(canvas, sym.String())

	case mana.Split:
		switch sym.Kind {
		case mana.SplitMono:
			splitCircle(canvas, hexColorless, hexColor(sym.B))
			halfGlyphs(canvas, strconv.Itoa(sym.Value), sym.B.String())
		case mana.SplitColorless:
			splitCircle(canvas, hexColorless, hexColor(sym.B))
			halfGlyphs(canvas, "C", sym.B.String())
		default:
			splitCircle(canvas, hexColor(sym.A), hexColor(sym.B))
			if sym.Phyrexian {
				halfGlyphs(canvas, phyrexianGlyph, phyrexianGlyph)
			} else {
				halfGlyphs(canvas, sym.A.String(), sym.B.String())
			}
		}

	case mana.Colorless:
		circle(canvas, hexColorless)
		glyph(canvas, "C")

	case mana.Snow:
		circle(canvas, hexColorless)
		glyph(canvas, snowGlyph)
	}

	canvas.End()
}

func hexColor(c mana.Color) string {
	switch c {
	case mana.White:
		return hexWhite
	case mana.Blue:
		return hexBlue
	case mana.Black:
		return hexBlack
	case mana.Red:
		return hexRed
	default:
		return hexGreen
	}
}

func circle(canvas *svg.SVG, fill string) {
	canvas.Circle(width/2, width/2, width/2, "fill:"+fill+";stroke:none")
}

// splitCircle draws the two half discs of a hybrid symbol, cut along
// the top-left to bottom-right diagonal.
func splitCircle(canvas *svg.SVG, fillLeft, fillRight string) {
	r := width / 2
	xr := math.Cos(math.Pi/4)*r + r
	yr := -math.Sin(math.Pi/4)*r + r
	xl := math.Cos(math.Pi/4+math.Pi)*r + r
	yl := -math.Sin(math.Pi/4+math.Pi)*r + r

	canvas.Path(
		fmt.Sprintf("M%.4f,%.4f A%g,%g 0 0 1 %.4f,%.4f Z", xr, yr, r, r, xl, yl),
		"fill:"+fillRight)
	canvas.Path(
		fmt.Sprintf("M%.4f,%.4f A%g,%g 0 0 0 %.4f,%.4f Z", xr, yr, r, r, xl, yl),
		"fill:"+fillLeft)
}

// glyph places text in the center of the circle. Symbols are lettered
// with their canonical text; no glyph artwork is bundled.
func glyph(canvas *svg.SVG, s string) {
	canvas.Text(width/2, width/2, s, glyphStyle(width*0.5))
}

// halfGlyphs places the two halves of a split symbol on the diagonal
// centers of their half discs.
func halfGlyphs(canvas *svg.SVG, left, right string) {
	dx := math.Cos(math.Pi/4) * (width / 4)
	dy := math.Sin(math.Pi/4) * (width / 4)

	canvas.Text(width/2+dx, width/2+dy, right, glyphStyle(width*0.3))
	canvas.Text(width/2-dx, width/2-dy, left, glyphStyle(width*0.3))
}

func glyphStyle(size float64) string {
	return fmt.Sprintf(
		"font-family:sans-serif;font-size:%gpx;font-weight:bold;fill:black;text-anchor:middle;dominant-baseline:central",
		size)
}
