package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	mana "github.com/m0t0k1ch1/mtg-mana-go"
)

// WriteHTML writes the symbol as an <img> tag embedding the SVG as a
// base64 data URI. With includeCSS the tag carries inline sizing so it
// lines up with surrounding text.
func WriteHTML(w io.Writer, sym mana.Symbol, cfg Config, includeCSS bool) error {
	var buf bytes.Buffer
	WriteSymbol(&buf, sym, cfg)

	css := ""
	if includeCSS {
		css = ` style="height: 1.5em; width: 1.7em; vertical-align: middle"`
	}

	_, err := fmt.Fprintf(w,
		`<img%s alt="{%s}" title="%s" src="data:image/svg+xml;base64,%s">`,
		css, sym, Name(sym), base64.StdEncoding.EncodeToString(buf.Bytes()))

	return errors.Wrap(err, "failed to write img tag")
}

// HTML returns the symbol as an <img> tag with default SVG options.
func HTML(sym mana.Symbol, includeCSS bool) string {
	var b strings.Builder
	_ = WriteHTML(&b, sym, DefaultConfig(), includeCSS)
	return b.String()
}

// WriteCostHTML writes one <img> tag per symbol of the cost, in order.
func WriteCostHTML(w io.Writer, cost mana.Cost, cfg Config, includeCSS bool) error {
	for _, sym := range cost {
		if err := WriteHTML(w, sym, cfg, includeCSS); err != nil {
			return err
		}
	}
	return nil
}

// Name returns a short English description of the symbol, used as the
// image title.
func Name(sym mana.Symbol) string {
	switch sym := sym.(type) {
	case mana.Single:
		if sym.Phyrexian {
			return fmt.Sprintf("Phyrexian %s mana", colorName(sym.Color))
		}
		return capitalize(colorName(sym.Color)) + " mana"

	case mana.Generic:
		switch sym.Kind {
		case mana.GenericX:
			return "X generic mana"
		case mana.GenericY:
			return "Y generic mana"
		case mana.GenericZ:
			return "Z generic mana"
		default:
			return fmt.Sprintf("%d generic mana", sym.Value)
		}

	case mana.Split:
		switch sym.Kind {
		case mana.SplitMono:
			return fmt.Sprintf("Hybrid mana: %d generic or %s", sym.Value, colorName(sym.B))
		case mana.SplitColorless:
			return fmt.Sprintf("Hybrid mana: colorless or %s", colorName(sym.B))
		default:
			if sym.Phyrexian {
				return fmt.Sprintf("Phyrexian hybrid mana: %s or %s", colorName(sym.A), colorName(sym.B))
			}
			return fmt.Sprintf("Hybrid mana: %s or %s", colorName(sym.A), colorName(sym.B))
		}

	case mana.Colorless:
		return "Colorless mana"

	default:
		return "Snow mana"
	}
}

func colorName(c mana.Color) string {
	switch c {
	case mana.White:
		return "white"
	case mana.Blue:
		return "blue"
	case mana.Black:
		return "black"
	case mana.Red:
		return "red"
	default:
		return "green"
	}
}

func capitalize(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}
