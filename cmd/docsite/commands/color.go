package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/color"
)

// ColorCmd groups the color conversion subcommands.
type ColorCmd struct {
	Hex2RGBA Hex2RGBACmd `cmd:"" name:"hex2rgba" help:"Decode a hex color"`
	RGBA2Hex RGBA2HexCmd `cmd:"" name:"rgba2hex" help:"Encode channels as a hex color"`
	Palette  PaletteCmd  `cmd:"" help:"Show the brand palette derived from a color"`
}

// Hex2RGBACmd decodes "#rgb" or "#rrggbb". Malformed input decodes to opaque
// black unless --strict is set, which also accepts "#rgba" and "#rrggbbaa".
type Hex2RGBACmd struct {
	Hex    string `arg:"" help:"Hex color, e.g. #3451b2 (#3451b280 with --strict)"`
	Strict bool   `help:"Reject malformed input and accept the alpha forms #rgba and #rrggbbaa"`
}

func (c *Hex2RGBACmd) Run(g *Global) error {
	col := color.HexToRGBA(c.Hex)
	if c.Strict {
		parsed, err := color.Parse(c.Hex).ToTuple()
		if err != nil {
			return err
		}
		col = parsed
	}
	_, err := fmt.Fprintln(g.Out, col.String())
	return err
}

// RGBA2HexCmd encodes channels; alpha 1 produces the six digit form.
type RGBA2HexCmd struct {
	R int     `arg:"" help:"Red channel"`
	G int     `arg:"" help:"Green channel"`
	B int     `arg:"" help:"Blue channel"`
	A float64 `arg:"" optional:"" default:"1" help:"Alpha in [0, 1]"`
}

func (c *RGBA2HexCmd) Run(g *Global) error {
	_, err := fmt.Fprintln(g.Out, color.RGBAToHex(c.R, c.G, c.B, c.A))
	return err
}

// PaletteCmd prints the brand shades for a hex or CSS named color.
type PaletteCmd struct {
	Color string `arg:"" help:"Hex color or CSS color name"`
}

func (c *PaletteCmd) Run(g *Global) error {
	primary, err := color.Lookup(c.Color)
	if err != nil {
		return err
	}
	for _, s := range color.NewPalette(primary).Shades() {
		if _, err := fmt.Fprintf(g.Out, "%-11s %s\n", s.Name, s.Color.Hex()); err != nil {
			return err
		}
	}
	return nil
}
