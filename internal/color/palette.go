package color

import "github.com/lucasb-eyer/go-colorful"

// softAlpha is the opacity of the translucent brand variant.
const softAlpha = 0.14

// Palette is a set of brand shades derived from one primary color.
type Palette struct {
	Brand1 Color // the primary itself, opaque
	Brand2 Color // 10% towards black in CIE-Lab
	Brand3 Color // 20% towards black in CIE-Lab
	Soft   Color // the primary at low opacity
}

// NewPalette derives the brand shades from primary. Out-of-range input is clamped.
func NewPalette(primary Color) Palette {
	base := primary.Clamp()
	base.A = 1
	cf := base.Colorful()
	black := colorful.Color{}
	return Palette{
		Brand1: base,
		Brand2: fromColorful(cf.BlendLab(black, 0.1), 1),
		Brand3: fromColorful(cf.BlendLab(black, 0.2), 1),
		Soft:   Color{R: base.R, G: base.G, B: base.B, A: softAlpha},
	}
}

// Shades returns the palette as ordered name/color pairs.
func (p Palette) Shades() []Shade {
	return []Shade{
		{Name: "brand-1", Color: p.Brand1},
		{Name: "brand-2", Color: p.Brand2},
		{Name: "brand-3", Color: p.Brand3},
		{Name: "brand-soft", Color: p.Soft},
	}
}

// Shade is a named palette entry.
type Shade struct {
	Name  string
	Color Color
}
