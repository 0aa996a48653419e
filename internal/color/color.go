package color

import (
	stdcolor "image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color. Channels are expected in [0,255] and alpha in [0,1].
// The zero value is fully transparent black; use New for an opaque color.
type Color struct {
	R int     `json:"r" yaml:"r"`
	G int     `json:"g" yaml:"g"`
	B int     `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// Black is what HexToRGBA returns for input it cannot decode.
var Black = Color{A: 1}

// New returns an opaque color.
func New(r, g, b int) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewRGBA returns a color with an explicit alpha.
func NewRGBA(r, g, b int, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGBA converts a standard library 8-bit color. Alpha is not un-premultiplied.
func FromRGBA(c stdcolor.RGBA) Color {
	return Color{R: int(c.R), G: int(c.G), B: int(c.B), A: float64(c.A) / 255}
}

// Valid reports whether every channel and the alpha are within range.
func (c Color) Valid() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B) && c.A >= 0 && c.A <= 1
}

// Clamp limits channels to [0,255] and alpha to [0,1]. NaN alpha becomes 1.
func (c Color) Clamp() Color {
	a := c.A
	switch {
	case math.IsNaN(a):
		a = 1
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	return Color{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: a}
}

// Hex encodes the clamped color, as #rrggbb when opaque and #rrggbbaa otherwise.
func (c Color) Hex() string {
	if !c.Valid() {
		c = c.Clamp()
	}
	return RGBAToHex(c.R, c.G, c.B, c.A)
}

// String renders the CSS functional notation, e.g. "rgba(255, 0, 170, 0.5)".
func (c Color) String() string {
	return "rgba(" + strconv.Itoa(c.R) + ", " + strconv.Itoa(c.G) + ", " + strconv.Itoa(c.B) + ", " +
		strconv.FormatFloat(c.A, 'f', -1, 64) + ")"
}

// Colorful converts the clamped channels to a go-colorful color. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	cc := c.Clamp()
	return colorful.Color{R: float64(cc.R) / 255, G: float64(cc.G) / 255, B: float64(cc.B) / 255}
}

func fromColorful(cf colorful.Color, a float64) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: int(r), G: int(g), B: int(b), A: a}
}

func inByte(v int) bool { return v >= 0 && v <= 255 }

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
