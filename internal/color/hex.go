package color

import (
	"math"
	"strconv"
)

// HexToRGBA decodes "#RGB" or "#RRGGBB". Alpha is always 1.
//
// Anything else, including the alpha-extended "#RRGGBBAA" form, decodes to
// Black without signalling an error. Use Parse to detect bad input.
func HexToRGBA(hex string) Color {
	if len(hex) == 0 || hex[0] != '#' {
		return Black
	}
	var pairs [3]string
	switch len(hex) {
	case 4:
		for i := range pairs {
			d := hex[i+1 : i+2]
			pairs[i] = d + d
		}
	case 7:
		for i := range pairs {
			pairs[i] = hex[1+2*i : 3+2*i]
		}
	default:
		return Black
	}

	var ch [3]int
	for i, p := range pairs {
		v, ok := parseByte(p)
		if !ok {
			return Black
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 1}
}

// RGBAToHex encodes channels as lowercase two-digit hex. When a is exactly 1
// the result is "#rrggbb"; otherwise round(a*255) is appended as "#rrggbbaa".
//
// Values are not validated: a channel outside [0,255] produces a malformed
// string (e.g. 256 encodes as "100"). Color.Hex clamps first.
func RGBAToHex(r, g, b int, a float64) string {
	hex := "#" + hexByte(r) + hexByte(g) + hexByte(b)
	if a == 1 {
		return hex
	}
	return hex + hexByte(alphaByte(a))
}

// RGBToHex encodes an opaque color.
func RGBToHex(r, g, b int) string {
	return RGBAToHex(r, g, b, 1)
}

// alphaByte scales a to 0..255 rounding halves up, so 0.5 becomes 128.
// NaN and infinities encode as 0.
func alphaByte(a float64) int {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return int(math.Floor(a*255 + 0.5))
}

func hexByte(v int) string {
	s := strconv.FormatInt(int64(v), 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func parseByte(s string) (int, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
