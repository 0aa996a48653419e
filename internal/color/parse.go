package color

import (
	stderrors "errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"git.home.luguber.info/inful/docsite/internal/foundation"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ErrInvalidHex is wrapped by every Parse failure.
var ErrInvalidHex = stderrors.New("invalid hex color")

// ErrUnknownColor is wrapped by Lookup when the input is neither hex nor a CSS color name.
var ErrUnknownColor = stderrors.New("unknown color")

// Parse strictly decodes "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// An alpha digit pair AA decodes to AA/255, so "#RRGGBBff" is opaque.
func Parse(hex string) foundation.Result[Color, error] {
	c, err := parse(hex)
	if err != nil {
		return foundation.Err[Color, error](errors.ColorError("invalid hex color").
			WithContext("value", hex).
			WithCause(err).
			Build())
	}
	return foundation.Ok[Color, error](c)
}

func parse(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		return Color{}, fmt.Errorf("%w: missing '#' prefix", ErrInvalidHex)
	}
	digits := hex[1:]
	switch len(digits) {
	case 3, 4:
		expanded := make([]byte, 0, 2*len(digits))
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: unsupported length %d", ErrInvalidHex, len(hex))
	}

	var ch [4]int
	ch[3] = 255
	for i := 0; i < len(digits)/2; i++ {
		v, ok := parseByte(digits[2*i : 2*i+2])
		if !ok {
			return Color{}, fmt.Errorf("%w: bad digits %q", ErrInvalidHex, digits[2*i:2*i+2])
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: float64(ch[3]) / 255}, nil
}

// MustParse is Parse for package-level constants; it panics on bad input.
func MustParse(hex string) Color {
	return Parse(hex).Unwrap()
}

// Lookup resolves a hex string via Parse or a CSS named color such as "pink".
func Lookup(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return Parse(s).ToTuple()
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromRGBA(named), nil
	}
	return Color{}, errors.ColorError("unknown color").
		WithContext("value", s).
		WithCause(ErrUnknownColor).
		Build()
}

// IsNamed reports whether s is a CSS color name.
func IsNamed(s string) bool {
	_, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
