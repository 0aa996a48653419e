package color

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHexToRGBA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{R: 255, G: 0, B: 0, A: 1}},
		{"#f0a", Color{R: 255, G: 0, B: 170, A: 1}},
		{"#3451b2", Color{R: 0x34, G: 0x51, B: 0xb2, A: 1}},
		{"#ABCDEF", Color{R: 0xab, G: 0xcd, B: 0xef, A: 1}},
		{"#000", Color{A: 1}},
		// Unsupported lengths fall back to opaque black.
		{"#ffff", Black},
		{"#ff000080", Black},
		{"", Black},
		{"#", Black},
		// Malformed input of a supported length also falls back.
		{"ff00000", Black},
		{"#gg0000", Black},
		{"#ff00-1", Black},
		{"#+f0", Black},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HexToRGBA(tt.in))
		})
	}
}

func TestRGBAToHex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		r, g, b int
		a       float64
		want    string
	}{
		{"opaque red", 255, 0, 0, 1, "#ff0000"},
		{"opaque black has no alpha suffix", 0, 0, 0, 1, "#000000"},
		{"half alpha rounds up", 0, 0, 0, 0.5, "#00000080"},
		{"transparent", 18, 52, 86, 0, "#12345600"},
		{"lowercase and padded", 1, 10, 171, 1, "#010aab"},
		{"near opaque", 255, 255, 255, 0.999, "#ffffffff"},
		{"overflowing channel is not clamped", 256, 0, 0, 1, "#1000000"},
		{"negative channel is not clamped", -1, 0, 0, 1, "#-10000"},
		{"nan alpha", 0, 0, 0, math.NaN(), "#00000000"},
		{"positive infinite alpha", 0, 0, 0, math.Inf(1), "#00000000"},
		{"negative infinite alpha", 0, 0, 0, math.Inf(-1), "#00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RGBAToHex(tt.r, tt.g, tt.b, tt.a))
		})
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#3451b2", RGBToHex(0x34, 0x51, 0xb2))
}

func TestRGBAToHex_Deterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.IntRange(0, 255).Draw(t, "r")
		g := rapid.IntRange(0, 255).Draw(t, "g")
		b := rapid.IntRange(0, 255).Draw(t, "b")
		a := rapid.Float64Range(0, 1).Draw(t, "a")
		if first, second := RGBAToHex(r, g, b, a), RGBAToHex(r, g, b, a); first != second {
			t.Fatalf("non-deterministic output %q vs %q", first, second)
		}
	})
}

func TestHexRoundTrip_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		hex := rapid.StringMatching(`#[0-9a-f]{6}`).Draw(t, "hex")
		c := HexToRGBA(hex)
		if c.A != 1 {
			t.Fatalf("expected opaque color, got %v", c)
		}
		if got := RGBAToHex(c.R, c.G, c.B, c.A); got != hex {
			t.Fatalf("round trip %q -> %v -> %q", hex, c, got)
		}
	})
}

func TestShortHexExpands_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		short := rapid.StringMatching(`#[0-9a-f]{3}`).Draw(t, "short")
		long := "#" + string([]byte{short[1], short[1], short[2], short[2], short[3], short[3]})
		if HexToRGBA(short) != HexToRGBA(long) {
			t.Fatalf("%q and %q decode differently", short, long)
		}
		if got := RGBToHex(HexToRGBA(short).R, HexToRGBA(short).G, HexToRGBA(short).B); got != long {
			t.Fatalf("expected %q to re-encode as %q, got %q", short, long, got)
		}
	})
}

func TestUnsupportedLength_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Filter(func(s string) bool { return len(s) != 4 && len(s) != 7 }).Draw(t, "s")
		if got := HexToRGBA(s); got != Black {
			t.Fatalf("expected black for %q, got %v", s, got)
		}
	})
}
