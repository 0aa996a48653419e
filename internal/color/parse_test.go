package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", New(255, 0, 0)},
		{"#f0a", New(255, 0, 170)},
		{"#000000", Black},
		{"#00000080", NewRGBA(0, 0, 0, 128.0/255)},
		{"#f0a8", NewRGBA(255, 0, 170, 136.0/255)},
		{"#123456ff", New(0x12, 0x34, 0x56)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			r := Parse(tt.in)
			require.True(t, r.IsOk(), "expected %q to parse", tt.in)
			assert.Equal(t, tt.want, r.Unwrap())
		})
	}
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "#", "ff0000", "#ffff0", "#ff00000", "#gg0000", "#12345678a", "#-10000"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			r := Parse(in)
			require.True(t, r.IsErr(), "expected %q to fail", in)
			err := r.UnwrapErr()
			assert.ErrorIs(t, err, ErrInvalidHex)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryColor))
			classified, _ := ferrors.AsClassified(err)
			value, _ := classified.Context().GetString("value")
			assert.Equal(t, in, value)
		})
	}
}

func TestParse_BlackIsDistinguishable(t *testing.T) {
	// The lenient decoder cannot tell these apart; Parse can.
	assert.Equal(t, HexToRGBA("#000000"), HexToRGBA("#nope00"))
	assert.True(t, Parse("#000000").IsOk())
	assert.True(t, Parse("#nope00").IsErr())
}

func TestParse_AlphaRoundTrip_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		hex := rapid.StringMatching(`#[0-9a-f]{6}([0-9a-e][0-9a-f]|f[0-9a-e])`).Draw(t, "hex")
		c := Parse(hex).Unwrap()
		if got := RGBAToHex(c.R, c.G, c.B, c.A); got != hex {
			t.Fatalf("round trip %q -> %v -> %q", hex, c, got)
		}
	})
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, New(0x34, 0x51, 0xb2), MustParse("#3451b2"))
	assert.Panics(t, func() { MustParse("blue") })
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c, err := Lookup("pink")
	require.NoError(t, err)
	assert.Equal(t, New(255, 192, 203), c)

	c, err = Lookup("  CornflowerBlue ")
	require.NoError(t, err)
	assert.Equal(t, "#6495ed", c.Hex())

	c, err = Lookup("#3451b2")
	require.NoError(t, err)
	assert.Equal(t, New(0x34, 0x51, 0xb2), c)

	_, err = Lookup("#12")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = Lookup("not-a-color")
	assert.True(t, errors.Is(err, ErrUnknownColor))

	assert.True(t, IsNamed("Pink"))
	assert.False(t, IsNamed("#fff"))
}
