package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}

	assert.Equal(t, 0.0, Distance(red, red))
	assert.Equal(t, 255.0, Distance(red, black))

	// 3-4-5 triangle in the RG plane.
	assert.Equal(t, 5.0, Distance(color.RGBA{R: 3, G: 4, A: 255}, black))

	// Alpha never contributes.
	assert.Equal(t, 0.0, Distance(color.RGBA{R: 9, A: 0}, color.RGBA{R: 9, A: 255}))
}

func TestWithin(t *testing.T) {
	t.Parallel()

	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}

	t.Run("inside tolerance", func(t *testing.T) {
		t.Parallel()
		assert.True(t, Within(color.RGBA{R: 110, G: 100, B: 100, A: 255}, base, 25))
	})

	t.Run("boundary excluded", func(t *testing.T) {
		t.Parallel()
		// Distance is exactly 25, which must not match.
		assert.False(t, Within(color.RGBA{R: 125, G: 100, B: 100, A: 255}, base, 25))
	})

	t.Run("identical colors", func(t *testing.T) {
		t.Parallel()
		assert.True(t, Within(base, base, 1))
	})
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("#DE1A03")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 255}, c)

	c, err = ParseHex("#a5b5a4")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xA5, G: 0xB5, B: 0xA4, A: 255}, c)

	for _, bad := range []string{"", "DE1A03", "#DE1A0", "#DE1A033", "#GG0000"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#DE1A03", Hex(color.RGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 255}))
	assert.Equal(t, "#000000", Hex(color.RGBA{A: 255}))
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"#DE1A03", "#A5B5A4", "#EBEBEB", "#01B191", "#0067CE", "#FED801"} {
		c, err := ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, s, Hex(c))
	}
}
