package scheme

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scheme.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.SetRGBA(2, 1, color.RGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 255})
	path := writeTestPNG(t, src)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, s.Path)
	assert.Equal(t, "png", s.Format)
	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, color.RGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 255}, s.PixelAt(2, 1))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.png"))
	assert.Error(t, err)
}

func TestLoadDropsAlphaWithoutScalingColor(t *testing.T) {
	t.Parallel()

	// A translucent pixel keeps its painted channel values. Alpha is
	// discarded, not multiplied into the color.
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 2, color.NRGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 128})
	path := writeTestPNG(t, src)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 255}, s.PixelAt(1, 2))
}

func TestLoadNotAnImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bogus.png")
	require.NoError(t, os.WriteFile(path, []byte("not image data"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFromImageNormalizesOrigin(t *testing.T) {
	t.Parallel()

	// A raster whose bounds do not start at (0,0) must be shifted so
	// scans can index from the origin.
	src := image.NewRGBA(image.Rect(5, 5, 15, 25))
	src.SetRGBA(5, 5, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	s := FromImage(src)
	assert.Equal(t, 10, s.Width())
	assert.Equal(t, 20, s.Height())
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, s.PixelAt(0, 0))
}

func TestPixelAtOutOfBounds(t *testing.T) {
	t.Parallel()

	s := FromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))

	black := color.RGBA{A: 255}
	assert.Equal(t, black, s.PixelAt(-1, 0))
	assert.Equal(t, black, s.PixelAt(0, -1))
	assert.Equal(t, black, s.PixelAt(2, 0))
	assert.Equal(t, black, s.PixelAt(0, 2))
}
