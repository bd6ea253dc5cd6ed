// Package scheme provides loading and pixel access for layout scheme images.
package scheme

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Scheme holds a decoded layout image normalized for pixel scanning.
type Scheme struct {
	Path   string
	Format string

	rgba *image.RGBA
}

// Load reads and decodes the image at the specified path.
func Load(path string) (*Scheme, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Scheme{
		Path:   path,
		Format: format,
		rgba:   toRGBA(img),
	}, nil
}

// FromImage wraps an already-decoded image. Useful for callers that
// synthesize images in memory.
func FromImage(img image.Image) *Scheme {
	return &Scheme{rgba: toRGBA(img)}
}

// toRGBA converts a decoded image to a zero-origin opaque raster so
// pixel scans can index [0,w) x [0,h) directly. Channel values are read
// non-premultiplied and the alpha channel is dropped, never multiplied
// into the color channels.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) && rgba.Opaque() {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgba.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return rgba
}

// Width returns the image width in pixels.
func (s *Scheme) Width() int {
	if s.rgba == nil {
		return 0
	}
	return s.rgba.Bounds().Dx()
}

// Height returns the image height in pixels.
func (s *Scheme) Height() int {
	if s.rgba == nil {
		return 0
	}
	return s.rgba.Bounds().Dy()
}

// RGBA returns the underlying zero-origin raster.
func (s *Scheme) RGBA() *image.RGBA {
	return s.rgba
}

// PixelAt returns the color at the specified pixel coordinates.
// Out-of-bounds coordinates return opaque black.
func (s *Scheme) PixelAt(x, y int) color.RGBA {
	if s.rgba == nil {
		return color.RGBA{A: 255}
	}
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return color.RGBA{A: 255}
	}
	return s.rgba.RGBAAt(x, y)
}

// SupportedFormats returns the list of supported image file extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp"}
}
