// Package render draws diagnostic overlays for detected cells.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"scheme-mapper/internal/cell"
)

const (
	dimAlpha   = 0.55
	fillAlpha  = 230
	crossReach = 2
)

// Overlay renders the detected cells on top of a dimmed copy of the
// source image. Each cell is filled with its class reference color and
// marked with a small cross at the detected centroid.
func Overlay(src image.Image, cells cell.Collection) image.Image {
	dc := gg.NewContextForImage(src)

	dc.SetRGBA(0, 0, 0, dimAlpha)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()

	for _, kind := range cell.Kinds() {
		ref := kind.Color()
		for _, c := range cells[kind] {
			dc.SetRGBA255(int(ref.R), int(ref.G), int(ref.B), fillAlpha)
			dc.DrawRectangle(float64(c.Bounds.X), float64(c.Bounds.Y),
				float64(c.Bounds.Width), float64(c.Bounds.Height))
			dc.Fill()

			dc.SetRGBA255(255, 255, 255, 255)
			dc.SetLineWidth(1)
			dc.DrawLine(c.Center.X-crossReach, c.Center.Y, c.Center.X+crossReach, c.Center.Y)
			dc.DrawLine(c.Center.X, c.Center.Y-crossReach, c.Center.X, c.Center.Y+crossReach)
			dc.Stroke()
		}
	}

	return dc.Image()
}

// SaveOverlay writes the overlay for cells detected in src as a PNG.
func SaveOverlay(src image.Image, cells cell.Collection, path string) error {
	if err := gg.SavePNG(path, Overlay(src, cells)); err != nil {
		return fmt.Errorf("failed to write overlay %s: %w", path, err)
	}
	return nil
}
