// Package colorutil provides shared color utilities for the scheme mapper.
package colorutil

import (
	"fmt"
	"image/color"
	"math"
)

// Common overlay colors used when rendering detection results.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Distance returns the Euclidean distance between two colors in RGB space.
// Alpha is ignored.
func Distance(a, b color.RGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Within reports whether the distance between a and b is strictly less
// than tol. A pixel exactly tol away does not match.
func Within(a, b color.RGBA, tol float64) bool {
	return Distance(a, b) < tol
}

// ParseHex parses a "#RRGGBB" string into an opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats a color as a "#RRGGBB" string.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
