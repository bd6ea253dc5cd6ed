package cell

import (
	"fmt"
	"image"
	"image/color"

	"scheme-mapper/internal/scheme"
	"scheme-mapper/pkg/colorutil"
	"scheme-mapper/pkg/geometry"
)

// Detect finds the blobs of every cell class, filtered by the minimum
// area. The blob search runs once per class and each pass owns its own
// visited state, so passes are independent.
func Detect(s *scheme.Scheme, params DetectionParams) map[Kind][]Blob {
	results := make(map[Kind][]Blob, len(Kinds()))
	for _, k := range Kinds() {
		fmt.Printf("Finding %s cells (color: %s)...\n", k, colorutil.Hex(k.Color()))

		var kept []Blob
		for _, b := range FindBlobs(s, k.Color(), params.Tolerance) {
			if b.Area >= params.MinArea {
				kept = append(kept, b)
			}
		}
		results[k] = kept
	}
	return results
}

// FindBlobs returns every maximal 4-connected region of pixels matching
// the target color within tol, in raster-scan order of each region's
// first pixel. No area filter is applied; a single pixel is a valid
// blob of area 1.
func FindBlobs(s *scheme.Scheme, target color.RGBA, tol float64) []Blob {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return nil
	}

	img := s.RGBA()
	visited := make([]bool, w*h)

	var blobs []Blob
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || !colorutil.Within(img.RGBAAt(x, y), target, tol) {
				continue
			}
			blobs = append(blobs, floodFill(img, visited, x, y, target, tol))
		}
	}
	return blobs
}

// floodFill grows a blob from the start pixel over 4-connected matching
// pixels, marking each one in visited so no pixel joins two blobs. The
// start pixel must match the target color and be unvisited.
func floodFill(img *image.RGBA, visited []bool, startX, startY int, target color.RGBA, tol float64) Blob {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	queue := []geometry.PointInt{{X: startX, Y: startY}}
	visited[startY*w+startX] = true

	var sumX, sumY int64
	area := 0
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		sumX += int64(p.X)
		sumY += int64(p.Y)
		area++
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		// Diagonal neighbors do not connect.
		for _, n := range [4]geometry.PointInt{
			{X: p.X + 1, Y: p.Y},
			{X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1},
			{X: p.X, Y: p.Y - 1},
		} {
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			idx := n.Y*w + n.X
			if visited[idx] || !colorutil.Within(img.RGBAAt(n.X, n.Y), target, tol) {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}

	return Blob{
		Center: geometry.Point2D{
			X: float64(sumX) / float64(area),
			Y: float64(sumY) / float64(area),
		},
		Area: area,
		Bounds: geometry.RectInt{
			X:      minX,
			Y:      minY,
			Width:  maxX - minX + 1,
			Height: maxY - minY + 1,
		},
	}
}
