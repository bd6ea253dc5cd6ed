package grid

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"scheme-mapper/internal/cell"
	"scheme-mapper/pkg/geometry"
)

// EstimatePitch guesses the grid pitch in pixels from detected blobs.
// On a regular grid every blob has a 4-neighbor one pitch away, so the
// median nearest-neighbor distance between centroids tracks the pitch
// even when grid lines insert larger gaps. Returns 0 when fewer than
// two blobs are available.
func EstimatePitch(blobs map[cell.Kind][]cell.Blob) int {
	var centers []geometry.Point2D
	for _, k := range cell.Kinds() {
		for _, b := range blobs[k] {
			centers = append(centers, b.Center)
		}
	}
	if len(centers) < 2 {
		return 0
	}

	nearest := make([]float64, len(centers))
	for i, c := range centers {
		best := math.Inf(1)
		for j, o := range centers {
			if i == j {
				continue
			}
			if d := c.Distance(o); d < best {
				best = d
			}
		}
		nearest[i] = best
	}

	sort.Float64s(nearest)
	median := stat.Quantile(0.5, stat.Empirical, nearest, nil)
	return int(math.Round(median))
}
