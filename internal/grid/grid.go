// Package grid maps detected blobs onto a discrete logical grid and
// re-indexes occupied coordinates into a dense, gap-free space.
package grid

import (
	"sort"

	"scheme-mapper/internal/cell"
	"scheme-mapper/pkg/geometry"
)

// Quantize maps a pixel-space centroid to its raw grid cell, truncating
// toward zero. Pitch must be positive.
func Quantize(p geometry.Point2D, pitch int) geometry.PointInt {
	return geometry.PointInt{
		X: int(p.X / float64(pitch)),
		Y: int(p.Y / float64(pitch)),
	}
}

// Assign converts per-class blobs into cells with raw grid coordinates.
// Grid and Original both hold the raw coordinate until Normalize
// re-indexes Grid.
func Assign(blobs map[cell.Kind][]cell.Blob, pitch int) cell.Collection {
	out := cell.NewCollection()
	for _, k := range cell.Kinds() {
		for _, b := range blobs[k] {
			g := Quantize(b.Center, pitch)
			out[k] = append(out[k], cell.Cell{
				Kind:     k,
				Grid:     g,
				Original: g,
				Center:   b.Center,
				Area:     b.Area,
				Bounds:   b.Bounds,
			})
		}
	}
	return out
}

// AxisIndex is a bidirectional mapping between the occupied raw
// coordinate values of one axis and dense zero-based ranks.
type AxisIndex struct {
	values []int
	rank   map[int]int
}

// NewAxisIndex builds the index from raw values; duplicates collapse.
func NewAxisIndex(values []int) *AxisIndex {
	seen := make(map[int]bool, len(values))
	unique := make([]int, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	sort.Ints(unique)

	rank := make(map[int]int, len(unique))
	for i, v := range unique {
		rank[v] = i
	}
	return &AxisIndex{values: unique, rank: rank}
}

// Rank returns the dense index of a raw value.
func (ix *AxisIndex) Rank(v int) (int, bool) {
	r, ok := ix.rank[v]
	return r, ok
}

// Value returns the raw value at a dense index.
func (ix *AxisIndex) Value(rank int) (int, bool) {
	if rank < 0 || rank >= len(ix.values) {
		return 0, false
	}
	return ix.values[rank], true
}

// Len returns the number of occupied values.
func (ix *AxisIndex) Len() int {
	return len(ix.values)
}

// Min returns the smallest occupied raw value. Zero when empty.
func (ix *AxisIndex) Min() int {
	if len(ix.values) == 0 {
		return 0
	}
	return ix.values[0]
}

// Max returns the largest occupied raw value. Zero when empty.
func (ix *AxisIndex) Max() int {
	if len(ix.values) == 0 {
		return 0
	}
	return ix.values[len(ix.values)-1]
}

// Size returns the normalized grid dimensions implied by the two axis
// indexes.
func Size(xIdx, yIdx *AxisIndex) geometry.SizeInt {
	return geometry.SizeInt{Width: xIdx.Len(), Height: yIdx.Len()}
}

// Normalize replaces every cell's grid coordinate with its dense rank,
// computed per axis from the occupied values of all classes combined.
// It returns a new collection; original coordinates are preserved on
// each cell. The source diagram contains grid-line rows and columns
// that occupy coordinate slots without holding any cell, so raw
// coordinates are not contiguous.
func Normalize(cells cell.Collection) (cell.Collection, *AxisIndex, *AxisIndex) {
	var xs, ys []int
	for _, k := range cell.Kinds() {
		for _, c := range cells[k] {
			xs = append(xs, c.Grid.X)
			ys = append(ys, c.Grid.Y)
		}
	}

	xIdx := NewAxisIndex(xs)
	yIdx := NewAxisIndex(ys)

	out := cell.NewCollection()
	for _, k := range cell.Kinds() {
		for _, c := range cells[k] {
			rx, _ := xIdx.Rank(c.Grid.X)
			ry, _ := yIdx.Rank(c.Grid.Y)
			out[k] = append(out[k], cell.Cell{
				Kind:     c.Kind,
				Grid:     geometry.PointInt{X: rx, Y: ry},
				Original: c.Original,
				Center:   c.Center,
				Area:     c.Area,
				Bounds:   c.Bounds,
			})
		}
	}
	return out, xIdx, yIdx
}
