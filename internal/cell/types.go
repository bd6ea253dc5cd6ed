// Package cell provides color classification and connected-component
// detection of labeled cells in a reactor-core layout scheme.
package cell

import (
	"image/color"
	"strings"

	"scheme-mapper/pkg/colorutil"
	"scheme-mapper/pkg/geometry"
)

// Kind identifies one of the six cell classes on the layout scheme.
type Kind int

const (
	KindAZ  Kind = iota // Emergency protection rods (red)
	KindTK              // Fuel channels (gray-green)
	KindRR              // Manual control rods (light gray)
	KindAR              // Automatic control rods (teal)
	KindLAR             // Local automatic control rods (blue)
	KindUSP             // Shortened absorber rods (yellow)
)

// Reference colors for each cell class, sampled from the source scheme.
var (
	colorAZ  = color.RGBA{R: 0xDE, G: 0x1A, B: 0x03, A: 255}
	colorTK  = color.RGBA{R: 0xA5, G: 0xB5, B: 0xA4, A: 255}
	colorRR  = color.RGBA{R: 0xEB, G: 0xEB, B: 0xEB, A: 255}
	colorAR  = color.RGBA{R: 0x01, G: 0xB1, B: 0x91, A: 255}
	colorLAR = color.RGBA{R: 0x00, G: 0x67, B: 0xCE, A: 255}
	colorUSP = color.RGBA{R: 0xFE, G: 0xD8, B: 0x01, A: 255}
)

// Kinds lists all cell classes in classification order. Identify tests
// classes in this order and the first match wins, so reference colors
// must stay more than twice the tolerance apart.
func Kinds() []Kind {
	return []Kind{KindAZ, KindTK, KindRR, KindAR, KindLAR, KindUSP}
}

func (k Kind) String() string {
	switch k {
	case KindAZ:
		return "AZ"
	case KindTK:
		return "TK"
	case KindRR:
		return "RR"
	case KindAR:
		return "AR"
	case KindLAR:
		return "LAR"
	case KindUSP:
		return "USP"
	default:
		return "Unknown"
	}
}

// Color returns the reference color of the class.
func (k Kind) Color() color.RGBA {
	switch k {
	case KindAZ:
		return colorAZ
	case KindTK:
		return colorTK
	case KindRR:
		return colorRR
	case KindAR:
		return colorAR
	case KindLAR:
		return colorLAR
	case KindUSP:
		return colorUSP
	default:
		return color.RGBA{A: 255}
	}
}

// NominalCount returns the cell count of the class on the reference
// OPB-82 layout, for checking a parse against the known scheme.
func (k Kind) NominalCount() int {
	switch k {
	case KindAZ:
		return 33
	case KindTK:
		return 1661
	case KindRR:
		return 146
	case KindAR:
		return 8
	case KindLAR:
		return 12
	case KindUSP:
		return 24
	default:
		return 0
	}
}

// KindFromString parses a class label such as "AZ" or "tk".
func KindFromString(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, true
		}
	}
	return 0, false
}

// Identify classifies a pixel against all reference colors, returning
// the first class whose color is within tol. ok is false when no class
// matches.
func Identify(c color.RGBA, tol float64) (k Kind, ok bool) {
	for _, k := range Kinds() {
		if colorutil.Within(c, k.Color(), tol) {
			return k, true
		}
	}
	return 0, false
}

// Blob is a maximal 4-connected region of pixels matching one reference
// color. Only its derived attributes survive detection.
type Blob struct {
	Center geometry.Point2D // arithmetic mean of member pixel coordinates
	Area   int              // member pixel count
	Bounds geometry.RectInt
}

// Cell is a blob that passed the area filter, annotated with its class
// and grid coordinates. Cells are immutable once created; normalization
// produces new records instead of mutating them.
type Cell struct {
	Kind     Kind
	Grid     geometry.PointInt // normalized grid coordinate
	Original geometry.PointInt // raw grid coordinate before normalization
	Center   geometry.Point2D  // pixel-space centroid
	Area     int
	Bounds   geometry.RectInt
}

// Collection groups cells by class. Iterate with Kinds() for a stable
// order.
type Collection map[Kind][]Cell

// NewCollection returns a collection with an empty slice per class.
func NewCollection() Collection {
	c := make(Collection, len(Kinds()))
	for _, k := range Kinds() {
		c[k] = []Cell{}
	}
	return c
}

// Total returns the number of cells across all classes.
func (c Collection) Total() int {
	n := 0
	for _, cells := range c {
		n += len(cells)
	}
	return n
}
