// Package export serializes a parsed cell grid to its JSON and
// TypeScript representations.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"scheme-mapper/internal/cell"
	"scheme-mapper/pkg/geometry"
)

// Metadata describes one parsing run.
type Metadata struct {
	ImageSize  geometry.SizeInt `json:"image_size"`
	CellSize   int              `json:"cell_size"`
	TotalCells int              `json:"total_cells"`
	GridSize   geometry.SizeInt `json:"grid_size"`
}

// Record is the serialized form of a single detected cell.
type Record struct {
	GridX         int `json:"grid_x"`
	GridY         int `json:"grid_y"`
	OriginalGridX int `json:"original_grid_x"`
	OriginalGridY int `json:"original_grid_y"`
	PixelX        int `json:"pixel_x"`
	PixelY        int `json:"pixel_y"`
	Area          int `json:"area"`
}

// KindCells holds the per-class cell records. Explicit fields rather
// than a map keep the class order fixed in the marshaled output.
type KindCells struct {
	AZ  []Record `json:"AZ"`
	TK  []Record `json:"TK"`
	RR  []Record `json:"RR"`
	AR  []Record `json:"AR"`
	LAR []Record `json:"LAR"`
	USP []Record `json:"USP"`
}

// KindPositions holds the simplified per-class "x,y" views in the same
// fixed class order.
type KindPositions struct {
	AZ  []string `json:"AZ"`
	TK  []string `json:"TK"`
	RR  []string `json:"RR"`
	AR  []string `json:"AR"`
	LAR []string `json:"LAR"`
	USP []string `json:"USP"`
}

// Result is the full structured output of a run.
type Result struct {
	Metadata        Metadata      `json:"metadata"`
	Cells           KindCells     `json:"cells"`
	PositionsByType KindPositions `json:"positions_by_type"`
}

// Build assembles the result from a normalized cell collection. Records
// keep the detection order of their cells; position strings are built
// from normalized coordinates only.
func Build(cells cell.Collection, imageSize geometry.SizeInt, pitch int, gridSize geometry.SizeInt) *Result {
	r := &Result{
		Metadata: Metadata{
			ImageSize:  imageSize,
			CellSize:   pitch,
			TotalCells: cells.Total(),
			GridSize:   gridSize,
		},
	}

	for _, k := range cell.Kinds() {
		records := make([]Record, 0, len(cells[k]))
		positions := make([]string, 0, len(cells[k]))
		for _, c := range cells[k] {
			records = append(records, Record{
				GridX:         c.Grid.X,
				GridY:         c.Grid.Y,
				OriginalGridX: c.Original.X,
				OriginalGridY: c.Original.Y,
				PixelX:        int(c.Center.X),
				PixelY:        int(c.Center.Y),
				Area:          c.Area,
			})
			positions = append(positions, fmt.Sprintf("%d,%d", c.Grid.X, c.Grid.Y))
		}
		r.setKind(k, records, positions)
	}
	return r
}

func (r *Result) setKind(k cell.Kind, records []Record, positions []string) {
	switch k {
	case cell.KindAZ:
		r.Cells.AZ, r.PositionsByType.AZ = records, positions
	case cell.KindTK:
		r.Cells.TK, r.PositionsByType.TK = records, positions
	case cell.KindRR:
		r.Cells.RR, r.PositionsByType.RR = records, positions
	case cell.KindAR:
		r.Cells.AR, r.PositionsByType.AR = records, positions
	case cell.KindLAR:
		r.Cells.LAR, r.PositionsByType.LAR = records, positions
	case cell.KindUSP:
		r.Cells.USP, r.PositionsByType.USP = records, positions
	}
}

// CellsFor returns the records of one class.
func (r *Result) CellsFor(k cell.Kind) []Record {
	switch k {
	case cell.KindAZ:
		return r.Cells.AZ
	case cell.KindTK:
		return r.Cells.TK
	case cell.KindRR:
		return r.Cells.RR
	case cell.KindAR:
		return r.Cells.AR
	case cell.KindLAR:
		return r.Cells.LAR
	case cell.KindUSP:
		return r.Cells.USP
	default:
		return nil
	}
}

// PositionsFor returns the "x,y" strings of one class.
func (r *Result) PositionsFor(k cell.Kind) []string {
	switch k {
	case cell.KindAZ:
		return r.PositionsByType.AZ
	case cell.KindTK:
		return r.PositionsByType.TK
	case cell.KindRR:
		return r.PositionsByType.RR
	case cell.KindAR:
		return r.PositionsByType.AR
	case cell.KindLAR:
		return r.PositionsByType.LAR
	case cell.KindUSP:
		return r.PositionsByType.USP
	default:
		return nil
	}
}

// MarshalJSONIndent renders the result exactly as it is written to disk.
func (r *Result) MarshalJSONIndent() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return data, nil
}

// WriteJSON writes the result to path, overwriting any existing file.
func WriteJSON(r *Result, path string) error {
	data, err := r.MarshalJSONIndent()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DerivePath replaces the extension of a path, e.g. scheme.png to
// scheme.json. A dotfile name like .png is all extension to
// filepath.Ext; stripping it would leave nothing, so ext is appended
// instead.
func DerivePath(path, ext string) string {
	old := filepath.Ext(path)
	if len(old) == len(filepath.Base(path)) {
		return path + ext
	}
	return path[:len(path)-len(old)] + ext
}
