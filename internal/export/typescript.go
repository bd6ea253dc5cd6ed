package export

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"scheme-mapper/internal/cell"
)

// GenerateTypeScript renders the per-class position sets as TypeScript
// source. Cells are grouped by row and commented purely to aid review;
// the grouping has no semantic effect. Classes without cells are
// omitted.
func GenerateTypeScript(r *Result, sourceName string) string {
	lines := []string{
		fmt.Sprintf("// Auto-generated from %s by scheme-mapper", sourceName),
		"// Cell positions extracted from the core layout scheme",
		"// Coordinates are normalized to a continuous grid (grid lines removed)",
		"",
	}

	for _, k := range cell.Kinds() {
		records := r.CellsFor(k)
		if len(records) == 0 {
			continue
		}

		lines = append(lines,
			fmt.Sprintf("// %s positions - %d cells", k, len(records)),
			fmt.Sprintf("const %sPositions = new Set<string>([", strings.ToLower(k.String())))

		byRow := make(map[int][]int)
		for _, rec := range records {
			byRow[rec.GridY] = append(byRow[rec.GridY], rec.GridX)
		}

		rows := make([]int, 0, len(byRow))
		for row := range byRow {
			rows = append(rows, row)
		}
		sort.Ints(rows)

		for _, row := range rows {
			cols := dedupSorted(byRow[row])
			parts := make([]string, len(cols))
			for i, col := range cols {
				parts[i] = fmt.Sprintf("'%d,%d'", col, row)
			}
			lines = append(lines,
				fmt.Sprintf("    // Row %d", row),
				fmt.Sprintf("    %s,", strings.Join(parts, ", ")))
		}

		lines = append(lines, "]);", "")
	}

	return strings.Join(lines, "\n")
}

// WriteTypeScript renders the listing and writes it to path,
// overwriting any existing file.
func WriteTypeScript(r *Result, path, sourceName string) error {
	if err := os.WriteFile(path, []byte(GenerateTypeScript(r, sourceName)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// dedupSorted sorts values ascending and drops duplicates.
func dedupSorted(values []int) []int {
	sort.Ints(values)
	out := values[:0]
	for i, v := range values {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
