package export

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"scheme-mapper/internal/cell"
)

// PrintAreaStats prints a per-class summary of detected blob areas.
// Uneven areas within one class usually mean the tolerance is bleeding
// into anti-aliased edges.
func PrintAreaStats(cells cell.Collection) {
	fmt.Printf("\n=== Cell Area Statistics ===\n")
	fmt.Printf("%-5s %8s %10s %10s %10s %10s\n", "Type", "Cells", "Min", "Max", "Mean", "StdDev")

	for _, k := range cell.Kinds() {
		areas := make([]float64, 0, len(cells[k]))
		for _, c := range cells[k] {
			areas = append(areas, float64(c.Area))
		}

		if len(areas) == 0 {
			fmt.Printf("%-5s %8d %10s %10s %10s %10s\n", k, 0, "-", "-", "-", "-")
			continue
		}

		fmt.Printf("%-5s %8d %10.0f %10.0f %10.1f %10.1f\n",
			k, len(areas),
			floats.Min(areas), floats.Max(areas),
			stat.Mean(areas, nil), stat.PopStdDev(areas, nil))
	}
	fmt.Println()
}
