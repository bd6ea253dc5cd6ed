// Command celltest runs cell detection for a single class on a scheme image.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"scheme-mapper/internal/cell"
	"scheme-mapper/internal/scheme"
	"scheme-mapper/pkg/colorutil"
)

func main() {
	imagePath := flag.String("image", "", "Path to scheme image (PNG, GIF, BMP, TIFF, WebP, or JPEG)")
	kindName := flag.String("kind", "TK", "Cell class: AZ, TK, RR, AR, LAR, or USP")
	tolerance := flag.Float64("tolerance", cell.DefaultParams().Tolerance, "Maximum color distance")
	minArea := flag.Int("min-area", 0, "Minimum blob area in pixels (0 shows all)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: celltest -image <path> [-kind TK] [-tolerance 25] [-min-area 0]")
		os.Exit(1)
	}

	kind, ok := cell.KindFromString(*kindName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown cell class %q (expected AZ, TK, RR, AR, LAR, or USP)\n", *kindName)
		os.Exit(1)
	}

	s, err := scheme.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %s image: %dx%d pixels\n", s.Format, s.Width(), s.Height())
	fmt.Printf("Class: %s (color %s, tolerance %.0f)\n", kind, colorutil.Hex(kind.Color()), *tolerance)

	blobs := cell.FindBlobs(s, kind.Color(), *tolerance)

	fmt.Printf("\nDetected %d blobs:\n", len(blobs))
	fmt.Printf("%-6s %10s %10s %8s %9s %18s\n", "#", "X", "Y", "Area", "Color", "Bounds")
	fmt.Println(strings.Repeat("-", 66))

	shown := 0
	for i, b := range blobs {
		if b.Area < *minArea {
			continue
		}
		shown++
		sampled := s.PixelAt(int(b.Center.X), int(b.Center.Y))
		fmt.Printf("%-6d %10.1f %10.1f %8d %9s %18s\n",
			i, b.Center.X, b.Center.Y, b.Area, colorutil.Hex(sampled),
			fmt.Sprintf("%dx%d@(%d,%d)", b.Bounds.Width, b.Bounds.Height, b.Bounds.X, b.Bounds.Y))
	}

	fmt.Printf("\nTotal: %d blobs, %d shown\n", len(blobs), shown)
}
