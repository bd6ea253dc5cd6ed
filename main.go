// Command scheme-mapper parses a reactor-core layout scheme image into
// normalized grid cell positions and writes them as JSON and TypeScript.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"scheme-mapper/internal/cell"
	"scheme-mapper/internal/export"
	"scheme-mapper/internal/grid"
	"scheme-mapper/internal/render"
	"scheme-mapper/internal/scheme"
	"scheme-mapper/internal/version"
	"scheme-mapper/pkg/geometry"
)

type options struct {
	jsonPath    string
	tsPath      string
	overlayPath string
	stats       bool
	expect      bool
}

func main() {
	jsonPath := flag.String("json", "", "JSON output path (default: input path with .json extension)")
	tsPath := flag.String("ts", "", "TypeScript output path (default: JSON path with .ts extension)")
	overlayPath := flag.String("overlay", "", "write a detection overlay PNG to this path")
	tolerance := flag.Float64("tolerance", cell.DefaultParams().Tolerance,
		"maximum color distance for a pixel to match a class")
	stats := flag.Bool("stats", false, "print per-class cell area statistics")
	expect := flag.Bool("expect", false, "check detected counts against the nominal OPB-82 layout")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 3 {
		usage()
		os.Exit(1)
	}

	params := cell.DefaultParams().WithTolerance(*tolerance)
	estimatePitch := false
	if len(args) >= 2 {
		pitch, err := strconv.Atoi(args[1])
		if err != nil || pitch < 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid pitch %q\n", args[1])
			os.Exit(1)
		}
		if pitch == 0 {
			estimatePitch = true
		} else {
			params = params.WithPitch(pitch)
		}
	}
	if len(args) == 3 {
		minArea, err := strconv.Atoi(args[2])
		if err != nil || minArea < 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid min area %q\n", args[2])
			os.Exit(1)
		}
		params = params.WithMinArea(minArea)
	}

	opts := options{
		jsonPath:    *jsonPath,
		tsPath:      *tsPath,
		overlayPath: *overlayPath,
		stats:       *stats,
		expect:      *expect,
	}

	if err := run(args[0], params, estimatePitch, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(imagePath string, params cell.DetectionParams, estimatePitch bool, o options) error {
	if err := params.Validate(); err != nil {
		return err
	}

	fmt.Printf("Loading image: %s\n", imagePath)
	s, err := scheme.Load(imagePath)
	if err != nil {
		return err
	}
	fmt.Printf("Image size: %dx%d\n", s.Width(), s.Height())

	blobs := cell.Detect(s, params)

	if estimatePitch {
		pitch := grid.EstimatePitch(blobs)
		if pitch == 0 {
			return fmt.Errorf("unable to estimate grid pitch: not enough cells")
		}
		fmt.Printf("Estimated grid pitch: %d px\n", pitch)
		params = params.WithPitch(pitch)
	}

	raw := grid.Assign(blobs, params.Pitch)
	printCounts("Raw Cell Statistics", raw)

	normalized, xIdx, yIdx := grid.Normalize(raw)

	fmt.Println("\nCoordinate normalization:")
	if xIdx.Len() > 0 {
		fmt.Printf("  Original X range: %d - %d (%d unique values)\n", xIdx.Min(), xIdx.Max(), xIdx.Len())
		fmt.Printf("  Original Y range: %d - %d (%d unique values)\n", yIdx.Min(), yIdx.Max(), yIdx.Len())
		fmt.Printf("  New X range: 0 - %d\n", xIdx.Len()-1)
		fmt.Printf("  New Y range: 0 - %d\n", yIdx.Len()-1)
	} else {
		fmt.Println("  No cells detected; grid is empty")
	}

	printCounts("Normalized Cell Statistics", normalized)

	if o.expect {
		printExpected(normalized)
	}

	gridSize := grid.Size(xIdx, yIdx)
	fmt.Printf("\nGrid size: %d x %d\n", gridSize.Width, gridSize.Height)

	imageSize := geometry.SizeInt{Width: s.Width(), Height: s.Height()}
	result := export.Build(normalized, imageSize, params.Pitch, gridSize)

	if o.stats {
		export.PrintAreaStats(normalized)
	}

	jsonPath := o.jsonPath
	if jsonPath == "" {
		jsonPath = export.DerivePath(imagePath, ".json")
	}
	if err := export.WriteJSON(result, jsonPath); err != nil {
		return err
	}
	fmt.Printf("\nOutput saved to: %s\n", jsonPath)

	tsPath := o.tsPath
	if tsPath == "" {
		tsPath = export.DerivePath(jsonPath, ".ts")
	}
	if err := export.WriteTypeScript(result, tsPath, filepath.Base(imagePath)); err != nil {
		return err
	}
	fmt.Printf("TypeScript code saved to: %s\n", tsPath)

	if o.overlayPath != "" {
		if err := render.SaveOverlay(s.RGBA(), normalized, o.overlayPath); err != nil {
			return err
		}
		fmt.Printf("Overlay saved to: %s\n", o.overlayPath)
	}

	return nil
}

func printCounts(title string, cells cell.Collection) {
	fmt.Printf("\n=== %s ===\n", title)
	for _, kind := range cell.Kinds() {
		fmt.Printf("%s: %d cells\n", kind, len(cells[kind]))
	}
	fmt.Printf("Total: %d cells\n", cells.Total())
}

func printExpected(cells cell.Collection) {
	fmt.Println("\n=== Expected Count Check ===")
	for _, kind := range cell.Kinds() {
		got := len(cells[kind])
		want := kind.NominalCount()
		status := "OK"
		if got != want {
			status = "MISMATCH"
		}
		fmt.Printf("%-4s %5d / %-5d %s\n", kind, got, want, status)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: scheme-mapper [flags] <image_path> [pitch] [min_area]\n")
	fmt.Fprintf(os.Stderr, "\nParses a reactor-core layout scheme image and writes the detected\n")
	fmt.Fprintf(os.Stderr, "cell positions as JSON and TypeScript next to the image.\n")
	fmt.Fprintf(os.Stderr, "\nArguments:\n")
	fmt.Fprintf(os.Stderr, "  image_path  input image (%s)\n", strings.Join(scheme.SupportedFormats(), ", "))
	fmt.Fprintf(os.Stderr, "  pitch       grid pitch in pixels, 0 to estimate from the image (default %d)\n",
		cell.DefaultParams().Pitch)
	fmt.Fprintf(os.Stderr, "  min_area    minimum blob area in pixels (default %d)\n",
		cell.DefaultParams().MinArea)
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n  scheme-mapper opb82_scheme.png 26 100\n")
}
