package cell

import "fmt"

// DetectionParams holds parameters for cell detection.
type DetectionParams struct {
	// Tolerance is the maximum Euclidean RGB distance for a pixel to
	// match a reference color. A pixel exactly Tolerance away does not
	// match.
	Tolerance float64

	// Pitch is the pixel size of one grid cell in the source image.
	Pitch int

	// MinArea is the minimum pixel count for a blob to count as a cell.
	// Smaller blobs are grid-line fragments or anti-aliasing fringes.
	MinArea int
}

// DefaultParams returns detection parameters tuned for the reference
// OPB-82 scheme scan (26 px cells, light anti-aliasing). They do not
// necessarily generalize to a differently scaled source image.
func DefaultParams() DetectionParams {
	return DetectionParams{
		Tolerance: 25,
		Pitch:     26,
		MinArea:   100,
	}
}

// WithPitch returns a copy of params with the given grid pitch.
func (p DetectionParams) WithPitch(pitch int) DetectionParams {
	p.Pitch = pitch
	return p
}

// WithMinArea returns a copy of params with the given area threshold.
func (p DetectionParams) WithMinArea(minArea int) DetectionParams {
	p.MinArea = minArea
	return p
}

// WithTolerance returns a copy of params with the given color tolerance.
func (p DetectionParams) WithTolerance(tol float64) DetectionParams {
	p.Tolerance = tol
	return p
}

// Validate checks that the parameters are usable.
func (p DetectionParams) Validate() error {
	if p.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", p.Tolerance)
	}
	if p.Pitch <= 0 {
		return fmt.Errorf("pitch must be positive, got %d", p.Pitch)
	}
	if p.MinArea < 0 {
		return fmt.Errorf("min area must be non-negative, got %d", p.MinArea)
	}
	return nil
}
