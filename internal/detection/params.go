package detection

import (
	"errors"
	"fmt"
	"math"
)

// Default detection parameters.
const (
	// DefaultExclusionRadius is the spatial merge radius in pixels. Two detections
	// closer than this horizontally are treated as the same blob, and a closed blob
	// suppresses new detections for this many pixels.
	DefaultExclusionRadius = 20.0

	// DefaultThreshold is the minimum background-subtracted intensity that counts
	// as "bright".
	DefaultThreshold uint8 = 75

	// DefaultMedianRadius is the half-width of the sliding median window.
	DefaultMedianRadius = 40

	// PatchSize is reserved for blob patch extraction. The scanner does not use it.
	PatchSize = 20

	// MaxMedianRadius bounds the median window to 2*MaxMedianRadius+1 samples.
	MaxMedianRadius = 1 << 16

	// MaxExclusionRadius bounds the exclusion radius so it converts exactly to
	// an integer pixel count.
	MaxExclusionRadius = float64(math.MaxInt32)
)

var (
	// ErrInvalidBuffer is returned when the pixel buffer does not match the
	// declared dimensions.
	ErrInvalidBuffer = errors.New("invalid pixel buffer")

	// ErrImageTooNarrow is returned when a row is narrower than the median window.
	ErrImageTooNarrow = errors.New("image too narrow for median window")

	// ErrInvalidParams is returned for radii that are negative, out of range or
	// not finite.
	ErrInvalidParams = errors.New("invalid detection parameters")
)

// Params configures a scan.
type Params struct {
	// ExclusionRadius is the merge, prune and guard distance in pixels. It is
	// truncated to an integer wherever it is compared against pixel coordinates.
	ExclusionRadius float64 `json:"exclusion_radius"`

	// Threshold is the minimum processed value that starts or sustains a blob.
	Threshold uint8 `json:"threshold"`

	// MedianRadius is the half-width of the background window. The window holds
	// 2*MedianRadius+1 samples.
	MedianRadius int `json:"median_radius"`
}

// DefaultParams returns the stock detection parameters.
func DefaultParams() Params {
	return Params{
		ExclusionRadius: DefaultExclusionRadius,
		Threshold:       DefaultThreshold,
		MedianRadius:    DefaultMedianRadius,
	}
}

// WindowSize is the number of samples in the sliding median window. It is also
// the minimum supported image width.
func (p Params) WindowSize() int {
	return 2*p.MedianRadius + 1
}

// radius is the exclusion radius as an integer pixel count.
func (p Params) radius() int {
	return int(p.ExclusionRadius)
}

// Validate reports whether the parameters describe a usable scan.
func (p Params) Validate() error {
	if p.MedianRadius < 0 || p.MedianRadius > MaxMedianRadius {
		return fmt.Errorf("%w: median radius %d must be between 0 and %d",
			ErrInvalidParams, p.MedianRadius, MaxMedianRadius)
	}
	if math.IsNaN(p.ExclusionRadius) || math.IsInf(p.ExclusionRadius, 0) {
		return fmt.Errorf("%w: exclusion radius %g is not finite", ErrInvalidParams, p.ExclusionRadius)
	}
	if p.ExclusionRadius < 0 || p.ExclusionRadius > MaxExclusionRadius {
		return fmt.Errorf("%w: exclusion radius %g must be between 0 and %g",
			ErrInvalidParams, p.ExclusionRadius, MaxExclusionRadius)
	}
	return nil
}

// checkBuffer validates a row-major RGBA buffer against its dimensions.
func (p Params) checkBuffer(pix []byte, width, height int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBuffer, width, height)
	}
	if len(pix)%4 != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of 4", ErrInvalidBuffer, len(pix))
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: length %d does not match %dx%d RGBA (%d bytes)",
			ErrInvalidBuffer, len(pix), width, height, width*height*4)
	}
	// Radius form: WindowSize is not evaluated until the width bounds it.
	if p.MedianRadius > (width-1)/2 {
		return fmt.Errorf("%w: width %d is less than window size %d",
			ErrImageTooNarrow, width, p.WindowSize())
	}
	return nil
}
