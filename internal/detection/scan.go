package detection

// PointCandidate is the brightest pixel observed for one blob.
type PointCandidate struct {
	X   uint32 `json:"x"`   // Column of the blob's maximum
	Y   uint32 `json:"y"`   // Row of the blob's maximum
	Val uint8  `json:"val"` // Background-subtracted intensity at (X, Y)
}

// Stats counts what the tracker did during a scan.
type Stats struct {
	// PixelsScanned is the number of pixels fed through the tracker.
	PixelsScanned int `json:"pixels_scanned"`

	// PointsCreated is the number of blobs that closed and were recorded.
	PointsCreated int `json:"points_created"`

	// ExistingRevisits counts entries into an already recorded point.
	ExistingRevisits int `json:"existing_revisits"`

	// PointUpdates counts in-place updates of a recorded point's maximum.
	PointUpdates int `json:"point_updates"`

	// GuardsEntered counts cooldowns started after a blob closed.
	GuardsEntered int `json:"guards_entered"`

	// OpenAtEnd is true when a blob was still being tracked as the scan ended.
	// Such a blob is dropped, and a new one never reaches the point list.
	OpenAtEnd bool `json:"open_at_end"`
}

// Result is the outcome of Detector.Detect.
type Result struct {
	// Points are the candidates in the order their blobs closed.
	Points []PointCandidate `json:"points"`

	// Stats describes the scan.
	Stats Stats `json:"stats"`
}

// Detector runs bright point scans with a fixed set of parameters.
//
// A Detector holds no per-scan state, so one value may be shared by
// goroutines scanning different images.
type Detector struct {
	params Params
}

// NewDetector validates p and returns a detector using it.
func NewDetector(p Params) (*Detector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Detector{params: p}, nil
}

// Params returns the detector's parameters.
func (d *Detector) Params() Params {
	return d.params
}

// Detect scans a row-major RGBA buffer of the given dimensions for bright points.
//
// Parameters:
//   - pix: Pixel data, 4 bytes per pixel (R, G, B, A), rows top to bottom.
//     Alpha is ignored.
//   - width, height: Image dimensions in pixels. width must be at least
//     the detector's window size (2*MedianRadius+1).
//
// Returns:
//   - *Result: The candidates in the order their blobs closed, and scan Stats.
//     Points is empty, not nil, when nothing was found.
//   - error: Non-nil if a precondition fails. No partial result is returned.
//
// # Algorithm
//
//  1. Greyscale: mean of R, G and B
//  2. Background: median of a horizontal window around the pixel, rebuilt at
//     the start of every row and slid only for interior columns
//  3. Contrast: greyscale minus background, floored at zero
//  4. Tracking: a blob opens when contrast exceeds Threshold and closes at the
//     first pixel that does not. It is recorded at its brightest pixel. Pixels
//     within ExclusionRadius columns of a recent point extend that point, and
//     each close starts a cooldown of ExclusionRadius pixels
//
// Pixels are visited left to right, top to bottom, stopping one pixel short of
// the end of the buffer. Tracking state is carried across row boundaries and
// is not flushed at the end, so a blob still open at the last visited pixel is
// never recorded (Stats.OpenAtEnd reports it).
//
// # Errors
//
//   - ErrInvalidBuffer if the dimensions are not positive or len(pix) is not
//     width*height*4
//   - ErrImageTooNarrow if width is less than the window size
func (d *Detector) Detect(pix []byte, width, height int) (*Result, error) {
	if err := d.params.checkBuffer(pix, width, height); err != nil {
		return nil, err
	}

	med := newSlidingMedian(d.params.MedianRadius)
	t := newTracker(d.params)

	end := len(pix) - 4
	x, y := 0, 0
	for off := 0; off < end; off += 4 {
		v := Greyscale(pix, off)
		t.prune(y)
		bg := med.advance(pix, off, x, width, v)
		t.step(x, y, SaturatingSub(v, bg))
		t.stats.PixelsScanned++

		x++
		if x == width {
			x = 0
			y++
		}
	}

	t.stats.OpenAtEnd = t.open()

	points := t.points
	if points == nil {
		points = []PointCandidate{}
	}
	return &Result{Points: points, Stats: t.stats}, nil
}

// Scan runs a single detection with p over a row-major RGBA buffer and returns
// the candidates in discovery order.
//
// It is equivalent to NewDetector(p) followed by Detect, without the stats.
//
// # Errors
//
//   - ErrInvalidParams if p fails Validate
//   - ErrInvalidBuffer or ErrImageTooNarrow as for Detector.Detect
func Scan(pix []byte, width, height int, p Params) ([]PointCandidate, error) {
	d, err := NewDetector(p)
	if err != nil {
		return nil, err
	}
	res, err := d.Detect(pix, width, height)
	if err != nil {
		return nil, err
	}
	return res.Points, nil
}

// Subtract returns the background-subtracted signal the tracker would see for
// every pixel of the buffer.
//
// Parameters:
//   - pix, width, height: A row-major RGBA buffer, as for Detector.Detect.
//   - p: Detection parameters. Only MedianRadius affects the result.
//
// Returns:
//   - []uint8: One contrast value per pixel in row-major order, including the
//     final pixel that Detect does not visit.
//   - error: ErrInvalidParams, ErrInvalidBuffer or ErrImageTooNarrow, as for Scan.
func Subtract(pix []byte, width, height int, p Params) ([]uint8, error) {
	if err := p.checkBuffer(pix, width, height); err != nil {
		return nil, err
	}

	med := newSlidingMedian(p.MedianRadius)
	out := make([]uint8, width*height)
	for i := range out {
		off := i * 4
		v := Greyscale(pix, off)
		bg := med.advance(pix, off, i%width, width, v)
		out[i] = SaturatingSub(v, bg)
	}
	return out, nil
}
