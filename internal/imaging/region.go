package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Region is a rectangular area of an image: (X1,Y1) inclusive, (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// FrameOptions controls how an image is turned into a scan buffer.
type FrameOptions struct {
	// Region limits the scan to part of the image. Nil scans the whole image.
	Region *Region

	// BlurSigma applies a Gaussian pre-smoothing of this radius before the
	// scan. Zero disables it.
	BlurSigma float64
}

// Frame is a flattened RGBA buffer ready for detection, together with the
// position of its top-left pixel in the source image.
type Frame struct {
	Pix     []byte
	Width   int
	Height  int
	OriginX int
	OriginY int
}

// PrepareFrame crops and optionally smooths img, then flattens it into a Frame.
//
// Parameters:
//   - img: Source image. Region coordinates are relative to the top-left of
//     its bounds.
//   - opts: Optional region of interest and Gaussian blur sigma.
//
// Returns:
//   - *Frame: A non-premultiplied RGBA buffer of the region and its origin in
//     img.
//   - error: Non-nil if the region or blur sigma is invalid.
//
// # Errors
//
//   - Returns error if the region extends outside the image
//   - Returns error if x1 >= x2 or y1 >= y2
//   - Returns error if BlurSigma is negative
func PrepareFrame(img image.Image, opts FrameOptions) (*Frame, error) {
	bounds := img.Bounds()
	src := img
	originX, originY := 0, 0

	if r := opts.Region; r != nil {
		if r.X1 < 0 || r.Y1 < 0 || r.X2 > bounds.Dx() || r.Y2 > bounds.Dy() {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
				r.X1, r.Y1, r.X2, r.Y2, bounds.Dx(), bounds.Dy())
		}
		if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2).Add(bounds.Min)
		src = imaging.Crop(img, rect)
		originX, originY = r.X1, r.Y1
	}

	if opts.BlurSigma < 0 {
		return nil, fmt.Errorf("blur sigma %g must not be negative", opts.BlurSigma)
	}
	if opts.BlurSigma > 0 {
		src = blur.Gaussian(src, opts.BlurSigma)
	}

	pix, w, h := RGBABuffer(src)
	return &Frame{
		Pix:     pix,
		Width:   w,
		Height:  h,
		OriginX: originX,
		OriginY: originY,
	}, nil
}
