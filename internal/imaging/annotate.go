package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/brightpoint-mcp/internal/detection"
)

// Marker gradient endpoints: dim points are drawn blue, bright points red.
var (
	dimMarker    = colorful.Color{R: 0.2, G: 0.4, B: 1.0}
	brightMarker = colorful.Color{R: 1.0, G: 0.15, B: 0.1}
)

// AnnotateOptions controls marker rendering.
type AnnotateOptions struct {
	// MarkerColor is a "#RRGGBB" color for every marker. Empty colors each
	// marker along a blue-to-red gradient by its value.
	MarkerColor string

	// MarkerRadius is the half-size of the square marker in pixels. Values
	// below 1 use 6.
	MarkerRadius int

	// ShowValues draws each point's value next to its marker.
	ShowValues bool
}

// AnnotateResult contains the annotated image as base64 PNG.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Markers     int    `json:"markers"`
}

// Annotate draws a square marker around every point and encodes the result.
//
// Parameters:
//   - img: Source image. It is copied and never modified.
//   - points: Detected points in image coordinates, relative to the top-left
//     of img's bounds.
//   - opts: Marker color, size and labelling.
//
// Returns:
//   - *AnnotateResult: The annotated image as base64 PNG and the number of
//     markers drawn.
//   - error: Non-nil if MarkerColor is not a valid hex color or encoding fails.
//
// Without a fixed color, markers are blended in Lab space from blue for the
// dimmest point to red for the brightest. Points outside the image are skipped
// and not counted. Markers and labels are clipped at the image edges.
func Annotate(img image.Image, points []detection.PointCandidate, opts AnnotateOptions) (*AnnotateResult, error) {
	var fixed *colorful.Color
	if opts.MarkerColor != "" {
		c, err := colorful.Hex(opts.MarkerColor)
		if err != nil {
			return nil, fmt.Errorf("invalid marker color %q: %w", opts.MarkerColor, err)
		}
		fixed = &c
	}
	radius := opts.MarkerRadius
	if radius < 1 {
		radius = 6
	}

	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	lo, hi := valueRange(points)
	labelFg := color.RGBA{255, 255, 255, 255}
	labelBg := color.RGBA{0, 0, 0, 180}

	drawn := 0
	for _, p := range points {
		x, y := int(p.X), int(p.Y)
		if x >= bounds.Dx() || y >= bounds.Dy() {
			continue
		}

		c := markerColor(fixed, p.Val, lo, hi)
		drawSquare(result, x, y, radius, c)
		if opts.ShowValues {
			drawLabel(result, x+radius+2, y-radius, strconv.Itoa(int(p.Val)), labelFg, labelBg)
		}
		drawn++
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &AnnotateResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Markers:     drawn,
	}, nil
}

func valueRange(points []detection.PointCandidate) (lo, hi uint8) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi = points[0].Val, points[0].Val
	for _, p := range points[1:] {
		if p.Val < lo {
			lo = p.Val
		}
		if p.Val > hi {
			hi = p.Val
		}
	}
	return lo, hi
}

func markerColor(fixed *colorful.Color, val, lo, hi uint8) color.RGBA {
	c := brightMarker
	switch {
	case fixed != nil:
		c = *fixed
	case hi > lo:
		t := float64(val-lo) / float64(hi-lo)
		c = dimMarker.BlendLab(brightMarker, t).Clamped()
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawSquare outlines a (2r+1)-pixel square centred on (cx, cy), clipped to img.
func drawSquare(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if image.Pt(x, y).In(bounds) {
			img.SetRGBA(x, y, c)
		}
	}
	for d := -r; d <= r; d++ {
		set(cx+d, cy-r)
		set(cx+d, cy+r)
		set(cx-r, cy+d)
		set(cx+r, cy+d)
	}
}

// drawLabel draws digits with a 3x5 pixel font on a filled background.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	const charWidth, labelHeight = 4, 7
	labelWidth := len(text) * charWidth

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if p := image.Pt(x+dx, y+dy); p.In(bounds) {
				img.SetRGBA(p.X, p.Y, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		for row, line := range glyphs[ch] {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				if p := image.Pt(cx+col, y+row); p.In(bounds) {
					img.SetRGBA(p.X, p.Y, fg)
				}
			}
		}
		cx += charWidth
	}
}
