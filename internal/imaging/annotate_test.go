package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/brightpoint-mcp/internal/detection"
)

func decodeResultPNG(t *testing.T, b64 string) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestAnnotate_FixedColor(t *testing.T) {
	img := solidImage(100, 100, color.Black)
	points := []detection.PointCandidate{{X: 50, Y: 50, Val: 120}}

	result, err := Annotate(img, points, AnnotateOptions{MarkerColor: "#00ff00", MarkerRadius: 4})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 || result.Markers != 1 {
		t.Errorf("result: got %dx%d with %d markers", result.Width, result.Height, result.Markers)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	out := decodeResultPNG(t, result.ImageBase64)
	if r, g, b := rgbAt(out, 54, 50); r != 0 || g != 255 || b != 0 {
		t.Errorf("marker edge: got (%d,%d,%d), want green", r, g, b)
	}
	if r, g, b := rgbAt(out, 50, 50); r != 0 || g != 0 || b != 0 {
		t.Errorf("marker centre should be untouched: got (%d,%d,%d)", r, g, b)
	}
}

func TestAnnotate_GradientByValue(t *testing.T) {
	img := solidImage(200, 100, color.Black)
	points := []detection.PointCandidate{
		{X: 40, Y: 50, Val: 80},
		{X: 160, Y: 50, Val: 250},
	}

	result, err := Annotate(img, points, AnnotateOptions{})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	out := decodeResultPNG(t, result.ImageBase64)

	dr, _, db := rgbAt(out, 46, 50)
	br, _, bb := rgbAt(out, 166, 50)
	if db <= dr {
		t.Errorf("dim marker should lean blue: got r=%d b=%d", dr, db)
	}
	if br <= bb {
		t.Errorf("bright marker should lean red: got r=%d b=%d", br, bb)
	}
}

func TestAnnotate_SkipsOutOfBounds(t *testing.T) {
	img := solidImage(100, 100, color.Black)
	points := []detection.PointCandidate{
		{X: 10, Y: 10, Val: 100},
		{X: 500, Y: 10, Val: 100},
	}

	result, err := Annotate(img, points, AnnotateOptions{ShowValues: true})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if result.Markers != 1 {
		t.Errorf("Markers: got %d, want 1", result.Markers)
	}
}

func TestAnnotate_InvalidColor(t *testing.T) {
	img := solidImage(10, 10, color.Black)
	if _, err := Annotate(img, nil, AnnotateOptions{MarkerColor: "green"}); err == nil {
		t.Error("Annotate should reject a malformed marker color")
	}
}

func TestDrawLabel_Digits(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 255}

	drawLabel(img, 2, 2, "10", fg, bg)

	// Top row of "1" is "010".
	if got := img.RGBAAt(3, 2); got != fg {
		t.Errorf("glyph pixel: got %v, want %v", got, fg)
	}
	if got := img.RGBAAt(2, 2); got != bg {
		t.Errorf("background pixel: got %v, want %v", got, bg)
	}

	// Clipping near the edge must not panic.
	drawLabel(img, 38, 18, "255", fg, bg)
}
