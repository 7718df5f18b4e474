package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// SignalResult contains a background-subtracted signal map encoded as base64 PNG.
//
// The image is 8-bit grayscale. Each pixel is the local contrast the detector
// sees at that position: 0 where the pixel is at or below its background.
type SignalResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// MaxSignal is the strongest contrast in the map.
	MaxSignal uint8 `json:"max_signal"`

	// AboveThreshold counts pixels whose signal exceeds the threshold.
	AboveThreshold int `json:"above_threshold"`
}

// RenderSignal encodes a row-major one-byte-per-pixel signal as a grayscale PNG.
func RenderSignal(signal []uint8, width, height int, threshold uint8) (*SignalResult, error) {
	if width <= 0 || height <= 0 || len(signal) != width*height {
		return nil, fmt.Errorf("signal length %d does not match %dx%d", len(signal), width, height)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	copy(gray.Pix, signal)

	res := &SignalResult{
		Width:    width,
		Height:   height,
		MimeType: "image/png",
	}
	for _, v := range signal {
		if v > res.MaxSignal {
			res.MaxSignal = v
		}
		if v > threshold {
			res.AboveThreshold++
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("failed to encode signal image: %w", err)
	}
	res.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())

	return res, nil
}
