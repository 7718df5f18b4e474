package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/brightpoint-mcp/internal/config"
	"github.com/ironsheep/brightpoint-mcp/internal/detection"
	"github.com/ironsheep/brightpoint-mcp/internal/server"
)

func newServer() *server.Server {
	return server.New(&config.Config{Detection: detection.DefaultParams(), MaxScans: 2})
}

// writeBlobImage writes a 200x40 grey PNG with one 5x5 white square at (100, 10).
func writeBlobImage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 200, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			c := color.RGBA{50, 50, 50, 255}
			if x >= 100 && x < 105 && y >= 10 && y < 15 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "blob.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestRunScan(t *testing.T) {
	path := writeBlobImage(t)

	var out bytes.Buffer
	if err := runScan(newServer(), []string{path}, &out); err != nil {
		t.Fatalf("runScan failed: %v", err)
	}

	if !strings.Contains(out.String(), "\n  \"scan_id\"") {
		t.Errorf("output should be indented JSON, got:\n%s", out.String())
	}

	var res server.DetectResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	want := detection.PointCandidate{X: 100, Y: 10, Val: 205}
	if res.Count != 1 || len(res.Points) != 1 || res.Points[0] != want {
		t.Errorf("points: got %+v, want [%+v]", res.Points, want)
	}
	if res.Path != path {
		t.Errorf("Path: got %s, want %s", res.Path, path)
	}
}

func TestRunScan_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.png", "b.png"}} {
		var out bytes.Buffer
		err := runScan(newServer(), args, &out)
		if !errors.Is(err, errScanUsage) {
			t.Errorf("args %v: got %v, want errScanUsage", args, err)
		}
		if out.Len() != 0 {
			t.Errorf("args %v: nothing should be written, got %q", args, out.String())
		}
	}
}

func TestRunScan_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runScan(newServer(), []string{"/nonexistent/blob.png"}, &out)
	if err == nil || errors.Is(err, errScanUsage) {
		t.Errorf("got %v, want a load error", err)
	}
}
