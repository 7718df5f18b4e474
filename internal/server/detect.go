package server

import (
	"fmt"
	"log"

	"github.com/ironsheep/brightpoint-mcp/internal/detection"
	"github.com/ironsheep/brightpoint-mcp/internal/imaging"
)

// DetectRequest describes one bright point scan of an image file. Nil
// parameter fields fall back to the server defaults.
type DetectRequest struct {
	Path            string          `json:"path"`
	Threshold       *int            `json:"threshold,omitempty"`
	ExclusionRadius *float64        `json:"exclusion_radius,omitempty"`
	MedianRadius    *int            `json:"median_radius,omitempty"`
	BlurSigma       float64         `json:"blur_sigma,omitempty"`
	Region          *imaging.Region `json:"region,omitempty"`
}

// DetectResult is the outcome of a scan, with points in image coordinates.
type DetectResult struct {
	// ScanID identifies the result for later tool calls.
	ScanID string `json:"scan_id"`

	Path      string           `json:"path"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Region    *imaging.Region  `json:"region,omitempty"`
	BlurSigma float64          `json:"blur_sigma,omitempty"`
	Params    detection.Params `json:"params"`

	// Points are in discovery order.
	Points  []detection.PointCandidate `json:"points"`
	Count   int                        `json:"count"`
	Summary detection.Summary          `json:"summary"`
	Stats   detection.Stats            `json:"stats"`
}

// params merges the request's overrides onto the server defaults.
func (s *Server) params(threshold *int, exclusionRadius *float64, medianRadius *int) (detection.Params, error) {
	p := s.defaults
	if threshold != nil {
		if *threshold < 0 || *threshold > 255 {
			return p, fmt.Errorf("threshold %d must be between 0 and 255", *threshold)
		}
		p.Threshold = uint8(*threshold)
	}
	if exclusionRadius != nil {
		p.ExclusionRadius = *exclusionRadius
	}
	if medianRadius != nil {
		p.MedianRadius = *medianRadius
	}
	return p, p.Validate()
}

// Detect loads the image at req.Path, scans it and stores the result.
//
// Images whose last stored scan is evicted from the scan store are dropped
// from the image cache as well.
func (s *Server) Detect(req DetectRequest) (*DetectResult, error) {
	p, err := s.params(req.Threshold, req.ExclusionRadius, req.MedianRadius)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(req.Path)
	if err != nil {
		return nil, err
	}

	frame, err := imaging.PrepareFrame(img, imaging.FrameOptions{Region: req.Region, BlurSigma: req.BlurSigma})
	if err != nil {
		return nil, err
	}

	d, err := detection.NewDetector(p)
	if err != nil {
		return nil, err
	}
	scan, err := d.Detect(frame.Pix, frame.Width, frame.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", req.Path, err)
	}

	points := make([]detection.PointCandidate, len(scan.Points))
	for i, pt := range scan.Points {
		points[i] = detection.PointCandidate{
			X:   pt.X + uint32(frame.OriginX),
			Y:   pt.Y + uint32(frame.OriginY),
			Val: pt.Val,
		}
	}

	bounds := img.Bounds()
	res := &DetectResult{
		Path:      req.Path,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Region:    req.Region,
		BlurSigma: req.BlurSigma,
		Params:    p,
		Points:    points,
		Count:     len(points),
		Summary:   detection.Summarize(points),
		Stats:     scan.Stats,
	}
	_, released := s.scans.put(res)
	for _, path := range released {
		s.cache.Evict(path)
	}

	if s.debug {
		log.Printf("scan %s: %d points in %s (%dx%d frame, %d pixels, open at end: %v)",
			res.ScanID, res.Count, req.Path, frame.Width, frame.Height, scan.Stats.PixelsScanned, scan.Stats.OpenAtEnd)
	}

	return res, nil
}
