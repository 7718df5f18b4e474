package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/brightpoint-mcp/internal/detection"
	"github.com/ironsheep/brightpoint-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_detect_points").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_detect_points":
		return s.handleDetectPoints(args)
	case "image_annotate_points":
		return s.handleAnnotatePoints(args)
	case "image_background_subtract":
		return s.handleBackgroundSubtract(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating absent arguments as empty.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = []byte("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	// image_load always reads the file, so a changed image replaces the cached one.
	s.cache.Evict(a.Path)
	return imaging.LoadImageInfo(s.cache, a.Path, s.defaults.WindowSize())
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

func (s *Server) handleDetectPoints(args json.RawMessage) (interface{}, error) {
	var a DetectRequest
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.Detect(a)
}

type annotatePointsArgs struct {
	Path         string `json:"path"`
	ScanID       string `json:"scan_id"`
	MarkerColor  string `json:"marker_color"`
	MarkerRadius int    `json:"marker_radius"`
	ShowValues   bool   `json:"show_values"`
}

func (s *Server) handleAnnotatePoints(args json.RawMessage) (interface{}, error) {
	var a annotatePointsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var points []detection.PointCandidate
	if a.ScanID != "" {
		res, ok := s.scans.get(a.ScanID)
		if !ok {
			return nil, fmt.Errorf("unknown scan id: %s", a.ScanID)
		}
		if res.Path != a.Path {
			return nil, fmt.Errorf("scan %s was taken from %s, not %s", a.ScanID, res.Path, a.Path)
		}
		points = res.Points
	} else {
		res, err := s.Detect(DetectRequest{Path: a.Path})
		if err != nil {
			return nil, err
		}
		points = res.Points
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Annotate(img, points, imaging.AnnotateOptions{
		MarkerColor:  a.MarkerColor,
		MarkerRadius: a.MarkerRadius,
		ShowValues:   a.ShowValues,
	})
}

type backgroundSubtractArgs struct {
	Path         string          `json:"path"`
	Threshold    *int            `json:"threshold"`
	MedianRadius *int            `json:"median_radius"`
	Region       *imaging.Region `json:"region"`
}

func (s *Server) handleBackgroundSubtract(args json.RawMessage) (interface{}, error) {
	var a backgroundSubtractArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	p, err := s.params(a.Threshold, nil, a.MedianRadius)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	frame, err := imaging.PrepareFrame(img, imaging.FrameOptions{Region: a.Region})
	if err != nil {
		return nil, err
	}

	signal, err := detection.Subtract(frame.Pix, frame.Width, frame.Height, p)
	if err != nil {
		return nil, fmt.Errorf("failed to subtract background of %s: %w", a.Path, err)
	}
	return imaging.RenderSignal(signal, frame.Width, frame.Height, p.Threshold)
}
