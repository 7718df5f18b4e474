package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional region of interest. (x1,y1) inclusive, (x2,y2) exclusive. Reported coordinates stay in full-image space.",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

func thresholdProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"maximum":     255,
		"description": "Minimum background-subtracted intensity counted as bright. Default 75",
	}
}

func medianRadiusProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"description": "Half-width of the sliding median background window. The image (or region) must be at least 2*radius+1 pixels wide. Default 40",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load (or reload from disk) an image file and return its dimensions and format, and whether it is wide enough to scan for bright points.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_detect_points",
			Description: "Scan an image for bright points that stand out from a locally estimated background. " +
				"Returns one record per blob (its brightest pixel and contrast value) in discovery order, a scan_id for later calls, and value statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
					"exclusion_radius": map[string]interface{}{
						"type":        "number",
						"minimum":     0,
						"description": "Distance in pixels under which detections merge, and the length of the cooldown after a blob closes. Default 20",
					},
					"median_radius": medianRadiusProperty(),
					"blur_sigma": map[string]interface{}{
						"type":        "number",
						"minimum":     0,
						"description": "Optional Gaussian pre-smoothing radius to suppress single-pixel noise. Default 0 (off)",
					},
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_annotate_points",
			Description: "Draw a marker around each detected bright point and return the image as base64-encoded PNG. Uses a previous scan when scan_id is given, otherwise scans with default settings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scan_id": map[string]interface{}{
						"type":        "string",
						"description": "Optional id returned by image_detect_points for the same path",
					},
					"marker_color": map[string]interface{}{
						"type":        "string",
						"description": "Optional marker color as #RRGGBB. Default colors markers from blue (dim) to red (bright)",
					},
					"marker_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Half-size of the square marker in pixels. Default 6",
						"default":     6,
					},
					"show_values": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each marker with its contrast value",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_background_subtract",
			Description: "Render the local-contrast signal the point detector sees (pixel intensity minus sliding median background) as a base64-encoded grayscale PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProperty(),
					"threshold":     thresholdProperty(),
					"median_radius": medianRadiusProperty(),
					"region":        regionProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}
