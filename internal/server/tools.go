package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// sliceProperties are the grid arguments shared by image_slice_plan and
// image_slice.
func sliceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"rows": map[string]interface{}{
			"type":        "integer",
			"description": "Number of grid rows (default 3)",
			"default":     3,
			"minimum":     1,
		},
		"cols": map[string]interface{}{
			"type":        "integer",
			"description": "Number of grid columns (default 3)",
			"default":     3,
			"minimum":     1,
		},
		"ratio_mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"original", "square"},
			"description": "Pre-crop before slicing: 'original' keeps the full image, 'square' crops a centered square. Default 'original'",
			"default":     "original",
		},
		"margins": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"top":    map[string]interface{}{"type": "integer", "minimum": 0},
				"bottom": map[string]interface{}{"type": "integer", "minimum": 0},
				"left":   map[string]interface{}{"type": "integer", "minimum": 0},
				"right":  map[string]interface{}{"type": "integer", "minimum": 0},
			},
			"description": "Pixels trimmed from each edge of the ratio-cropped image before the grid is computed",
		},
		"format": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"png", "jpg", "webp"},
			"description": "Output format of every slice. Default 'png'",
			"default":     "png",
		},
		"prefix": map[string]interface{}{
			"type":        "string",
			"description": "Filename stem for slices. Defaults to the source file name",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	sliceProps := sliceProperties()
	sliceProps["output_dir"] = map[string]interface{}{
		"type":        "string",
		"description": "Directory the ZIP archive is written to. Defaults to the server's output directory",
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and EXIF orientation. Dimensions are reported after orientation is applied, in the same pixel space slicing uses.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_slice_plan",
			Description: "Compute the grid for a slicing request without encoding anything. Returns the crop base, the usable region after margins, and every cell's pixel rectangle and filename.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sliceProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_slice",
			Description: "Slice an image into a grid of sub-images, encode each one and save them together as a ZIP archive. Returns the archive path and per-slice metadata. Cells whose encoding fails are listed under 'skipped'.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sliceProps,
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
