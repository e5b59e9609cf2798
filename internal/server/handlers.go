package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/image-slice-mcp/internal/imaging"
	"github.com/ironsheep/image-slice-mcp/internal/slicing"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_slice").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_slice_plan":
		return s.handleImageSlicePlan(args)
	case "image_slice":
		return s.handleImageSlice(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Slicing ===

type imageSliceArgs struct {
	Path      string           `json:"path"`
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	RatioMode string           `json:"ratio_mode"`
	Margins   *slicing.Margins `json:"margins,omitempty"`
	Format    string           `json:"format"`
	Prefix    string           `json:"prefix"`
	OutputDir string           `json:"output_dir"`
}

// config applies defaults to omitted arguments and validates the result.
func (a imageSliceArgs) config() (slicing.Config, error) {
	cfg := slicing.DefaultConfig()
	if a.Rows != 0 {
		cfg.Rows = a.Rows
	}
	if a.Cols != 0 {
		cfg.Cols = a.Cols
	}
	if a.Margins != nil {
		cfg.Margins = *a.Margins
	}
	cfg.Prefix = a.Prefix

	var err error
	if cfg.RatioMode, err = slicing.ParseRatioMode(a.RatioMode); err != nil {
		return cfg, err
	}
	if cfg.Format, err = slicing.ParseFormat(a.Format); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (s *Server) handleImageSlicePlan(args json.RawMessage) (interface{}, error) {
	var a imageSliceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	w, h, err := imaging.GetDimensions(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	return slicing.NewPlan(w, h, cfg, a.Path), nil
}

// SliceResult is the image_slice tool output.
type SliceResult struct {
	ArchivePath  string                `json:"archive_path"`
	ArchiveBytes int                   `json:"archive_bytes"`
	SliceCount   int                   `json:"slice_count"`
	Slices       []slicing.Slice       `json:"slices"`
	Skipped      []slicing.SkippedCell `json:"skipped,omitempty"`
}

func (s *Server) handleImageSlice(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageSliceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	res, err := s.slicer.SliceImage(ctx, slicing.Request{
		Data:     data,
		Filename: a.Path,
		Config:   cfg,
	})
	if err != nil {
		return nil, err
	}

	outDir := a.OutputDir
	if outDir == "" {
		outDir = s.cfg.OutputDir
	}
	archivePath, err := slicing.TriggerDownload(res.Archive, outDir, slicing.ArchiveName(s.cfg.ProductName, s.now()))
	if err != nil {
		return nil, err
	}

	return &SliceResult{
		ArchivePath:  archivePath,
		ArchiveBytes: len(res.Archive),
		SliceCount:   len(res.Slices),
		Slices:       res.Slices,
		Skipped:      res.Skipped,
	}, nil
}
