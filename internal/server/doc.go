// Package server implements the MCP (Model Context Protocol) server for image slicing.
//
// This package provides a JSON-RPC 2.0 server that exposes grid slicing
// through the MCP protocol, so an MCP client can cut an image into tiles and
// receive them as a single ZIP archive. All processing is local.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_slice_plan: Resolve grid rectangles and filenames without encoding
//   - image_slice: Encode every cell and save the ZIP archive
//
// # Archives
//
// image_slice writes "{product}-{unix-millis}.zip" into the request's
// output_dir, or the server's configured output directory. Entries are named
// "{stem}_{row}_{col}.{ext}" with 1-based row and column.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// A cell that fails to encode is not an error: the tool succeeds and lists
// the cell under "skipped".
package server
