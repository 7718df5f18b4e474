// Package server implements the MCP (Model Context Protocol) server for bright
// point detection.
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
//   - image_dimensions: Get width and height
//   - image_detect_points: Scan for bright points
//   - image_annotate_points: Mark detected points on the image
//   - image_background_subtract: Render the background-subtracted signal
//
// # State
//
// Decoded images are cached by path for the lifetime of the process.
// Detection results are kept in a bounded store keyed by scan id so that
// image_annotate_points can draw a previous scan without repeating it.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
