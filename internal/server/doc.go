// Package server implements the MCP (Model Context Protocol) server for the
// region editor.
//
// This package provides a JSON-RPC 2.0 server that exposes one interactive
// editing session through the MCP protocol. A client opens an image, picks a
// mode, moves the edit region with clicks and inspects the preview until it
// applies or reverts the edit.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Session Lifecycle:
//   - session_open: Start editing an image, with an optional overlay image
//   - session_close: Drop the session
//
// Editing:
//   - session_set_mode: mosaic, blur or image overlay
//   - session_set_controls: Region size, corner rounding, cell size,
//     opacity, sharp color and feather sliders
//   - session_click: Center the region on a point and edit
//   - session_apply: Commit the pending edit
//   - session_revert: Discard the pending edit
//
// Inspection:
//   - session_preview: Current preview as base64 PNG, optionally with guides
//   - session_sample_color: Color at a pixel of the preview
//   - session_diff: Preview compared with the last applied image
//   - session_save: Write the preview to disk
//
// Only one session is open at a time; session_open replaces it. Session
// tools called before session_open fail with "no open session".
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses with:
//   - code: -32602 for undecodable arguments, -32601 for unknown methods,
//     -32000 for any other tool failure
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.Config{Version: Version})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
