// Package server implements the MCP (Model Context Protocol) server for the
// IIIF image tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the IIIF
// negotiation engine through the MCP protocol. It's designed to work with
// Claude and other MCP-compatible clients, letting an agent pull manifests
// and correctly-sized image derivatives from IIIF servers.
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
//   - iiif_fetch_manifest: Fetch a Presentation manifest document by URL
//   - iiif_fetch_image: Fetch a full image at the largest permitted size
//   - iiif_fetch_image_region: Fetch a pct: region at the largest permitted size
//
// Image tools return MCP image content (base64 bytes with a MIME type) plus a
// text line reporting the negotiated request URL and dimensions. The manifest
// tool returns the document as text content.
//
// # State
//
// The server holds no per-call state. The handler configuration (size
// ceiling, output quality/format) is fixed at construction, so concurrent
// tool calls need no coordination, and nothing is cached between calls.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The underlying error, prefixed with the tool that failed
//
// A failed call leaves the server fully usable for subsequent calls.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
