package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/iiif-mcp/internal/iiif"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "iiif_fetch_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// contentItem is one entry of an MCP tool result's content array: either a
// text block or a base64 binary resource tagged with its MIME type.
type contentItem struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// toolResult is the content a tool handler produces.
type toolResult struct {
	Content []contentItem
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// Tool execution errors return a JSON-RPC error response with code -32000,
// with the failing tool named in the error data.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(context.Background(), params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": result.Content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Rejects missing required parameters before any network call
//  3. Runs the negotiation pipeline and/or fetch
//  4. Returns the result or the propagated error, prefixed with the tool name
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (*toolResult, error) {
	switch name {
	case "iiif_fetch_manifest":
		return s.handleFetchManifest(ctx, args)
	case "iiif_fetch_image":
		return s.handleFetchImage(ctx, args)
	case "iiif_fetch_image_region":
		return s.handleFetchImageRegion(ctx, args)
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

// errMissingParameter reports a required tool argument that was not supplied.
func errMissingParameter(tool, param string) error {
	return fmt.Errorf("%s: missing required parameter: %s", tool, param)
}

// imageContent wraps a resolved image as MCP content: the binary resource
// plus a text line reporting the negotiated request.
func imageContent(res *iiif.ImageResponse) *toolResult {
	summary := fmt.Sprintf("%s (%dx%d, %d bytes)", res.URL, res.Width, res.Height, len(res.Bytes))
	return &toolResult{Content: []contentItem{
		{
			Type:     "image",
			Data:     base64.StdEncoding.EncodeToString(res.Bytes),
			MimeType: res.ContentType,
		},
		{Type: "text", Text: summary},
	}}
}

type fetchManifestArgs struct {
	URL string `json:"url"`
}

func (s *Server) handleFetchManifest(ctx context.Context, args json.RawMessage) (*toolResult, error) {
	var a fetchManifestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.URL == "" {
		return nil, errMissingParameter("iiif_fetch_manifest", "url")
	}

	body, err := s.svc.FetchManifest(ctx, a.URL)
	if err != nil {
		return nil, fmt.Errorf("iiif_fetch_manifest: %w", err)
	}
	return &toolResult{Content: []contentItem{
		{Type: "text", Text: string(body)},
	}}, nil
}

type fetchImageArgs struct {
	BaseURI string `json:"base_uri"`
}

func (s *Server) handleFetchImage(ctx context.Context, args json.RawMessage) (*toolResult, error) {
	var a fetchImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BaseURI == "" {
		return nil, errMissingParameter("iiif_fetch_image", "base_uri")
	}

	res, err := s.svc.ResolveImage(ctx, a.BaseURI, "")
	if err != nil {
		return nil, fmt.Errorf("iiif_fetch_image: %w", err)
	}
	return imageContent(res), nil
}

type fetchImageRegionArgs struct {
	BaseURI string `json:"base_uri"`
	Region  string `json:"region"`
}

func (s *Server) handleFetchImageRegion(ctx context.Context, args json.RawMessage) (*toolResult, error) {
	var a fetchImageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BaseURI == "" {
		return nil, errMissingParameter("iiif_fetch_image_region", "base_uri")
	}
	if a.Region == "" {
		return nil, errMissingParameter("iiif_fetch_image_region", "region")
	}

	res, err := s.svc.ResolveImage(ctx, a.BaseURI, a.Region)
	if err != nil {
		return nil, fmt.Errorf("iiif_fetch_image_region: %w", err)
	}
	return imageContent(res), nil
}
