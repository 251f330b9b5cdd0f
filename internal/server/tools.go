package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "iiif_fetch_manifest",
			Description: "Fetch a IIIF Presentation manifest by URL and return the manifest document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "URL of the IIIF manifest document",
					},
				},
				"required": []string{"url"},
			},
		},
		{
			Name:        "iiif_fetch_image",
			Description: "Fetch the full image for a IIIF Image API resource at the largest size the image server and the configured limits permit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_uri": map[string]interface{}{
						"type":        "string",
						"description": "Base URI of the image resource (the URL its info.json lives under)",
					},
				},
				"required": []string{"base_uri"},
			},
		},
		{
			Name:        "iiif_fetch_image_region",
			Description: "Fetch a percentage region of a IIIF Image API resource at the largest size the image server and the configured limits permit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_uri": map[string]interface{}{
						"type":        "string",
						"description": "Base URI of the image resource (the URL its info.json lives under)",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"description": "Region selector: 'full' or 'pct:x,y,w,h' with percentages in 0-100",
					},
				},
				"required": []string{"base_uri", "region"},
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
