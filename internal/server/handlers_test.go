package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ironsheep/iiif-mcp/internal/iiif"
)

// newIIIFBackend serves a v3 info.json under /iiif/page1 and image bytes for
// everything else.
func newIIIFBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/iiif/page1/info.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"@context": "http://iiif.io/api/image/3/context.json",
				"id": "x", "type": "ImageService3",
				"width": 5040, "height": 7520, "maxWidth": 1000
			}`))
		case r.URL.Path == "/manifest.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"@context":"http://iiif.io/api/presentation/3/context.json","type":"Manifest"}`))
		default:
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte("jpeg-bytes"))
		}
	}))
}

// newTestServer builds a Server whose limits match the given ceiling.
func newTestServer(maxDimension int) *Server {
	limits := iiif.Limits{MaxDimension: maxDimension}
	return &Server{svc: iiif.NewService(iiif.NewClient(nil), limits, "default", "jpg")}
}

func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	return s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
}

func TestHandleToolsCall_FetchImage(t *testing.T) {
	backend := newIIIFBackend(t)
	defer backend.Close()

	s := newTestServer(2000)
	resp := callTool(t, s, "iiif_fetch_image", map[string]interface{}{
		"base_uri": backend.URL + "/iiif/page1",
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]contentItem)
	if !ok {
		t.Fatal("content should be a contentItem slice")
	}
	if len(content) != 2 {
		t.Fatalf("Expected 2 content items, got %d", len(content))
	}

	if content[0].Type != "image" {
		t.Errorf("content[0].Type: got %s, want image", content[0].Type)
	}
	if content[0].MimeType != "image/jpeg" {
		t.Errorf("content[0].MimeType: got %s", content[0].MimeType)
	}
	decoded, err := base64.StdEncoding.DecodeString(content[0].Data)
	if err != nil {
		t.Fatalf("content[0].Data is not base64: %v", err)
	}
	if string(decoded) != "jpeg-bytes" {
		t.Errorf("decoded bytes: got %q", decoded)
	}

	if content[1].Type != "text" {
		t.Errorf("content[1].Type: got %s, want text", content[1].Type)
	}
	if !strings.Contains(content[1].Text, "670x1000") {
		t.Errorf("summary should report negotiated dimensions, got %q", content[1].Text)
	}
}

func TestHandleToolsCall_FetchImageRegion(t *testing.T) {
	backend := newIIIFBackend(t)
	defer backend.Close()

	s := newTestServer(1000)
	resp := callTool(t, s, "iiif_fetch_image_region", map[string]interface{}{
		"base_uri": backend.URL + "/iiif/page1",
		"region":   "pct:15,30,25,30",
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]contentItem)
	if !strings.Contains(content[1].Text, "pct:15,30,25,30") {
		t.Errorf("summary should carry the region parameter, got %q", content[1].Text)
	}
}

func TestHandleToolsCall_FetchManifest(t *testing.T) {
	backend := newIIIFBackend(t)
	defer backend.Close()

	s := newTestServer(1000)
	resp := callTool(t, s, "iiif_fetch_manifest", map[string]interface{}{
		"url": backend.URL + "/manifest.json",
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]contentItem)
	if len(content) != 1 || content[0].Type != "text" {
		t.Fatalf("Expected one text content item, got %+v", content)
	}
	if !strings.Contains(content[0].Text, "Manifest") {
		t.Errorf("manifest text missing, got %q", content[0].Text)
	}
}

func TestHandleToolsCall_MissingParameters(t *testing.T) {
	tests := []struct {
		tool    string
		args    map[string]interface{}
		wantMsg string
	}{
		{"iiif_fetch_manifest", map[string]interface{}{}, "missing required parameter: url"},
		{"iiif_fetch_image", map[string]interface{}{}, "missing required parameter: base_uri"},
		{"iiif_fetch_image_region", map[string]interface{}{}, "missing required parameter: base_uri"},
		{
			"iiif_fetch_image_region",
			map[string]interface{}{"base_uri": "https://example.org/iiif/x"},
			"missing required parameter: region",
		},
	}

	s := newTestServer(1000)
	for _, tt := range tests {
		t.Run(tt.tool+"/"+tt.wantMsg, func(t *testing.T) {
			resp := callTool(t, s, tt.tool, tt.args)

			if resp.Error == nil {
				t.Fatal("Expected error for missing parameter")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
			}
			data, _ := resp.Error.Data.(string)
			if !strings.Contains(data, tt.wantMsg) {
				t.Errorf("Error data: got %q, want substring %q", data, tt.wantMsg)
			}
			if !strings.Contains(data, tt.tool) {
				t.Errorf("Error data should name the failing tool, got %q", data)
			}
		})
	}
}

func TestHandleToolsCall_InvalidRegion(t *testing.T) {
	backend := newIIIFBackend(t)
	defer backend.Close()

	s := newTestServer(1000)
	resp := callTool(t, s, "iiif_fetch_image_region", map[string]interface{}{
		"base_uri": backend.URL + "/iiif/page1",
		"region":   "pct:80,0,25,30",
	})

	if resp.Error == nil {
		t.Fatal("Expected error for out-of-bounds region")
	}
	data, _ := resp.Error.Data.(string)
	if !strings.Contains(data, "iiif_fetch_image_region") {
		t.Errorf("Error data should name the failing tool, got %q", data)
	}
	if !strings.Contains(data, "region out of bounds") {
		t.Errorf("Error data should preserve the underlying message, got %q", data)
	}
}

func TestHandleToolsCall_TransportErrorSurfaced(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer backend.Close()

	s := newTestServer(1000)
	resp := callTool(t, s, "iiif_fetch_image", map[string]interface{}{
		"base_uri": backend.URL + "/iiif/missing",
	})

	if resp.Error == nil {
		t.Fatal("Expected error for 404 backend")
	}
	data, _ := resp.Error.Data.(string)
	if !strings.Contains(data, "404") {
		t.Errorf("Error data should carry the HTTP status, got %q", data)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer(1000)
	resp := callTool(t, s, "iiif_resize_image", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(1000)
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name": 12}`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}
