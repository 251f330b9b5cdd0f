package iiif

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client fetches IIIF resources over HTTP. Every call is a single attempt:
// failures surface immediately and nothing retries. Deadlines, if any, come
// from the caller's context.
type Client struct {
	hc *http.Client
}

// NewClient wraps hc, falling back to http.DefaultClient when hc is nil.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{hc: hc}
}

// FetchInfo retrieves and parses the capability descriptor at
// {baseURI}/info.json. One trailing path separator is stripped from the base
// so repeated separators never produce a malformed URL.
func (c *Client) FetchInfo(ctx context.Context, baseURI string) (*Info, error) {
	url := strings.TrimSuffix(baseURI, "/") + "/info.json"
	body, _, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseInfo(body)
}

// ImageResult holds fetched image bytes and their declared content type.
type ImageResult struct {
	ContentType string
	Bytes       []byte
}

// FetchImage retrieves image bytes from a negotiated request URL. When the
// server omits the Content-Type header, the generic JPEG type is assumed.
func (c *Client) FetchImage(ctx context.Context, url string) (*ImageResult, error) {
	body, contentType, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &ImageResult{ContentType: contentType, Bytes: body}, nil
}

// FetchManifest retrieves a presentation manifest and checks that it is a
// structured IIIF document. Full Presentation API validation is a separate
// concern; this only rejects bodies that cannot be a manifest at all.
func (c *Client) FetchManifest(ctx context.Context, url string) ([]byte, error) {
	body, _, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := validateManifest(body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) (body []byte, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &TransportError{Status: resp.StatusCode, URL: url}
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
