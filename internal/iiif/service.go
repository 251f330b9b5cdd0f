package iiif

import (
	"context"
	"strings"
)

// Service runs the full negotiation pipeline for one handler instance. Its
// limits and output preferences are fixed at construction, so concurrent
// resolution calls need no coordination.
type Service struct {
	client  *Client
	limits  Limits
	quality string
	format  string
}

// NewService builds a Service around client with the given ceiling and
// output quality/format for produced URLs.
func NewService(client *Client, limits Limits, quality, format string) *Service {
	return &Service{client: client, limits: limits, quality: quality, format: format}
}

// ImageResponse is the outcome of one resolution call: the negotiated
// request, the fitted dimensions, and the fetched bytes.
type ImageResponse struct {
	Request
	Width       int
	Height      int
	ContentType string
	Bytes       []byte
}

// ResolveImage negotiates and fetches the largest permissible rendering of
// the selected region of the resource at baseURI. An empty selector means
// the full image.
func (s *Service) ResolveImage(ctx context.Context, baseURI, selector string) (*ImageResponse, error) {
	region, err := ParseRegion(selector)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(baseURI, "/")
	info, err := s.client.FetchInfo(ctx, base)
	if err != nil {
		return nil, err
	}

	version := info.Version()
	regionW, regionH := region.PixelExtent(info.Width, info.Height)
	constraints := ResolveConstraints(info, regionW, regionH, s.limits)
	width, height := FitDimensions(regionW, regionH, constraints, version)
	req := BuildRequest(base, width, height, regionW, regionH, region, version, s.quality, s.format)

	img, err := s.client.FetchImage(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	return &ImageResponse{
		Request:     req,
		Width:       width,
		Height:      height,
		ContentType: img.ContentType,
		Bytes:       img.Bytes,
	}, nil
}

// FetchManifest retrieves and structurally validates a presentation manifest.
func (s *Service) FetchManifest(ctx context.Context, url string) ([]byte, error) {
	return s.client.FetchManifest(ctx, url)
}
