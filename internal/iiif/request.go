package iiif

import (
	"fmt"
	"strings"
)

// Request is a fully negotiated Image API request.
type Request struct {
	Region string `json:"region"`
	Size   string `json:"size"`
	URL    string `json:"url"`
}

// BuildRequest assembles the region and size parameters and the full request
// path. The size parameter uses the generation's maximum-resolution keyword
// exactly when the fitted dimensions equal the region's native extent (no
// scaling occurred); otherwise it is an explicit "w,h" pair. Rotation is
// fixed at zero.
func BuildRequest(baseURI string, width, height, regionWidth, regionHeight int, r Region, version Version, quality, format string) Request {
	size := fmt.Sprintf("%d,%d", width, height)
	if width == regionWidth && height == regionHeight {
		if version == V3 {
			size = "max"
		} else {
			size = "full"
		}
	}

	region := r.String()
	url := strings.Join([]string{
		strings.TrimSuffix(baseURI, "/"),
		region,
		size,
		"0",
		quality + "." + format,
	}, "/")

	return Request{Region: region, Size: size, URL: url}
}
