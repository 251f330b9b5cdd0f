package iiif

import (
	"errors"
	"fmt"
)

var (
	// ErrRegionSyntax reports a region selector that is neither "full" nor
	// a well-formed "pct:x,y,w,h" rectangle.
	ErrRegionSyntax = errors.New("invalid region syntax")

	// ErrRegionBounds reports a syntactically valid rectangle whose
	// coordinates fall outside the 0-100 percentage range.
	ErrRegionBounds = errors.New("region out of bounds")

	// ErrMalformedInfo reports an info.json document that cannot be parsed
	// or is missing its native dimensions.
	ErrMalformedInfo = errors.New("malformed info document")

	// ErrInvalidManifest reports a manifest body that is not a structured
	// IIIF document.
	ErrInvalidManifest = errors.New("invalid manifest document")
)

// TransportError reports a non-success HTTP status at either network
// boundary.
type TransportError struct {
	Status int
	URL    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed with HTTP status %d: %s", e.Status, e.URL)
}
