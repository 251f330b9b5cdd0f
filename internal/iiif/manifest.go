package iiif

import (
	"encoding/json"
	"fmt"
)

// validateManifest checks that body is parseable JSON self-describing as a
// IIIF document: an @context plus a type under either presentation
// generation.
func validateManifest(body []byte) error {
	var doc struct {
		Context json.RawMessage `json:"@context"`
		Type2   string          `json:"@type"`
		Type3   string          `json:"type"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if len(doc.Context) == 0 {
		return fmt.Errorf("%w: missing @context", ErrInvalidManifest)
	}
	if doc.Type2 == "" && doc.Type3 == "" {
		return fmt.Errorf("%w: missing document type", ErrInvalidManifest)
	}
	return nil
}
