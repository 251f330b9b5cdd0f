package iiif

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Version identifies the Image API generation a descriptor speaks.
type Version int

const (
	// V2 is the older generation. Size limits live inside an extension
	// object in the profile list, and "full" requests native resolution.
	V2 Version = 2

	// V3 is the newer generation. Size limits are top-level descriptor
	// fields, and "max" requests native resolution.
	V3 Version = 3
)

// Info is the capability descriptor a server publishes as info.json.
// It is immutable once fetched and scoped to a single resolution call.
type Info struct {
	Context  string `json:"@context,omitempty"`
	Protocol string `json:"protocol,omitempty"` // v2
	Type     string `json:"type,omitempty"`     // v3
	LegacyID string `json:"@id,omitempty"`      // v2
	ID       string `json:"id,omitempty"`       // v3
	Width    int    `json:"width"`
	Height   int    `json:"height"`

	// v3 declares its size limits at the top level.
	MaxWidth  int   `json:"maxWidth,omitempty"`
	MaxHeight int   `json:"maxHeight,omitempty"`
	MaxArea   int64 `json:"maxArea,omitempty"`

	// Profile may be a bare compliance-level string or a list mixing
	// strings and extension objects. v2 carries its size limits in an
	// extension object here.
	Profile json.RawMessage `json:"profile,omitempty"`
}

// ParseInfo decodes a capability descriptor and checks that it declares
// native dimensions.
func ParseInfo(data []byte) (*Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInfo, err)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("%w: missing native width/height", ErrMalformedInfo)
	}
	return &info, nil
}

// Version detects the API generation from the descriptor's self-description.
// Documents that identify neither generation are treated as v2, which trusts
// no top-level limit fields.
func (info *Info) Version() Version {
	switch {
	case info.Type == "ImageService3" || strings.Contains(info.Context, "/image/3/"):
		return V3
	case strings.Contains(info.Context, "/image/2/") || info.Protocol != "" || info.LegacyID != "":
		return V2
	case info.ID != "":
		return V3
	}
	return V2
}

// profileExtension is the v2 capability-extension object shape.
type profileExtension struct {
	MaxWidth  int      `json:"maxWidth,omitempty"`
	MaxHeight int      `json:"maxHeight,omitempty"`
	MaxArea   int64    `json:"maxArea,omitempty"`
	Supports  []string `json:"supports,omitempty"`
}

// profileLimits extracts the v2 size limits from the profile list. String
// entries are compliance-level URIs and carry no limits; a bare string
// profile or an unparseable one yields no limits at all.
func (info *Info) profileLimits() (maxWidth, maxHeight int, maxArea int64) {
	if len(info.Profile) == 0 {
		return 0, 0, 0
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(info.Profile, &entries); err != nil {
		return 0, 0, 0
	}
	for _, entry := range entries {
		var ext profileExtension
		if err := json.Unmarshal(entry, &ext); err != nil {
			continue
		}
		if ext.MaxWidth > 0 {
			maxWidth = ext.MaxWidth
		}
		if ext.MaxHeight > 0 {
			maxHeight = ext.MaxHeight
		}
		if ext.MaxArea > 0 {
			maxArea = ext.MaxArea
		}
	}
	return maxWidth, maxHeight, maxArea
}
