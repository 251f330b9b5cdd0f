package iiif

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fullRegion is the Image API sentinel for the whole image.
const fullRegion = "full"

// Region identifies the part of an image a request addresses: the full image
// or a percentage rectangle. Coordinates are percentages of the native size
// and are meaningful only when Full is false.
type Region struct {
	Full       bool
	X, Y, W, H float64
}

// ParseRegion converts a caller-supplied region selector into a Region.
// An absent or "full" selector yields the full-image region; anything else
// must be "pct:" followed by exactly four comma-separated numbers with
// x+w <= 100 and y+h <= 100.
func ParseRegion(selector string) (Region, error) {
	if selector == "" || selector == fullRegion {
		return Region{Full: true}, nil
	}

	rest, ok := strings.CutPrefix(selector, "pct:")
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrRegionSyntax, selector)
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("%w: %q needs four comma-separated numbers", ErrRegionSyntax, selector)
	}

	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Region{}, fmt.Errorf("%w: %q is not a number", ErrRegionSyntax, part)
		}
		vals[i] = v
	}

	r := Region{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}
	switch {
	case r.X < 0 || r.Y < 0:
		return Region{}, fmt.Errorf("%w: negative offset in %q", ErrRegionBounds, selector)
	case r.W <= 0 || r.H <= 0:
		return Region{}, fmt.Errorf("%w: width and height must be positive in %q", ErrRegionBounds, selector)
	case r.X+r.W > 100 || r.Y+r.H > 100:
		return Region{}, fmt.Errorf("%w: %q extends past the image edge", ErrRegionBounds, selector)
	}
	return r, nil
}

// PixelExtent converts the region's percentage extent to pixels on an image
// of the given native size. Sizes floor, never round.
func (r Region) PixelExtent(nativeWidth, nativeHeight int) (int, int) {
	if r.Full {
		return nativeWidth, nativeHeight
	}
	w := int(math.Floor(r.W / 100 * float64(nativeWidth)))
	h := int(math.Floor(r.H / 100 * float64(nativeHeight)))
	return w, h
}

// String renders the Image API region parameter. Percentage rectangles are
// reconstructed from the parsed coordinates rather than recomputed from
// pixels, so the emitted parameter cannot drift from the requested region.
func (r Region) String() string {
	if r.Full {
		return fullRegion
	}
	return fmt.Sprintf("pct:%s,%s,%s,%s", fmtPct(r.X), fmtPct(r.Y), fmtPct(r.W), fmtPct(r.H))
}

func fmtPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
