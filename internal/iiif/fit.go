package iiif

import "math"

// FitDimensions computes the largest proportionally-scaled dimensions for a
// width x height source that satisfy c. The scale is capped at 1.0, so a
// region is never upsized, and every stage floors.
//
// Area is a non-linear constraint that cannot fold into the same linear scale
// factor without skewing the aspect ratio, so it is corrected in a second
// pass. Only v3 defines semantics for an area limit; under v2 the correction
// never runs even when an area figure is present.
func FitDimensions(width, height int, c Constraints, version Version) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	scale := math.Min(float64(c.MaxWidth)/float64(width), float64(c.MaxHeight)/float64(height))
	scale = math.Min(scale, 1.0)
	w := int(math.Floor(float64(width) * scale))
	h := int(math.Floor(float64(height) * scale))

	if version == V3 && c.HasArea {
		if area := int64(w) * int64(h); area > c.MaxArea {
			correction := math.Sqrt(float64(c.MaxArea) / float64(area))
			w = int(math.Floor(float64(w) * correction))
			h = int(math.Floor(float64(h) * correction))
		}
	}
	return w, h
}
