package iiif

// Limits is the caller's absolute ceiling, fixed for the lifetime of one
// handler instance. A zero MaxArea means no area ceiling.
type Limits struct {
	MaxDimension int
	MaxArea      int64
}

// Constraints is the effective size bound for one resolution call: the
// tightest of the region's own extent, the server's declared limits, and the
// caller's ceiling. MaxArea is meaningful only when HasArea is true.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
	MaxArea   int64
	HasArea   bool
}

// ResolveConstraints merges the server's declared limits with the caller's
// ceiling for a region of the given pixel extent. Server limits come from the
// descriptor's top level under v3 and from its profile extension under v2.
// No field is validated here; degenerate inputs propagate and produce
// zero-sized fits downstream.
func ResolveConstraints(info *Info, regionWidth, regionHeight int, cfg Limits) Constraints {
	c := Constraints{MaxWidth: regionWidth, MaxHeight: regionHeight}
	area := int64(regionWidth) * int64(regionHeight)

	maxW, maxH, maxArea := info.MaxWidth, info.MaxHeight, info.MaxArea
	if info.Version() == V2 {
		maxW, maxH, maxArea = info.profileLimits()
	}

	if maxW > 0 {
		c.MaxWidth = min(c.MaxWidth, maxW)
		// An absent maxHeight means equal to maxWidth.
		if maxH == 0 {
			maxH = maxW
		}
	}
	if maxH > 0 {
		c.MaxHeight = min(c.MaxHeight, maxH)
	}
	if maxArea > 0 {
		area = min(area, maxArea)
		c.HasArea = true
	}

	// The caller's ceiling clamps last and always wins over the server's.
	if cfg.MaxDimension > 0 {
		c.MaxWidth = min(c.MaxWidth, cfg.MaxDimension)
		c.MaxHeight = min(c.MaxHeight, cfg.MaxDimension)
	}
	if cfg.MaxArea > 0 {
		area = min(area, cfg.MaxArea)
		c.HasArea = true
	}

	if c.HasArea {
		c.MaxArea = area
	}
	return c
}
