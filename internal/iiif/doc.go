// Package iiif implements the IIIF Image API negotiation engine.
//
// Given a remote image's capability descriptor (its info.json document), an
// optional percentage region selector, and the handler's configured ceiling,
// the engine computes the largest permissible pixel dimensions and builds the
// conformant Image API request path for them. The pipeline is:
//
//	ParseRegion -> ResolveConstraints -> FitDimensions -> BuildRequest
//
// with Client performing the two network calls around it (descriptor fetch,
// then image fetch). All of the arithmetic stages are pure; no state survives
// a resolution call.
//
// # API generations
//
// The Image API declares size limits differently across its two generations.
// Version 3 carries maxWidth, maxHeight, and maxArea at the top level of the
// descriptor; version 2 nests the same fields inside an extension object in
// its profile list. Both shapes normalize into one Constraints value. An area
// limit is only ever enforced under version 3, which is the generation that
// defines semantics for it.
//
// # Sizing rules
//
//   - The engine only downsizes. A region smaller than every limit is
//     requested at its native size using the generation's keyword ("max" for
//     v3, "full" for v2) rather than an explicit pixel pair.
//   - The caller's configured ceiling always clamps after the server's
//     declared limits, so it wins whenever the two disagree.
//   - Every scaling step floors. This matches the behavior of the servers the
//     engine was validated against; do not switch to rounding.
//
// # Error handling
//
// Malformed region selectors fail with ErrRegionSyntax or ErrRegionBounds.
// Network calls fail with *TransportError on a non-success status and with
// ErrMalformedInfo when a descriptor cannot be parsed or lacks its native
// dimensions. Errors propagate immediately; nothing retries.
package iiif
