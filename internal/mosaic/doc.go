// Package mosaic implements region editing: pixelation, blur and image
// overlay of an elliptical region with rounded corners, opacity and a
// feathered seam.
//
// The entry point is Apply, which takes a read-only frame and a Params
// snapshot and returns a newly allocated result. Nothing in this package
// holds state between calls; repeated calls with updated parameters (for
// example while a slider is being dragged) need no synchronization.
//
// # Pipeline
//
// For Mosaic and Blur modes:
//
//  1. The edit region is computed from the center point and diameters and
//     clipped against the frame (ComputeRegion).
//  2. The region is copied and processed (Reduce or Smooth).
//  3. The processed patch is cut into an ellipse whose four corners can be
//     squared off independently (Shape).
//  4. The shaped patch is blended into a copy of the frame at the requested
//     opacity.
//  5. The seam along the shape boundary is feathered with a stepped opacity
//     ramp back toward the original (Feather).
//
// ImageOverlay mode resizes the mask image to cover the region and blends it
// in directly, skipping steps 3 to 5.
//
// # Parameter Normalization
//
// Apply never rejects geometric input. Out-of-range values are clamped by
// Params.Normalize (centers into the frame, cell fractions to [0.01, 1],
// opacity to [0, 1] and so on). Callers that prefer to surface bad input
// call Params.Validate first; it reports ErrInvalidRegion and
// ErrInvalidFraction violations.
package mosaic
