// Package detection extracts boundary contours from binary masks.
//
// A mask is an *image.Alpha in which every non-zero pixel is opaque. The
// contours of its opaque area are used to locate the seam of an edit so it
// can be feathered.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Contour points are reported in the mask's own coordinate space, so a mask
// whose bounds start at a non-zero offset yields points at that offset.
//
// # Connectivity
//
// Opacity is tested against the four direct neighbours: a pixel is on the
// boundary when one of them is transparent or outside the mask. Boundary
// pixels are then grouped with their eight surrounding neighbours, so a
// diagonal step along the outline does not split a contour.
package detection
