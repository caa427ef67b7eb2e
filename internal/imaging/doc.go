// Package imaging provides image I/O and inspection helpers around the
// region editor.
//
// It loads images through a shared ImageCache, encodes results to disk with
// Save, renders base64 previews with optional guide marks for tool
// responses, samples colors and compares two frames with Diff. The editing
// algorithms themselves live in package mosaic.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Supported Formats
//
// Load decodes PNG, JPEG, GIF, BMP, TIFF, WebP and QOI. Save writes PNG,
// JPEG, BMP and QOI, picking the encoder from the file extension.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and never modify their input images.
//
// # Error Handling
//
// Every load failure is reported as a *LoadError carrying the offending
// path. Other functions return plain wrapped errors for invalid input such as
// coordinates outside the image, mismatched sizes or unknown output formats.
package imaging
