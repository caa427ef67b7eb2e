package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult is an image encoded for transport in a tool response.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview encodes img as a base64 PNG, optionally scaled. A scale of 0 or 1
// keeps the original size.
func Preview(img image.Image, scale float64) (*PreviewResult, error) {
	return PreviewRegion(img, img.Bounds(), scale)
}

// PreviewRegion encodes the part of img inside rect as a base64 PNG,
// optionally scaled. rect is clipped to the image bounds and must not be
// empty after clipping.
func PreviewRegion(img image.Image, rect image.Rectangle, scale float64) (*PreviewResult, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale must not be negative, got %g", scale)
	}

	bounds := img.Bounds()
	clipped := rect.Intersect(bounds)
	if clipped.Empty() {
		return nil, fmt.Errorf("preview region %v outside image bounds %v", rect, bounds)
	}

	out := imaging.Crop(img, clipped)
	if scale != 1.0 && scale > 0 {
		newWidth := max(int(float64(out.Bounds().Dx())*scale), 1)
		newHeight := max(int(float64(out.Bounds().Dy())*scale), 1)
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
