package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xfmoulet/qoi"
)

// DefaultJPEGQuality is used when SaveOptions.JPEGQuality is zero.
const DefaultJPEGQuality = 95

// SaveOptions controls how Save encodes an image.
type SaveOptions struct {
	// JPEGQuality is the JPEG quality from 1 to 100. Zero selects
	// DefaultJPEGQuality. Ignored for other formats.
	JPEGQuality int
}

// SaveResult describes a written image file.
type SaveResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Save encodes img to path, choosing the encoder from the file extension:
//   - ".png" -> PNG
//   - ".jpg", ".jpeg" -> JPEG at opts.JPEGQuality
//   - ".bmp" -> BMP
//   - ".qoi" -> QOI
//
// Any other extension is an error and nothing is written. An existing file
// at path is replaced.
func Save(img image.Image, path string, opts SaveOptions) (*SaveResult, error) {
	format := formatFromExt(path)
	encoder, err := encoderFor(format, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot save %s: %w", path, err)
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return nil, fmt.Errorf("failed to save image %s: %w", path, err)
	}

	bounds := img.Bounds()
	return &SaveResult{
		Path:   path,
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

func encoderFor(format string, opts SaveOptions) (imgio.Encoder, error) {
	switch format {
	case "png":
		return imgio.PNGEncoder(), nil
	case "jpeg":
		quality := opts.JPEGQuality
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		if quality < 1 || quality > 100 {
			return nil, fmt.Errorf("jpeg quality must be between 1 and 100, got %d", quality)
		}
		return imgio.JPEGEncoder(quality), nil
	case "bmp":
		return imgio.BMPEncoder(), nil
	case "qoi":
		return qoi.Encode, nil
	}
	return nil, fmt.Errorf("unsupported output format %q (use .png, .jpg, .bmp or .qoi)", format)
}
