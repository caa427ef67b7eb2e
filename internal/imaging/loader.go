package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/xfmoulet/qoi" // Register QOI format decoder
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// errNoPixels is wrapped in a LoadError for images that decode to an empty
// rectangle.
var errNoPixels = errors.New("image has no pixels")

// LoadError reports an image path that could not be opened or decoded.
//
// Every error returned by ImageCache.Load is a *LoadError. Use errors.As to
// recover the path, and errors.Is on the wrapped error to distinguish a
// missing file (fs.ErrNotExist) from an undecodable one.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ImageCache keeps decoded images in memory, keyed by the path string they
// were loaded from. Two spellings of the same file are two entries.
//
// An editing session loads its source and overlay image through the cache
// and evicts them when it closes; nothing is evicted automatically.
//
// ImageCache is safe for concurrent use. Cached images are shared between
// callers and must be treated as read-only.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the image at path, decoding it on first use. PNG, JPEG, GIF,
// BMP, TIFF, WebP and QOI are recognized by content, not extension.
//
// The concrete type is whatever the decoder produces (*image.NRGBA,
// *image.YCbCr, *image.Paletted, ...). Failures, including an image
// without pixels, are returned as *LoadError and are not cached.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, errNoPixels
	}
	return img, nil
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict drops the image cached under path, if any. The next Load of path
// reads the file again.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Has reports whether the image at path is cached.
func (c *ImageCache) Has(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.images[path]
	return ok
}

// ImageInfo is what image_load reports about a file.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is guessed from the file extension: "png", "jpeg", "gif",
	// "bmp", "tiff", "webp", "qoi" or "unknown".
	Format string `json:"format"`

	// ColorDepth is "16-bit" for 16-bit-per-channel image types and
	// "8-bit" otherwise.
	ColorDepth string `json:"color_depth"`

	HasAlpha      bool  `json:"has_alpha"`
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	info := &ImageInfo{
		Width:         img.Bounds().Dx(),
		Height:        img.Bounds().Dy(),
		Format:        formatFromExt(path),
		ColorDepth:    "8-bit",
		FileSizeBytes: stat.Size(),
	}
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		info.HasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		info.HasAlpha = true
		info.ColorDepth = "16-bit"
	case *image.Gray16:
		info.ColorDepth = "16-bit"
	}
	return info, nil
}

// DimensionsResult is the size of an image in pixels.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads path through cache and returns its size.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

// formatFromExt names the image format implied by the file extension of
// path. Save uses it to pick an encoder.
func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	case ".qoi":
		return "qoi"
	}
	return "unknown"
}
