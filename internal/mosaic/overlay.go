package mosaic

import (
	"image"

	"github.com/disintegration/imaging"
)

// CoverResize scales mask uniformly so that it covers a targetH x targetW
// box. The larger of the two axis ratios is applied to both axes, so one side
// of the result may be longer than the box. Nothing is cropped.
func CoverResize(mask image.Image, targetH, targetW int) *image.NRGBA {
	b := mask.Bounds()
	mh, mw := b.Dy(), b.Dx()
	if mh == 0 || mw == 0 {
		return imaging.Clone(mask)
	}

	ratio := float64(targetH) / float64(mh)
	if r := float64(targetW) / float64(mw); r > ratio {
		ratio = r
	}
	h := max(int(float64(mh)*ratio), 1)
	w := max(int(float64(mw)*ratio), 1)
	return imaging.Resize(mask, w, h, imaging.Linear)
}

// overlayRect is where a cover-resized overlay of the given size lands. It
// is anchored at the top-left corner of region and spans at most the full
// diameter box, even when region itself was clipped at the left or top, and
// never leaves frame.
func overlayRect(region image.Rectangle, size, diameter image.Point, frame image.Rectangle) image.Rectangle {
	extent := image.Pt(min(size.X, diameter.X), min(size.Y, diameter.Y))
	return image.Rectangle{Min: region.Min, Max: region.Min.Add(extent)}.Intersect(frame)
}

// blendOverlay blends overlay into dst over rect. The overlay's origin is
// aligned with rect.Min; its alpha channel is ignored.
func blendOverlay(dst, overlay *image.NRGBA, rect image.Rectangle, opacity float64) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			src := overlay.NRGBAAt(x-rect.Min.X, y-rect.Min.Y)
			dst.SetNRGBA(x, y, blendColor(dst.NRGBAAt(x, y), src, opacity))
		}
	}
}
