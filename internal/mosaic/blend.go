package mosaic

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// blendColor returns dst*(1-opacity) + src*opacity per channel, rounded to
// the nearest 8-bit value. The result is always opaque.
func blendColor(dst, src color.NRGBA, opacity float64) color.NRGBA {
	a := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	b := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, bl := a.BlendRgb(b, opacity).RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

// blendAt blends src into dst at point pt. Both images share frame
// coordinates.
func blendAt(dst, src *image.NRGBA, pt image.Point, opacity float64) {
	dst.SetNRGBA(pt.X, pt.Y, blendColor(dst.NRGBAAt(pt.X, pt.Y), src.NRGBAAt(pt.X, pt.Y), opacity))
}
