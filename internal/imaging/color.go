package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor is an 8-bit colour without alpha.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor is an 8-bit colour with straight (not premultiplied) alpha,
// 0 transparent to 255 opaque.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor holds hue in degrees (0-359) and saturation and lightness in
// percent.
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorResult is one pixel in the notations a client may ask for. Hex and
// HSL describe the colour channels only.
type ColorResult struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Hex  string    `json:"hex"` // "#RRGGBB", upper case
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor returns the colour of img at (x, y). The point must lie
// inside img.Bounds(), which need not start at the origin.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, img.Bounds())
	}

	px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	c, _ := colorful.MakeColor(color.NRGBA{R: px.R, G: px.G, B: px.B, A: 255})
	h, s, l := c.Hsl()

	return &ColorResult{
		X:    x,
		Y:    y,
		Hex:  strings.ToUpper(c.Hex()),
		RGB:  RGBColor{R: px.R, G: px.G, B: px.B},
		RGBA: RGBAColor{R: px.R, G: px.G, B: px.B, A: px.A},
		HSL:  HSLColor{H: int(math.Round(h)) % 360, S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
	}, nil
}
