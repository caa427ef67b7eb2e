package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGuideColor is the outline color used when none is given.
const DefaultGuideColor = "#FF0000"

// Guide describes what GuideOverlay marks on an image.
type Guide struct {
	// Region is outlined with a one-pixel rectangle.
	Region image.Rectangle

	// Center is marked with a small cross when it lies inside the image.
	Center image.Point

	// Points are drawn individually, typically the traced seam contour.
	Points []image.Point

	// Label, when true, prints the region's corner coordinates above it.
	Label bool
}

// GuideOverlay returns a copy of img with g drawn on top in the given hex
// color ("#RRGGBB" or "#RGB"). An empty color selects DefaultGuideColor.
func GuideOverlay(img image.Image, g Guide, hex string) (*image.NRGBA, error) {
	if hex == "" {
		hex = DefaultGuideColor
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid guide color %q: %w", hex, err)
	}
	r, gr, b := c.RGB255()
	fg := color.NRGBA{R: r, G: gr, B: b, A: 255}

	result := imaging.Clone(img)
	// Clone rebases to (0,0); shift the guide with it.
	offset := img.Bounds().Min
	region := g.Region.Sub(offset)

	if !region.Empty() {
		for x := region.Min.X; x < region.Max.X; x++ {
			setIn(result, x, region.Min.Y, fg)
			setIn(result, x, region.Max.Y-1, fg)
		}
		for y := region.Min.Y; y < region.Max.Y; y++ {
			setIn(result, region.Min.X, y, fg)
			setIn(result, region.Max.X-1, y, fg)
		}
	}

	center := g.Center.Sub(offset)
	if center.In(result.Bounds()) {
		for d := -3; d <= 3; d++ {
			setIn(result, center.X+d, center.Y, fg)
			setIn(result, center.X, center.Y+d, fg)
		}
	}

	for _, p := range g.Points {
		p = p.Sub(offset)
		setIn(result, p.X, p.Y, fg)
	}

	if g.Label && !region.Empty() {
		label := fmt.Sprintf("%d,%d %d,%d", g.Region.Min.X, g.Region.Min.Y, g.Region.Max.X, g.Region.Max.Y)
		drawLabel(result, region.Min.X, region.Min.Y-8, label, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, color.NRGBA{A: 180})
	}

	return result, nil
}

func setIn(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

// drawLabel draws a simple text label at the given position
// using a 3x5 pixel font for digits, comma and space.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
		'-': {"000", "000", "111", "000", "000"},
	}

	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setIn(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setIn(img, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
