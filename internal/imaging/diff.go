package imaging

import (
	"fmt"
	"image"
	"math"
)

// Bounds is a rectangle in JSON-friendly form. (X1, Y1) is inclusive,
// (X2, Y2) exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// BoundsOf converts r to Bounds.
func BoundsOf(r image.Rectangle) Bounds {
	return Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// DiffResult summarizes how two equally sized images differ.
type DiffResult struct {
	PixelsChanged    int     `json:"pixels_changed"`
	TotalPixels      int     `json:"total_pixels"`
	ChangedPercent   float64 `json:"changed_percent"`
	Bounds           *Bounds `json:"bounds,omitempty"` // nil when nothing changed
	MaxChannelDelta  int     `json:"max_channel_delta"`
	AverageColorDiff float64 `json:"average_color_diff"` // over changed pixels
}

// Diff compares a and b pixel by pixel. Both images must have the same size;
// they are compared relative to their own origins. A pixel counts as changed
// when any of its R, G or B components differ.
func Diff(a, b image.Image) (*DiffResult, error) {
	ba, bb := a.Bounds(), b.Bounds()
	if ba.Size() != bb.Size() {
		return nil, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", ba.Dx(), ba.Dy(), bb.Dx(), bb.Dy())
	}

	result := &DiffResult{TotalPixels: ba.Dx() * ba.Dy()}
	changed := image.Rectangle{}
	var totalColorDiff float64

	for y := 0; y < ba.Dy(); y++ {
		for x := 0; x < ba.Dx(); x++ {
			r1, g1, b1, _ := a.At(ba.Min.X+x, ba.Min.Y+y).RGBA()
			r2, g2, b2, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()

			dr := absDiff(uint8(r1>>8), uint8(r2>>8))
			dg := absDiff(uint8(g1>>8), uint8(g2>>8))
			db := absDiff(uint8(b1>>8), uint8(b2>>8))
			if dr == 0 && dg == 0 && db == 0 {
				continue
			}

			result.PixelsChanged++
			result.MaxChannelDelta = max(result.MaxChannelDelta, dr, dg, db)
			totalColorDiff += float64(dr+dg+db) / 3.0
			changed = changed.Union(image.Rect(x, y, x+1, y+1))
		}
	}

	if result.PixelsChanged > 0 {
		bounds := BoundsOf(changed)
		result.Bounds = &bounds
		result.AverageColorDiff = math.Round(totalColorDiff/float64(result.PixelsChanged)*100) / 100
	}
	if result.TotalPixels > 0 {
		result.ChangedPercent = math.Round(float64(result.PixelsChanged)/float64(result.TotalPixels)*1000) / 10
	}

	return result, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
