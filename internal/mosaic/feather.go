package mosaic

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/mosaic-tools-mcp/internal/detection"
)

// Feather softens the seam between original and edited along contours.
//
// A stroke of thickness t along the contours covers the pixels whose distance
// d to the nearest contour pixel satisfies 2d <= t. The ring of thickness t
// is that stroke minus the stroke of thickness t-1 (for t = 1, the contour
// pixels themselves). Each pass blends the ring of one thickness toward
// original:
//
//	pass(t, o): ring(t) = ring(t)*(1-o) + original*o
//
// The first pass runs at thickness width and opacity 0; pass f (1 <= f <
// width) runs at thickness width-f with the opacity raised by 1/width each
// time. Pixels close to the contour therefore end up mostly original and
// pixels width/2 away stay edited.
//
// original and edited must have the same bounds. A width of 0 or 1 returns a
// copy of edited.
func Feather(original, edited image.Image, contours []detection.Contour, width int) *image.NRGBA {
	out := imaging.Clone(edited)
	if width <= 1 || len(contours) == 0 {
		return out
	}
	orig := imaging.Clone(original)
	seam := newSeamDistance(out.Bounds(), contours, width)

	opacity := 0.0
	seam.blendRing(out, orig, width, opacity)
	for f := 1; f < width; f++ {
		opacity += 1 / float64(width)
		seam.blendRing(out, orig, width-f, opacity)
	}
	return out
}

// seamDistance holds, for every pixel within reach of a contour, the squared
// distance to the nearest contour pixel.
type seamDistance struct {
	frame image.Rectangle
	area  image.Rectangle // pixels within reach, clipped to frame
	sq    []int           // indexed like frame; -1 means out of reach
}

func newSeamDistance(frame image.Rectangle, contours []detection.Contour, width int) *seamDistance {
	reach := width / 2
	limit := width * width

	s := &seamDistance{frame: frame, sq: make([]int, frame.Dx()*frame.Dy())}
	for i := range s.sq {
		s.sq[i] = -1
	}

	for _, c := range contours {
		s.area = s.area.Union(c.Bounds().Inset(-reach))
		for _, p := range c {
			for dy := -reach; dy <= reach; dy++ {
				for dx := -reach; dx <= reach; dx++ {
					d2 := dx*dx + dy*dy
					if 4*d2 > limit {
						continue
					}
					q := image.Pt(p.X+dx, p.Y+dy)
					if !q.In(frame) {
						continue
					}
					i := s.index(q)
					if s.sq[i] < 0 || d2 < s.sq[i] {
						s.sq[i] = d2
					}
				}
			}
		}
	}
	s.area = s.area.Intersect(frame)
	return s
}

func (s *seamDistance) index(p image.Point) int {
	return (p.Y-s.frame.Min.Y)*s.frame.Dx() + (p.X - s.frame.Min.X)
}

// inRing reports whether a pixel at squared distance d2 lies in the ring of
// thickness t.
func inRing(d2, t int) bool {
	if d2 < 0 || 4*d2 > t*t {
		return false
	}
	return t <= 1 || 4*d2 > (t-1)*(t-1)
}

// blendRing blends original into union over the ring of thickness t.
func (s *seamDistance) blendRing(union, original *image.NRGBA, t int, opacity float64) {
	for y := s.area.Min.Y; y < s.area.Max.Y; y++ {
		for x := s.area.Min.X; x < s.area.Max.X; x++ {
			p := image.Pt(x, y)
			if inRing(s.sq[s.index(p)], t) {
				blendAt(union, original, p, opacity)
			}
		}
	}
}
