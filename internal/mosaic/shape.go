package mosaic

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic Bézier that approximates a
// quarter ellipse.
const kappa = 0.5522847498

// opaqueThreshold is the minimum rasterized coverage (out of 255) for a
// pixel to count as inside the silhouette.
const opaqueThreshold = 0x80

// quadrant is one 90° sector of the ellipse, in screen coordinates (y grows
// downward, angles grow clockwise from +x).
type quadrant struct {
	start, end image.Point // unit axis directions at the sector's first and last angle
}

var (
	lowerRight = quadrant{start: image.Pt(1, 0), end: image.Pt(0, 1)}   // 0-90°
	lowerLeft  = quadrant{start: image.Pt(0, 1), end: image.Pt(-1, 0)}  // 90-180°
	upperLeft  = quadrant{start: image.Pt(-1, 0), end: image.Pt(0, -1)} // 180-270°
	upperRight = quadrant{start: image.Pt(0, -1), end: image.Pt(1, 0)}  // 270-360°
)

// Shape cuts processed into a rounded silhouette and puts it back over
// source. Both images must have the same size; center and radii are in
// patch coordinates.
//
// The silhouette is the ellipse with the given center and radii, widened
// per quadrant by the matching Corner percentage: at 100 the quadrant keeps
// the plain elliptical arc, lower values push the arc outward toward the
// patch corner, and 0 fills the whole quadrant rectangle.
//
// The returned patch holds processed inside the silhouette and source
// outside it. The returned mask is 255 inside the silhouette and 0
// elsewhere, in patch coordinates.
func Shape(source, processed image.Image, center, radii image.Point, corner Corner) (*image.NRGBA, *image.Alpha) {
	size := processed.Bounds().Size()
	mask := silhouette(size, center, radii, corner)

	shaped := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(shaped, shaped.Bounds(), source, source.Bounds().Min, draw.Src)

	// processed inside the mask, source everywhere else
	patch := imaging.Clone(processed)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if mask.Pix[y*mask.Stride+x] == 0 {
				continue
			}
			i := shaped.PixOffset(x, y)
			copy(shaped.Pix[i:i+4], patch.Pix[i:i+4])
		}
	}
	return shaped, mask
}

// silhouette rasterizes the shaping mask for a patch of the given size.
func silhouette(size image.Point, center, radii image.Point, corner Corner) *image.Alpha {
	cx, cy := float32(center.X), float32(center.Y)
	rx, ry := float32(radii.X), float32(radii.Y)

	ellipse := vector.NewRasterizer(size.X, size.Y)
	ellipse.MoveTo(cx+rx, cy)
	for _, q := range []quadrant{lowerRight, lowerLeft, upperLeft, upperRight} {
		arcTo(ellipse, cx, cy, rx, ry, q)
	}
	ellipse.ClosePath()

	corners := vector.NewRasterizer(size.X, size.Y)
	for _, qc := range []struct {
		q   quadrant
		pct int
	}{
		{lowerRight, corner.LowerRight},
		{lowerLeft, corner.LowerLeft},
		{upperLeft, corner.UpperLeft},
		{upperRight, corner.UpperRight},
	} {
		if clampInt(qc.pct, 0, 100) == 0 {
			quadrantRect(corners, size, cx, cy, qc.q)
			continue
		}
		s := float32(cornerScale(qc.pct))
		corners.MoveTo(cx, cy)
		corners.LineTo(cx+rx*s*float32(qc.q.start.X), cy+ry*s*float32(qc.q.start.Y))
		arcTo(corners, cx, cy, rx*s, ry*s, qc.q)
		corners.ClosePath()
	}

	mask := rasterizeMask(ellipse, size)
	extra := rasterizeMask(corners, size)
	for i, v := range extra.Pix {
		if v != 0 {
			mask.Pix[i] = 0xff
		}
	}
	return mask
}

// cornerScale maps a corner percentage to the factor applied to the ellipse
// radii in that quadrant: 1 at 100%, √2 (the patch corner) at 0%.
func cornerScale(pct int) float64 {
	q := float64(clampInt(pct, 0, 100)) / 100
	return 1 + (1-q)*(math.Sqrt2-1)
}

// arcTo adds the quarter ellipse of quadrant q to z. The pen must be at the
// quadrant's start point.
func arcTo(z *vector.Rasterizer, cx, cy, rx, ry float32, q quadrant) {
	sx, sy := float32(q.start.X), float32(q.start.Y)
	ex, ey := float32(q.end.X), float32(q.end.Y)
	p0x, p0y := cx+rx*sx, cy+ry*sy
	p3x, p3y := cx+rx*ex, cy+ry*ey
	z.CubeTo(
		p0x+kappa*rx*ex, p0y+kappa*ry*ey,
		p3x+kappa*rx*sx, p3y+kappa*ry*sy,
		p3x, p3y,
	)
}

// quadrantRect adds the rectangle between the center and the patch corner
// of quadrant q, wound the same way as the arcs.
func quadrantRect(z *vector.Rasterizer, size image.Point, cx, cy float32, q quadrant) {
	edgeX := func(dir int) float32 {
		if dir > 0 {
			return float32(size.X)
		}
		return 0
	}
	edgeY := func(dir int) float32 {
		if dir > 0 {
			return float32(size.Y)
		}
		return 0
	}

	z.MoveTo(cx, cy)
	if q.start.X != 0 {
		// start on the horizontal axis, end on the vertical one
		x, y := edgeX(q.start.X), edgeY(q.end.Y)
		z.LineTo(x, cy)
		z.LineTo(x, y)
		z.LineTo(cx, y)
	} else {
		x, y := edgeX(q.end.X), edgeY(q.start.Y)
		z.LineTo(cx, y)
		z.LineTo(x, y)
		z.LineTo(x, cy)
	}
	z.ClosePath()
}

// rasterizeMask draws the path accumulated in z as a binary alpha mask.
func rasterizeMask(z *vector.Rasterizer, size image.Point) *image.Alpha {
	cov := image.NewAlpha(image.Rectangle{Max: size})
	z.DrawOp = draw.Src
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})
	for i, v := range cov.Pix {
		if v >= opaqueThreshold {
			cov.Pix[i] = 0xff
		} else {
			cov.Pix[i] = 0
		}
	}
	return cov
}
