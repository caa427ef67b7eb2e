package detection

import (
	"image"
)

// Contour is the set of boundary pixels of one connected part of a mask, in
// the mask's coordinate space. The points are not sorted along the outline.
type Contour []image.Point

// Bounds returns the smallest rectangle containing every point of c.
func (c Contour) Bounds() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: c[0], Max: c[0].Add(image.Pt(1, 1))}
	for _, p := range c[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}

// FindContours traces the boundaries of the opaque (non-zero) area of mask.
//
// A boundary pixel is an opaque pixel with at least one 4-connected
// neighbour that is transparent or lies outside mask.Bounds(). Everything
// outside the mask bounds counts as transparent, so a mask whose bounds are
// a sub-rectangle of a larger frame yields the same contours as the full
// frame-sized mask with zeros around it.
//
// Boundary pixels are grouped into 8-connected contours. Contours are
// returned in row-major order of their first pixel; points within a contour
// come in flood-fill order and do not trace the outline. Holes produce
// contours of their own.
//
// Returns nil for an empty mask.
func FindContours(mask *image.Alpha) []Contour {
	bounds := mask.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	edges := boundaryPixels(mask, width, height)

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	var contours []Contour
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edges[y][x] && !visited[y][x] {
				var contour Contour
				floodFill(edges, visited, x, y, width, height, &contour)
				for i := range contour {
					contour[i] = contour[i].Add(bounds.Min)
				}
				contours = append(contours, contour)
			}
		}
	}

	return contours
}

// boundaryPixels marks every opaque pixel of mask that touches a transparent
// 4-neighbour or the mask edge. Indices are relative to mask.Bounds().Min.
func boundaryPixels(mask *image.Alpha, width, height int) [][]bool {
	bounds := mask.Bounds()
	opaque := func(x, y int) bool {
		if x < 0 || x >= width || y < 0 || y >= height {
			return false
		}
		return mask.AlphaAt(x+bounds.Min.X, y+bounds.Min.Y).A != 0
	}

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if !opaque(x, y) {
				continue
			}
			if !opaque(x-1, y) || !opaque(x+1, y) || !opaque(x, y-1) || !opaque(x, y+1) {
				edges[y][x] = true
			}
		}
	}

	return edges
}

// floodFill collects the 8-connected group of edge pixels containing
// (startX, startY) into contour, marking them visited.
func floodFill(edges, visited [][]bool, startX, startY, width, height int, contour *Contour) {
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !edges[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		*contour = append(*contour, p)

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}
