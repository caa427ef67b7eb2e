package mosaic

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// Reduce turns clip into a mosaic of cells. Cell sizes are the given
// fractions of the clip height and width, rounded down and at least one
// pixel.
//
// Without sharp, the clip is split into round(w/cellW) by round(h/cellH)
// blocks whose edges fall on floor(i*w/cols), and every block is filled with
// its alpha-weighted average colour. A second pass sees the same block edges,
// so reducing a reduced clip changes nothing. With sharp, every cell is filled with the colour of
// its center pixel; cells that would run past the right or bottom edge are
// shrunk, and their center is taken as if the full-size cell ended at the
// edge.
func Reduce(clip image.Image, cellHeight, cellWidth float64, sharp bool) *image.NRGBA {
	src := imaging.Clone(clip)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return src
	}

	cellH, cellW := cellSize(h, cellHeight), cellSize(w, cellWidth)
	if sharp {
		return sharpCells(src, cellH, cellW)
	}

	smallW := max(int(math.Round(float64(w)/float64(cellW))), 1)
	smallH := max(int(math.Round(float64(h)/float64(cellH))), 1)
	return blockAverage(src, smallH, smallW)
}

// blockAverage fills each of rows x cols blocks of src with its mean colour.
func blockAverage(src *image.NRGBA, rows, cols int) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := imaging.New(w, h, color.NRGBA{})

	for by := 0; by < rows; by++ {
		y0, y1 := by*h/rows, (by+1)*h/rows
		for bx := 0; bx < cols; bx++ {
			x0, x1 := bx*w/cols, (bx+1)*w/cols
			tile := image.Rect(x0, y0, x1, y1)
			if tile.Empty() {
				continue
			}
			fill := imaging.New(tile.Dx(), tile.Dy(), meanColor(src, tile))
			draw.Draw(dst, tile, fill, image.Point{}, draw.Src)
		}
	}
	return dst
}

// meanColor averages r inside src, weighting colour channels by alpha.
func meanColor(src *image.NRGBA, r image.Rectangle) color.NRGBA {
	var sr, sg, sb, sa uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := src.PixOffset(r.Min.X+src.Rect.Min.X, y+src.Rect.Min.Y)
		for x := r.Min.X; x < r.Max.X; x++ {
			px := src.Pix[i : i+4 : i+4]
			a := uint64(px[3])
			sr += uint64(px[0]) * a
			sg += uint64(px[1]) * a
			sb += uint64(px[2]) * a
			sa += a
			i += 4
		}
	}
	n := uint64(r.Dx() * r.Dy())
	if sa == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8((sr + sa/2) / sa),
		G: uint8((sg + sa/2) / sa),
		B: uint8((sb + sa/2) / sa),
		A: uint8((sa + n/2) / n),
	}
}

func cellSize(length int, fraction float64) int {
	return clampInt(int(float64(length)*clampFraction(fraction)), 1, length)
}

func sharpCells(src *image.NRGBA, cellH, cellW int) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := imaging.Clone(src)

	for y := 0; y < h; y += cellH {
		yOver := 0
		if h-cellH < y {
			yOver = cellH - (h - y)
		}
		for x := 0; x < w; x += cellW {
			xOver := 0
			if w-cellW < x {
				xOver = cellW - (w - x)
			}

			center := src.NRGBAAt(x-xOver+cellW/2, y-yOver+cellH/2)
			block := imaging.New(cellW-xOver, cellH-yOver, center)
			tile := image.Rect(x, y, x+cellW-xOver, y+cellH-yOver)
			draw.Draw(dst, tile, block, image.Point{}, draw.Src)
		}
	}
	return dst
}

// boxKernel is the normalized 5x5 averaging kernel used by Smooth.
var boxKernel = [25]float64{
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
}

// Smooth applies a 5x5 box blur to clip. Samples past the edge repeat the
// nearest edge pixel, so a flat-coloured clip comes back unchanged.
func Smooth(clip image.Image) *image.NRGBA {
	return imaging.Convolve5x5(clip, boxKernel, &imaging.ConvolveOptions{Normalize: true})
}
