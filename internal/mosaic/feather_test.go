package mosaic

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/mosaic-tools-mcp/internal/detection"
)

// squareContours traces the boundary of an opaque square in a size x size
// frame.
func squareContours(size int, square image.Rectangle) []detection.Contour {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := square.Min.Y; y < square.Max.Y; y++ {
		for x := square.Min.X; x < square.Max.X; x++ {
			mask.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return detection.FindContours(mask)
}

func TestFeather_NarrowWidthReturnsEdited(t *testing.T) {
	original := createInMemoryImage(30, 30, color.NRGBA{A: 255})
	edited := createPatternImage(30, 30)
	contours := squareContours(30, image.Rect(10, 10, 20, 20))

	for _, width := range []int{0, 1} {
		got := Feather(original, edited, contours, width)
		if !bytes.Equal(got.Pix, edited.Pix) {
			t.Errorf("width %d: expected edited image unchanged", width)
		}
		if got == edited {
			t.Errorf("width %d: expected a copy", width)
		}
	}
}

func TestFeather_NoContours(t *testing.T) {
	original := createInMemoryImage(20, 20, color.NRGBA{A: 255})
	edited := createPatternImage(20, 20)

	got := Feather(original, edited, nil, 8)
	if !bytes.Equal(got.Pix, edited.Pix) {
		t.Error("feathering without contours should not change the image")
	}
}

func TestFeather_Ramp(t *testing.T) {
	original := createInMemoryImage(60, 60, color.NRGBA{A: 255})
	edited := createInMemoryImage(60, 60, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	contours := squareContours(60, image.Rect(20, 20, 40, 40))

	got := Feather(original, edited, contours, 4)

	// Width 4 runs the base pass and three ramp passes at opacity 1/4, 2/4
	// and 3/4 over the rings of thickness 3, 2 and 1.
	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"on contour", 20, 30, 64},      // 3/4 original
		{"one px outside", 19, 30, 128}, // 2/4 original
		{"one px inside", 21, 30, 128},
		{"diagonal to corner", 19, 19, 191}, // 1/4 original
		{"two px outside", 18, 30, 255},
		{"far outside", 5, 5, 255},
		{"center", 30, 30, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := got.NRGBAAt(tt.x, tt.y)
			if c.R != tt.want || c.G != tt.want || c.B != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want gray %d", tt.x, tt.y, c, tt.want)
			}
		})
	}
}

func TestFeather_DoesNotModifyInputs(t *testing.T) {
	original := createInMemoryImage(30, 30, color.NRGBA{A: 255})
	edited := createPatternImage(30, 30)
	origBefore := append([]uint8(nil), original.Pix...)
	editBefore := append([]uint8(nil), edited.Pix...)

	Feather(original, edited, squareContours(30, image.Rect(5, 5, 25, 25)), 6)

	if !bytes.Equal(original.Pix, origBefore) || !bytes.Equal(edited.Pix, editBefore) {
		t.Error("Feather modified its inputs")
	}
}

func TestInRing(t *testing.T) {
	tests := []struct {
		d2, t int
		want  bool
	}{
		{0, 1, true},
		{1, 1, false},
		{1, 2, true},
		{0, 2, false},
		{2, 3, true},
		{4, 4, true},
		{5, 4, false},
		{-1, 4, false},
	}

	for _, tt := range tests {
		if got := inRing(tt.d2, tt.t); got != tt.want {
			t.Errorf("inRing(%d, %d) = %v, want %v", tt.d2, tt.t, got, tt.want)
		}
	}
}
