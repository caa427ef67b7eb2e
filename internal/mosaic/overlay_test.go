package mosaic

import (
	"image"
	"image/color"
	"testing"
)

func TestCoverResize(t *testing.T) {
	tests := []struct {
		name             string
		maskW, maskH     int
		targetH, targetW int
		wantW, wantH     int
	}{
		{"wide 2:1 mask", 40, 20, 100, 100, 200, 100},
		{"tall 1:2 mask", 20, 40, 100, 100, 100, 200},
		{"same aspect", 50, 50, 100, 100, 100, 100},
		{"non-square target", 10, 10, 30, 50, 50, 50},
		{"downscale", 400, 200, 100, 100, 200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := createInMemoryImage(tt.maskW, tt.maskH, red)

			got := CoverResize(mask, tt.targetH, tt.targetW)
			size := got.Bounds().Size()
			if size.X != tt.wantW || size.Y != tt.wantH {
				t.Errorf("size: got %dx%d, want %dx%d", size.X, size.Y, tt.wantW, tt.wantH)
			}
			if size.X < tt.targetW || size.Y < tt.targetH {
				t.Errorf("result %v does not cover %dx%d", size, tt.targetW, tt.targetH)
			}
		})
	}
}

func TestCoverResize_KeepsColor(t *testing.T) {
	c := color.NRGBA{R: 12, G: 200, B: 99, A: 255}

	got := CoverResize(createInMemoryImage(8, 4, c), 20, 20)
	for _, p := range []image.Point{{0, 0}, {20, 10}, {39, 19}} {
		if px := got.NRGBAAt(p.X, p.Y); px != c {
			t.Errorf("pixel %v = %v, want %v", p, px, c)
		}
	}
}

func TestOverlayRect(t *testing.T) {
	frame := image.Rect(0, 0, 300, 300)
	diameter := image.Pt(100, 100)

	tests := []struct {
		name   string
		region image.Rectangle
		size   image.Point
		want   image.Rectangle
	}{
		{"larger than region", image.Rect(100, 100, 200, 200), image.Pt(200, 100), image.Rect(100, 100, 200, 200)},
		{"smaller than region", image.Rect(100, 100, 200, 200), image.Pt(60, 40), image.Rect(100, 100, 160, 140)},
		{"taller than region", image.Rect(100, 100, 200, 200), image.Pt(100, 300), image.Rect(100, 100, 200, 200)},
		{"region clipped left", image.Rect(0, 100, 70, 200), image.Pt(100, 100), image.Rect(0, 100, 100, 200)},
		{"region clipped top", image.Rect(100, 0, 200, 40), image.Pt(150, 100), image.Rect(100, 0, 200, 100)},
		{"region clipped right", image.Rect(230, 100, 300, 200), image.Pt(100, 100), image.Rect(230, 100, 300, 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlayRect(tt.region, tt.size, diameter, frame); got != tt.want {
				t.Errorf("overlayRect: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendOverlay_Opacity(t *testing.T) {
	dst := createInMemoryImage(10, 10, color.NRGBA{A: 255})
	overlay := createInMemoryImage(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	blendOverlay(dst, overlay, image.Rect(2, 2, 6, 6), 0.5)

	want := color.NRGBA{R: 100, G: 50, B: 25, A: 255}
	if got := dst.NRGBAAt(3, 3); got != want {
		t.Errorf("blended pixel: got %v, want %v", got, want)
	}
	if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{A: 255}) {
		t.Errorf("pixel outside rect changed: %v", got)
	}
}
