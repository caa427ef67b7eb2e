package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestGuideOverlay(t *testing.T) {
	black := color.NRGBA{A: 255}
	img := createInMemoryImage(50, 40, black)

	g := Guide{
		Region: image.Rect(10, 10, 30, 25),
		Center: image.Pt(20, 17),
		Points: []image.Point{{40, 35}},
	}

	result, err := GuideOverlay(img, g, "#00FF00")
	if err != nil {
		t.Fatalf("GuideOverlay failed: %v", err)
	}

	green := color.NRGBA{G: 255, A: 255}
	tests := []struct {
		name string
		p    image.Point
		want color.NRGBA
	}{
		{"top edge", image.Pt(15, 10), green},
		{"bottom edge", image.Pt(15, 24), green},
		{"left edge", image.Pt(10, 20), green},
		{"right edge", image.Pt(29, 20), green},
		{"center", image.Pt(20, 17), green},
		{"cross arm", image.Pt(23, 17), green},
		{"point", image.Pt(40, 35), green},
		{"inside region", image.Pt(14, 14), black},
		{"outside region", image.Pt(5, 5), black},
		{"past right edge", image.Pt(30, 20), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := result.NRGBAAt(tt.p.X, tt.p.Y); got != tt.want {
				t.Errorf("pixel %v: got %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if img.NRGBAAt(15, 10) != black {
		t.Error("GuideOverlay modified the source image")
	}
}

func TestGuideOverlay_Colors(t *testing.T) {
	img := createInMemoryImage(20, 20, color.NRGBA{A: 255})
	g := Guide{Region: image.Rect(0, 0, 20, 20)}

	tests := []struct {
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"", color.NRGBA{R: 255, A: 255}, false},
		{"#0000FF", color.NRGBA{B: 255, A: 255}, false},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"invalid", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			result, err := GuideOverlay(img, g, tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GuideOverlay(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := result.NRGBAAt(0, 0); got != tt.want {
				t.Errorf("outline color: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGuideOverlay_PointsOutsideIgnored(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{A: 255})
	g := Guide{
		Region: image.Rect(-5, -5, 50, 50),
		Center: image.Pt(-1, -1),
		Points: []image.Point{{-3, 4}, {100, 100}},
		Label:  true,
	}

	if _, err := GuideOverlay(img, g, ""); err != nil {
		t.Fatalf("GuideOverlay failed: %v", err)
	}
}

func TestDrawLabel(t *testing.T) {
	img := createInMemoryImage(40, 20, color.NRGBA{A: 255})
	fg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	bg := color.NRGBA{R: 1, A: 180}

	drawLabel(img, 2, 2, "1", fg, bg)

	// top row of '1' is "010"
	if got := img.NRGBAAt(3, 2); got != fg {
		t.Errorf("glyph pixel: got %v, want %v", got, fg)
	}
	if got := img.NRGBAAt(2, 2); got != bg {
		t.Errorf("background pixel: got %v, want %v", got, bg)
	}

	// Should not panic near the edges or on unknown characters
	drawLabel(img, 38, 18, "12,34", fg, bg)
	drawLabel(img, 0, 0, "abc", fg, bg)
	drawLabel(img, 0, 0, "", fg, bg)
}
