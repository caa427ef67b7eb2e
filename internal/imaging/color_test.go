package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		hex   string
		hsl   HSLColor
	}{
		{"red", color.RGBA{255, 0, 0, 255}, "#FF0000", HSLColor{0, 100, 50}},
		{"green", color.RGBA{0, 255, 0, 255}, "#00FF00", HSLColor{120, 100, 50}},
		{"blue", color.RGBA{0, 0, 255, 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)

			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.hex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.hex)
			}
			if result.HSL != tt.hsl {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.hsl)
			}
			if result.RGBA.A != 255 {
				t.Errorf("alpha: got %d, want 255", result.RGBA.A)
			}
			if result.X != 5 || result.Y != 5 {
				t.Errorf("coordinates: got (%d,%d), want (5,5)", result.X, result.Y)
			}
		})
	}
}

func TestSampleColor_Pattern(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := SampleColor(img, 50, 20)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	want := img.NRGBAAt(50, 20)
	if result.RGB != (RGBColor{R: want.R, G: want.G, B: want.B}) {
		t.Errorf("RGB: got %+v, want %v", result.RGB, want)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 20, 20))
	img.SetNRGBA(10, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	result, err := SampleColor(img, 10, 10)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#010203" {
		t.Errorf("Hex: got %s, want #010203", result.Hex)
	}

	if _, err := SampleColor(img, 0, 0); err == nil {
		t.Error("SampleColor should fail outside offset bounds")
	}
}

func TestSampleColor_Translucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGBA != (RGBAColor{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("RGBA should not be premultiplied: got %+v", result.RGBA)
	}
	if result.Hex != "#C86432" {
		t.Errorf("Hex: got %s, want #C86432", result.Hex)
	}
}
