package imaging

import (
	"image/color"
	"testing"
)

func TestDiff_Identical(t *testing.T) {
	a := createPatternImage(30, 20)
	b := createPatternImage(30, 20)

	result, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if result.PixelsChanged != 0 {
		t.Errorf("PixelsChanged: got %d, want 0", result.PixelsChanged)
	}
	if result.Bounds != nil {
		t.Errorf("Bounds: got %+v, want nil", result.Bounds)
	}
	if result.TotalPixels != 600 {
		t.Errorf("TotalPixels: got %d, want 600", result.TotalPixels)
	}
}

func TestDiff_ChangedBlock(t *testing.T) {
	a := createInMemoryImage(40, 40, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	b := createInMemoryImage(40, 40, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	for y := 10; y < 20; y++ {
		for x := 5; x < 25; x++ {
			b.SetNRGBA(x, y, color.NRGBA{R: 130, G: 100, B: 70, A: 255})
		}
	}

	result, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	if result.PixelsChanged != 200 {
		t.Errorf("PixelsChanged: got %d, want 200", result.PixelsChanged)
	}
	want := Bounds{X1: 5, Y1: 10, X2: 25, Y2: 20}
	if result.Bounds == nil || *result.Bounds != want {
		t.Errorf("Bounds: got %+v, want %+v", result.Bounds, want)
	}
	if result.MaxChannelDelta != 30 {
		t.Errorf("MaxChannelDelta: got %d, want 30", result.MaxChannelDelta)
	}
	if result.AverageColorDiff != 20 {
		t.Errorf("AverageColorDiff: got %v, want 20", result.AverageColorDiff)
	}
	if result.ChangedPercent != 12.5 {
		t.Errorf("ChangedPercent: got %v, want 12.5", result.ChangedPercent)
	}
}

func TestDiff_SizeMismatch(t *testing.T) {
	if _, err := Diff(createPatternImage(10, 10), createPatternImage(10, 11)); err == nil {
		t.Error("Diff should fail for images of different sizes")
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		a, b uint8
		want int
	}{
		{0, 0, 0},
		{255, 0, 255},
		{0, 255, 255},
		{100, 150, 50},
	}

	for _, tt := range tests {
		if got := absDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("absDiff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
