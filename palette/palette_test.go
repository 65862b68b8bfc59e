package palette

import (
	"image/color"
	"testing"
)

func TestSandAt(t *testing.T) {
	tests := []struct {
		y, h int
		want color.RGBA
	}{
		{0, 600, TopSand},
		{300, 600, color.RGBA{R: 237, G: 202, B: 170, A: 255}},
		{599, 600, color.RGBA{R: 254, G: 219, B: 189, A: 255}},
		{5, 0, TopSand},
	}
	for _, tt := range tests {
		if got := SandAt(tt.y, tt.h); got != tt.want {
			t.Errorf("SandAt(%d, %d) = %v, want %v", tt.y, tt.h, got, tt.want)
		}
	}
}

func TestGradient(t *testing.T) {
	img := Gradient(4, 600)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 600 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(3, 0); got != TopSand {
		t.Errorf("top row = %v, want %v", got, TopSand)
	}
	if img.RGBAAt(0, 300) != img.RGBAAt(3, 300) {
		t.Error("rows are not uniform")
	}
}

func TestDunes(t *testing.T) {
	img := Dunes(2000, 1500, 8, 42, DefaultDunes)
	if img.Bounds().Dx() != 250 || img.Bounds().Dy() != 187 {
		t.Fatalf("bounds = %v, want 250x187", img.Bounds())
	}

	var minA, maxA uint8 = 255, 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			a := img.NRGBAAt(x, y).A
			minA, maxA = min(minA, a), max(maxA, a)
		}
	}
	if maxA > DefaultDunes.MaxAlpha {
		t.Errorf("alpha %d above cap %d", maxA, DefaultDunes.MaxAlpha)
	}
	if maxA == minA {
		t.Error("dune texture is flat")
	}

	again := Dunes(2000, 1500, 8, 42, DefaultDunes)
	if again.NRGBAAt(100, 100) != img.NRGBAAt(100, 100) {
		t.Error("same seed produced different dunes")
	}
}
