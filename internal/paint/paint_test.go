package paint

import (
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	got := Hex("#4DC9F6")
	want := color.NRGBA{R: 0x4d, G: 0xc9, B: 0xf6, A: 0xff}
	if got != want {
		t.Errorf("Hex = %v, want %v", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("Hex should panic on malformed input")
		}
	}()
	Hex("sky")
}

func TestFade(t *testing.T) {
	c := Hex("#FFFFFF")
	if got := Fade(c, 0.4).A; got != 102 {
		t.Errorf("Fade(0.4).A = %d, want 102", got)
	}
	if got := Fade(c, 2).A; got != 0xff {
		t.Errorf("Fade clamps high, got %d", got)
	}
	if got := Fade(c, -1).A; got != 0 {
		t.Errorf("Fade clamps low, got %d", got)
	}
}

func TestGradientAt(t *testing.T) {
	black := color.NRGBA{A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	stops := Even(black, white)

	if got := At(stops, -1); got != black {
		t.Errorf("below first stop = %v", got)
	}
	if got := At(stops, 2); got != white {
		t.Errorf("above last stop = %v", got)
	}
	mid := At(stops, 0.5)
	if mid.R < 0x7e || mid.R > 0x81 || mid.A != 0xff {
		t.Errorf("midpoint = %v", mid)
	}
}

func TestGradientPlateau(t *testing.T) {
	edge, face := Hex("#5BBF2A"), Hex("#73D941")
	stops := []Stop{{0, edge}, {0.3, face}, {0.7, face}, {1, edge}}
	for _, tt := range []float64{0.3, 0.45, 0.5, 0.7} {
		if got := At(stops, tt); got != face {
			t.Errorf("At(%v) = %v, want plateau %v", tt, got, face)
		}
	}
}

func TestEllipse(t *testing.T) {
	pts := Ellipse(10, 20, 16, 14, 0, 32)
	if len(pts) != 32 {
		t.Fatalf("got %d points", len(pts))
	}
	for _, p := range pts {
		dx, dy := (p.X-10)/16, (p.Y-20)/14
		if math.Abs(dx*dx+dy*dy-1) > 1e-9 {
			t.Fatalf("point %v is off the ellipse", p)
		}
	}

	rotated := Ellipse(0, 0, 10, 5, math.Pi/2, 4)
	if math.Abs(rotated[0].X) > 1e-9 || math.Abs(rotated[0].Y-10) > 1e-9 {
		t.Errorf("quarter turn moved the major axis to %v", rotated[0])
	}

	if got := len(Ellipse(0, 0, 1, 1, 0, 1)); got != 3 {
		t.Errorf("minimum point count = %d, want 3", got)
	}
}

func TestRoundedRectStaysInside(t *testing.T) {
	pts := RoundedRect(70, 160, 260, 220, 14, 6)
	if len(pts) != 28 {
		t.Fatalf("got %d points", len(pts))
	}
	for _, p := range pts {
		if p.X < 70-1e-9 || p.X > 330+1e-9 || p.Y < 160-1e-9 || p.Y > 380+1e-9 {
			t.Fatalf("point %v outside the rect", p)
		}
	}
	c := Centroid(pts)
	if math.Abs(c.X-200) > 1e-6 || math.Abs(c.Y-270) > 1e-6 {
		t.Errorf("centroid = %v, want (200, 270)", c)
	}
}

func TestCentroidEmpty(t *testing.T) {
	if got := Centroid(nil); got != (Point{}) {
		t.Errorf("Centroid(nil) = %v", got)
	}
}
