package core

import "testing"

func TestRectCentered(t *testing.T) {
	screen := NewRect(0, 0, 80, 23)
	box := screen.Centered(22, 8)
	if box != NewRect(29, 7, 22, 8) {
		t.Errorf("Centered = %+v", box)
	}
	if box.Right() != 51 || box.Bottom() != 15 {
		t.Errorf("Right/Bottom = %d/%d", box.Right(), box.Bottom())
	}

	tiny := NewRect(0, 0, 10, 4).Centered(22, 8)
	if tiny.X != -6 || tiny.Y != -2 {
		t.Errorf("oversized box should hang off both sides, got %+v", tiny)
	}
}

func TestRectFInset(t *testing.T) {
	r := CenteredRectF(120, 300, 14, 14)
	if r.Left != 106 || r.Right != 134 || r.Top != 286 || r.Bottom != 314 {
		t.Fatalf("CenteredRectF = %+v", r)
	}

	in := r.Inset(4)
	if in.Left != 110 || in.Right != 130 || in.Top != 290 || in.Bottom != 310 {
		t.Errorf("Inset(4) = %+v", in)
	}

	out := r.Inset(-5)
	if out.Left != 101 || out.Right != 139 {
		t.Errorf("Inset(-5) = %+v", out)
	}
}

func TestRectFOverlapsX(t *testing.T) {
	r := RectF{Left: 10, Right: 20}

	tests := []struct {
		name        string
		left, right float64
		expected    bool
	}{
		{"inside", 12, 18, true},
		{"straddles left edge", 0, 11, true},
		{"touches left edge", 0, 10, false},
		{"touches right edge", 20, 30, false},
		{"far right", 40, 50, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.OverlapsX(tc.left, tc.right); got != tc.expected {
				t.Errorf("OverlapsX(%v, %v) = %v, expected %v", tc.left, tc.right, got, tc.expected)
			}
		})
	}
}

func TestRectFWithinY(t *testing.T) {
	r := RectF{Top: 100, Bottom: 120}

	if !r.WithinY(100, 120) {
		t.Error("box touching both limits should be within")
	}
	if r.WithinY(101, 200) {
		t.Error("box above the top limit should not be within")
	}
	if r.WithinY(0, 119) {
		t.Error("box below the bottom limit should not be within")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.3, -0.5, 1.2, 0.3},
		{-2.0, -0.5, 1.2, -0.5},
		{3.0, -0.5, 1.2, 1.2},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
