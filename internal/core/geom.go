// Package core provides the small value types shared by the game
// simulation and its frontends: boxes in world and cell space, the cell
// screen buffer, colors and platform actions. It has no external
// dependencies so game logic stays pure and testable.
package core

// Rect is an integer box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w by h rect centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// RectF is an axis-aligned box in world units, stored by its edges.
// Edges are open: boxes that only touch do not overlap.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// CenteredRectF builds a box around a center point.
func CenteredRectF(cx, cy, halfW, halfH float64) RectF {
	return RectF{
		Left:   cx - halfW,
		Top:    cy - halfH,
		Right:  cx + halfW,
		Bottom: cy + halfH,
	}
}

// Inset shrinks the box by d on every side. A negative d grows it.
func (r RectF) Inset(d float64) RectF {
	return RectF{
		Left:   r.Left + d,
		Top:    r.Top + d,
		Right:  r.Right - d,
		Bottom: r.Bottom - d,
	}
}

// OverlapsX reports whether the horizontal spans of r and [left, right] overlap.
func (r RectF) OverlapsX(left, right float64) bool {
	return r.Right > left && r.Left < right
}

// WithinY reports whether the vertical span of r lies inside [top, bottom].
func (r RectF) WithinY(top, bottom float64) bool {
	return r.Top >= top && r.Bottom <= bottom
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
