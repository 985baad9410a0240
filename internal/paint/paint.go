// Package paint holds the canvas palette and the color and outline math
// shared by the renderers. It does not depend on any graphics backend.
package paint

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Point is a 2D position in canvas pixels.
type Point struct {
	X, Y float64
}

// Stop is one color stop of a gradient. At runs from 0 to 1.
type Stop struct {
	At    float64
	Color color.NRGBA
}

// Hex parses a "#RRGGBB" color. It panics on malformed input and is meant
// for package-level palettes.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("paint: bad color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Fade returns c with its alpha set to a in [0, 1].
func Fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(core.ClampF(a, 0, 1) * 0xff))
	return c
}

// Even spreads colors evenly over [0, 1].
func Even(colors ...color.NRGBA) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		if len(colors) > 1 {
			stops[i].At = float64(i) / float64(len(colors)-1)
		}
		stops[i].Color = c
	}
	return stops
}

// At samples a gradient. Stops must be sorted by At; t outside the stops
// takes the nearest end color.
func At(stops []Stop, t float64) color.NRGBA {
	switch {
	case len(stops) == 0:
		return color.NRGBA{}
	case t <= stops[0].At:
		return stops[0].Color
	case t >= stops[len(stops)-1].At:
		return stops[len(stops)-1].Color
	}
	i := 1
	for stops[i].At < t {
		i++
	}
	lo, hi := stops[i-1], stops[i]
	span := hi.At - lo.At
	if span <= 0 {
		return hi.Color
	}
	return blend(lo.Color, hi.Color, (t-lo.At)/span)
}

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	out := toColorful(a).BlendRgb(toColorful(b), t)
	r, g, bl := out.RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 0xff, G: float64(c.G) / 0xff, B: float64(c.B) / 0xff}
}

// Ellipse returns n points around an ellipse centered on (cx, cy), rotated
// by rot radians.
func Ellipse(cx, cy, rx, ry, rot float64, n int) []Point {
	if n < 3 {
		n = 3
	}
	sin, cos := math.Sincos(rot)
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := rx*math.Cos(a), ry*math.Sin(a)
		pts[i] = Point{X: cx + x*cos - y*sin, Y: cy + x*sin + y*cos}
	}
	return pts
}

// RoundedRect returns the outline of a rectangle with corners of radius r,
// walking clockwise from the top-left arc. segs is the point count per
// corner.
func RoundedRect(x, y, w, h, r float64, segs int) []Point {
	r = core.ClampF(r, 0, math.Min(w, h)/2)
	if segs < 1 {
		segs = 1
	}
	corners := [4]struct{ cx, cy, from float64 }{
		{x + r, y + r, math.Pi},
		{x + w - r, y + r, 1.5 * math.Pi},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 0.5 * math.Pi},
	}
	pts := make([]Point, 0, 4*(segs+1))
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.from + 0.5*math.Pi*float64(i)/float64(segs)
			pts = append(pts, Point{X: c.cx + r*math.Cos(a), Y: c.cy + r*math.Sin(a)})
		}
	}
	return pts
}

// Centroid is the average of the points.
func Centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{X: c.X / n, Y: c.Y / n}
}
