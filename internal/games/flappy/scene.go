package flappy

import (
	"math"
	"time"
)

// Cosmetic scene layout shared by the renderers. None of it affects the
// simulation.

// Cloud is a background ellipse in world units.
type Cloud struct {
	X, Y, W, H float64
}

var baseClouds = [...]Cloud{
	{X: 50, Y: 80, W: 80, H: 30},
	{X: 200, Y: 50, W: 100, H: 35},
	{X: 320, Y: 100, W: 70, H: 25},
	{X: 140, Y: 130, W: 60, H: 20},
}

const (
	cloudParallax  = 0.2
	cloudWrapExtra = 120
	cloudLead      = 40

	tuftSpacing  = 20
	tuftParallax = 1.5

	wingFrequency = 0.015
	wingAmplitude = 3

	promptFrequency = 0.004
	promptDepth     = 0.15
	promptBase      = 0.85
)

// Clouds returns the clouds positioned for the given scroll offset. They
// drift at a fifth of the scroll speed and wrap around the canvas.
func Clouds(p Params, scroll float64) []Cloud {
	span := p.Width + cloudWrapExtra
	out := make([]Cloud, len(baseClouds))
	for i, c := range baseClouds {
		x := math.Mod(c.X-scroll*cloudParallax, span)
		if x < 0 {
			x += span
		}
		c.X = x - cloudLead
		out[i] = c
	}
	return out
}

// GrassTufts returns the left x of every grass tuft along the ground. Each
// tuft is tuftSpacing/2 wide and the row wraps around the canvas.
func GrassTufts(p Params, scroll float64) []float64 {
	span := p.Width + tuftSpacing
	offset := math.Mod(scroll*tuftParallax, tuftSpacing)
	var xs []float64
	for i := 0.0; i < span; i += tuftSpacing {
		x := math.Mod(i-offset+tuftSpacing, span)
		if x < 0 {
			x += span
		}
		xs = append(xs, x-tuftSpacing/2)
	}
	return xs
}

// WingOffset is the vertical wing flutter at the given instant.
func WingOffset(now time.Time) float64 {
	return math.Sin(millis(now)*wingFrequency) * wingAmplitude
}

// PromptAlpha is the pulsing opacity of the "tap to start" prompt, in
// [0.7, 1].
func PromptAlpha(now time.Time) float64 {
	return math.Sin(millis(now)*promptFrequency)*promptDepth + promptBase
}
