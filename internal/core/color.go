package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit cell color. The zero value is unset: an unset
// foreground falls back to the terminal default and an unset background
// leaves whatever is underneath.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns a set color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// FromNRGBA converts a palette color, dropping alpha.
func FromNRGBA(c color.NRGBA) Color {
	return RGB(c.R, c.G, c.B)
}

// Hex formats the color as "#RRGGBB", or "" when unset.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
