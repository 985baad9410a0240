package core

import (
	"image/color"
	"testing"
)

func TestColorHex(t *testing.T) {
	if got := RGB(0x4d, 0xc9, 0xf6).Hex(); got != "#4DC9F6" {
		t.Errorf("Hex = %q", got)
	}
	if got := (Color{}).Hex(); got != "" {
		t.Errorf("unset Hex = %q, want empty", got)
	}
	// An unset color keeps its unset meaning even with channel values.
	if got := (Color{R: 0xff}).Hex(); got != "" {
		t.Errorf("unset Hex = %q, want empty", got)
	}
}

func TestFromNRGBA(t *testing.T) {
	c := FromNRGBA(color.NRGBA{R: 1, G: 2, B: 3, A: 0x40})
	if c != RGB(1, 2, 3) {
		t.Errorf("FromNRGBA = %+v", c)
	}
}
