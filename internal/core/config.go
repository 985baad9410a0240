package core

import "time"

// RuntimeConfig describes the terminal a session renders into and the pace
// of its frames.
type RuntimeConfig struct {
	ScreenW  int // Columns, including the footer-free play area
	ScreenH  int // Rows, including the footer line
	TickRate int // Frames per second
}

// DefaultConfig is an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// Normalized fills zero or negative fields from DefaultConfig.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// FrameInterval is the wall-clock time between frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}
