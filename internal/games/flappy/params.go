// Package flappy implements the Flappy Bird simulation: a bird driven by
// discrete flap impulses must pass through a stream of gated pipes.
//
// The package is frontend-agnostic. Step is a pure update from one Session
// to the next; Engine wraps it with best-score persistence, input routing
// and fail-stop error handling for the terminal and window frontends.
package flappy

import (
	"errors"
	"fmt"
	"time"
)

// GameID is the key scores are stored under.
const GameID = "flappy"

// ErrInvalidParams is returned when a parameter set cannot produce a
// playable field.
var ErrInvalidParams = errors.New("flappy: invalid parameters")

// Params holds every tunable of the simulation in world units (pixels of a
// Width x Height canvas) and frames. Velocities and accelerations are per
// frame, so the frame rate sets the game speed.
type Params struct {
	Width        float64
	Height       float64
	GroundHeight float64

	BirdSize      float64
	BirdXRatio    float64 // Bird x as a fraction of Width
	RotationScale float64 // Radians of tilt per unit of velocity
	RotationMin   float64 // Draw-time clamp, radians
	RotationMax   float64
	HitInset      float64 // Bird hitbox shrink on every side

	Gravity      float64
	FlapVelocity float64 // Negative is up

	PipeWidth     float64
	GapHeight     float64
	PipeSpeed     float64
	SpawnInterval time.Duration
	SpawnOffset   float64 // Spawn x past the right edge
	DespawnMargin float64 // Extra distance past the left edge before removal
	TopMargin     float64
	BottomMargin  float64
	HitMargin     float64 // Pipe span growth on each side for collisions

	BobAmplitude float64
	BobFrequency float64 // Radians per millisecond
	IdleScroll   float64 // Background scroll per idle frame
}

// DefaultParams returns the classic 400x600 canvas tuning.
func DefaultParams() Params {
	return Params{
		Width:        400,
		Height:       600,
		GroundHeight: 70,

		BirdSize:      28,
		BirdXRatio:    0.3,
		RotationScale: 0.06,
		RotationMin:   -0.5,
		RotationMax:   1.2,
		HitInset:      4,

		Gravity:      0.15,
		FlapVelocity: -4.2,

		PipeWidth:     58,
		GapHeight:     150,
		PipeSpeed:     2.5,
		SpawnInterval: 1800 * time.Millisecond,
		SpawnOffset:   10,
		DespawnMargin: 20,
		TopMargin:     60,
		BottomMargin:  60,
		HitMargin:     5,

		BobAmplitude: 12,
		BobFrequency: 0.003,
		IdleScroll:   0.5,
	}
}

// GroundY is the y coordinate of the ground line.
func (p Params) GroundY() float64 {
	return p.Height - p.GroundHeight
}

// MinGapTop is the smallest gap-top a spawned pipe may have.
func (p Params) MinGapTop() float64 {
	return p.TopMargin
}

// MaxGapTop is the largest gap-top a spawned pipe may have.
func (p Params) MaxGapTop() float64 {
	return p.GroundY() - p.GapHeight - p.BottomMargin
}

// BirdX is the fixed horizontal position of the bird center.
func (p Params) BirdX() float64 {
	return p.Width * p.BirdXRatio
}

// StartY is the vertical position of the bird at the start of a run.
func (p Params) StartY() float64 {
	return p.Height / 2
}

// SpawnX is where new pipes appear.
func (p Params) SpawnX() float64 {
	return p.Width + p.SpawnOffset
}

// DespawnX is the left edge a pipe must exceed to stay alive.
func (p Params) DespawnX() float64 {
	return -p.PipeWidth - p.DespawnMargin
}

// Validate checks that the parameters describe a playable field. It is the
// startup check for misconfiguration and never runs per frame.
func (p Params) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"bird size", p.BirdSize},
		{"pipe width", p.PipeWidth},
		{"gap height", p.GapHeight},
		{"pipe speed", p.PipeSpeed},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn interval must be positive, got %v", ErrInvalidParams, p.SpawnInterval)
	}
	if p.GroundHeight < 0 || p.GroundHeight >= p.Height {
		return fmt.Errorf("%w: ground height %v outside [0, %v)", ErrInvalidParams, p.GroundHeight, p.Height)
	}
	if p.GapHeight >= p.GroundY() {
		return fmt.Errorf("%w: gap height %v does not fit playable height %v", ErrInvalidParams, p.GapHeight, p.GroundY())
	}
	if p.MinGapTop() > p.MaxGapTop() {
		return fmt.Errorf("%w: gap-top range [%v, %v] is empty", ErrInvalidParams, p.MinGapTop(), p.MaxGapTop())
	}
	if p.RotationMin > p.RotationMax {
		return fmt.Errorf("%w: rotation range [%v, %v] is empty", ErrInvalidParams, p.RotationMin, p.RotationMax)
	}
	if 2*p.HitInset >= p.BirdSize {
		return fmt.Errorf("%w: hit inset %v swallows bird size %v", ErrInvalidParams, p.HitInset, p.BirdSize)
	}
	return nil
}
