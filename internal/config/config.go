// Package config provides YAML-based game configuration loading and
// validation for the flappy frontends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ErrInvalid is returned by Validate for configurations that cannot
// produce a playable game.
var ErrInvalid = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Canvas    FlappyCanvas    `yaml:"canvas"`
	Bird      FlappyBird      `yaml:"bird"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Idle      FlappyIdle      `yaml:"idle"`
}

// FlappyCanvas defines the world size in canvas pixels.
type FlappyCanvas struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FlappyBird defines the bird's size, placement and tilt.
type FlappyBird struct {
	Size          float64 `yaml:"size"`
	XRatio        float64 `yaml:"x_ratio"`
	RotationScale float64 `yaml:"rotation_scale"`
	RotationMin   float64 `yaml:"rotation_min"`
	RotationMax   float64 `yaml:"rotation_max"`
	HitInset      float64 `yaml:"hit_inset"`
}

// FlappyPhysics defines per-frame physics for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapVelocity float64 `yaml:"flap_velocity"`
}

// FlappyObstacles defines pipe parameters for Flappy Bird.
type FlappyObstacles struct {
	Width         float64       `yaml:"width"`
	Gap           float64       `yaml:"gap"`
	Speed         float64       `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnOffset   float64       `yaml:"spawn_offset"`
	DespawnMargin float64       `yaml:"despawn_margin"`
	TopMargin     float64       `yaml:"top_margin"`
	BottomMargin  float64       `yaml:"bottom_margin"`
	HitMargin     float64       `yaml:"hit_margin"`
}

// FlappyIdle defines the start screen animation.
type FlappyIdle struct {
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency"` // Radians per millisecond
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// Params converts the configuration into simulation parameters.
func (c FlappyConfig) Params() flappy.Params {
	return flappy.Params{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		GroundHeight: c.Canvas.GroundHeight,

		BirdSize:      c.Bird.Size,
		BirdXRatio:    c.Bird.XRatio,
		RotationScale: c.Bird.RotationScale,
		RotationMin:   c.Bird.RotationMin,
		RotationMax:   c.Bird.RotationMax,
		HitInset:      c.Bird.HitInset,

		Gravity:      c.Physics.Gravity,
		FlapVelocity: c.Physics.FlapVelocity,

		PipeWidth:     c.Obstacles.Width,
		GapHeight:     c.Obstacles.Gap,
		PipeSpeed:     c.Obstacles.Speed,
		SpawnInterval: c.Obstacles.SpawnInterval,
		SpawnOffset:   c.Obstacles.SpawnOffset,
		DespawnMargin: c.Obstacles.DespawnMargin,
		TopMargin:     c.Obstacles.TopMargin,
		BottomMargin:  c.Obstacles.BottomMargin,
		HitMargin:     c.Obstacles.HitMargin,

		BobAmplitude: c.Idle.BobAmplitude,
		BobFrequency: c.Idle.BobFrequency,
		IdleScroll:   c.Idle.ScrollSpeed,
	}
}

// Validate reports whether the configuration describes a playable game.
// Frontends call it once at startup and refuse to run on error.
func (c FlappyConfig) Validate() error {
	if c.Bird.XRatio <= 0 || c.Bird.XRatio >= 1 {
		return fmt.Errorf("%w: bird.x_ratio %v outside (0, 1)", ErrInvalid, c.Bird.XRatio)
	}
	if c.Physics.FlapVelocity >= 0 {
		return fmt.Errorf("%w: physics.flap_velocity must point up (negative), got %v", ErrInvalid, c.Physics.FlapVelocity)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
