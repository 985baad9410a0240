package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: FlappyCanvas{
			Width:        400,
			Height:       600,
			GroundHeight: 70,
		},
		Bird: FlappyBird{
			Size:          28,
			XRatio:        0.3,
			RotationScale: 0.06,
			RotationMin:   -0.5,
			RotationMax:   1.2,
			HitInset:      4,
		},
		Physics: FlappyPhysics{
			Gravity:      0.15,
			FlapVelocity: -4.2,
		},
		Obstacles: FlappyObstacles{
			Width:         58,
			Gap:           150,
			Speed:         2.5,
			SpawnInterval: 1800 * time.Millisecond,
			SpawnOffset:   10,
			DespawnMargin: 20,
			TopMargin:     60,
			BottomMargin:  60,
			HitMargin:     5,
		},
		Idle: FlappyIdle{
			BobAmplitude: 12,
			BobFrequency: 0.003,
			ScrollSpeed:  0.5,
		},
	}
}
