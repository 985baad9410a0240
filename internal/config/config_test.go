package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestDefaultConfigMatchesParams(t *testing.T) {
	if got, want := DefaultFlappyConfig().Params(), flappy.DefaultParams(); got != want {
		t.Errorf("Params() = %+v\nwant %+v", got, want)
	}
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	cfg, err := parseFlappy(defaultFlappyYAML)
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded config drifted from DefaultFlappyConfig:\n%+v", cfg)
	}
}

func TestLoadFlappyCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "obstacles:\n  gap: 180\n  spawn_interval: 2s\nphysics:\n  gravity: 0.2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, want %q", src, SourceCustom)
	}
	if cfg.Obstacles.Gap != 180 || cfg.Physics.Gravity != 0.2 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Obstacles.SpawnInterval != 2*time.Second {
		t.Errorf("SpawnInterval = %v, want 2s", cfg.Obstacles.SpawnInterval)
	}
	if cfg.Obstacles.Width != 58 || cfg.Canvas.Height != 600 {
		t.Errorf("defaults lost for missing keys: %+v", cfg)
	}
}

func TestLoadFlappyCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFlappy(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadFlappySearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, src, err := LoadFlappy("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded || cfg != DefaultFlappyConfig() {
		t.Errorf("got %q %+v, want embedded defaults", src, cfg)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("obstacles:\n  speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadFlappy("")
	if src != SourceLocal || cfg.Obstacles.Speed != 3 {
		t.Errorf("got %q speed %v, want local speed 3", src, cfg.Obstacles.Speed)
	}

	userDir := filepath.Join(home, ".flappy", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "flappy.yaml"), []byte("obstacles:\n  speed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadFlappy("")
	if src != SourceUser || cfg.Obstacles.Speed != 4 {
		t.Errorf("got %q speed %v, want user speed 4", src, cfg.Obstacles.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"gap fills playable height", func(c *FlappyConfig) { c.Obstacles.Gap = 530 }},
		{"margins leave no room", func(c *FlappyConfig) {
			c.Obstacles.TopMargin = 300
			c.Obstacles.BottomMargin = 300
		}},
		{"zero speed", func(c *FlappyConfig) { c.Obstacles.Speed = 0 }},
		{"zero interval", func(c *FlappyConfig) { c.Obstacles.SpawnInterval = 0 }},
		{"downward flap", func(c *FlappyConfig) { c.Physics.FlapVelocity = 4.2 }},
		{"bird off canvas", func(c *FlappyConfig) { c.Bird.XRatio = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
