package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// withFlags restores the global flags after the test.
func withFlags(t *testing.T) {
	t.Helper()
	fps, seed, db, cfg, level, file := flagFPS, flagSeed, flagDBPath, flagConfig, flagLogLevel, flagLogFile
	t.Cleanup(func() {
		flagFPS, flagSeed, flagDBPath, flagConfig, flagLogLevel, flagLogFile = fps, seed, db, cfg, level, file
	})
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	withFlags(t)
	flagLogLevel = "chatty"

	if _, _, err := newLogger(false); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	withFlags(t)
	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "flappy.log")

	logger, closeLog, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "score", 3)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "score=3") {
		t.Errorf("log file = %q", data)
	}
}

func TestLoadParamsRefusesInvalidConfig(t *testing.T) {
	withFlags(t)
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	_, err := loadParams(log.New(&bytes.Buffer{}))
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("loadParams error = %v, want config.ErrInvalid", err)
	}
}

func TestLoadParamsCustomFile(t *testing.T) {
	withFlags(t)
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap: 180\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	p, err := loadParams(log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("loadParams: %v", err)
	}
	if p.GapHeight != 180 {
		t.Errorf("GapHeight = %v, want 180", p.GapHeight)
	}
	if p.Width != flappy.DefaultParams().Width {
		t.Errorf("Width = %v, want the default", p.Width)
	}
}

func TestOpenScoresWithSQLite(t *testing.T) {
	withFlags(t)
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")

	backend, scores := openScores(log.New(&bytes.Buffer{}))
	if backend == nil {
		t.Fatal("expected a backend")
	}
	defer backend.Close()

	if err := scores.RecordRun(4); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	top, err := scores.Top(5)
	if err != nil || len(top) != 1 || top[0].Score != 4 {
		t.Errorf("Top = %v, %v", top, err)
	}
}

func TestSimulateReleasesFrameSource(t *testing.T) {
	start := time.Unix(0, 0)
	engine, err := flappy.NewEngine(flappy.DefaultParams(), start, flappy.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	var sourceCtx context.Context
	res, err := simulate(context.Background(), engine, flappy.Autopilot{Slack: 1e6},
		func(ctx context.Context) <-chan time.Time {
			sourceCtx = ctx
			return flappy.FixedFrames(ctx, start, time.Second/60, 3600)
		})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.last.Phase != flappy.PhaseGameOver || res.frames >= 3600 {
		t.Errorf("run ended in %s after %d frames, want game over before the budget", res.last.Phase, res.frames)
	}

	select {
	case <-sourceCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("frame source context still live after simulate returned")
	}
}
