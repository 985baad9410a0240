package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/click  - Flap (restart after game over)
  Tab               - Scoreboard (when not flying)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml --log-file /tmp/flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	params, err := loadParams(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	opts := engineOptions(logger)
	// scores stays a nil interface without a backend.
	var scores tui.ScoreSource
	backend, gameScores := openScores(logger)
	if backend != nil {
		defer backend.Close()
		scores = gameScores
		opts = append(opts, flappy.WithStore(gameScores))
	} else {
		fmt.Fprintln(os.Stderr, "Warning: scores database unavailable, best score will not be kept")
	}

	engine, err := flappy.NewEngine(params, time.Now(), opts...)
	if err != nil {
		return err
	}
	if err := tui.Run(engine, scores, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
