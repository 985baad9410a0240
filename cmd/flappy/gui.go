package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// localAppName names the per-user save data directory.
const localAppName = "flappy"

var (
	flagSave  string
	flagScale float64
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a 400x600 window and play with the mouse, touch or keyboard.

Controls:
  Click/tap/Space/Up  - Flap (restart after game over)
  Esc                 - Quit

Best score storage (--save):
  local  - Per-user save data (default)
  db     - The --db scores database, with run history

Examples:
  flappy gui
  flappy gui --scale 1.5
  flappy gui --save db --db postgres://localhost/flappy`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagSave, "save", "local", "Best score storage: local or db")
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runGUI(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	params, err := loadParams(logger)
	if err != nil {
		return err
	}

	opts := engineOptions(logger)
	switch flagSave {
	case "local":
		local, err := storage.OpenLocal(localAppName)
		if err != nil {
			logger.Warn("save data unavailable, best score will not be kept", "error", err)
			break
		}
		opts = append(opts, flappy.WithStore(local))
	case "db":
		backend, gameScores := openScores(logger)
		if backend != nil {
			defer backend.Close()
			opts = append(opts, flappy.WithStore(gameScores))
		}
	default:
		return fmt.Errorf("unknown --save %q (want local or db)", flagSave)
	}

	engine, err := flappy.NewEngine(params, time.Now(), opts...)
	if err != nil {
		return err
	}

	guiOpts := gui.DefaultOptions()
	guiOpts.Scale = flagScale
	guiOpts.TPS = flagFPS
	guiOpts.Logger = logger.WithPrefix("gui")
	return gui.Run(engine, guiOpts)
}
