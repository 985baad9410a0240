// flappy is a one-button Flappy Bird for the terminal, the desktop and SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy gui               - Play in a window
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the run history and best score
//	flappy sim               - Run the autopilot headless
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible pipes
//	--db <dsn>          - Scores database path or postgres:// URL
//	--config <path>     - Game config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal, a window or over SSH",
	Long: `Guide the bird through the gaps between the pipes. One button flaps;
touching a pipe or the ground ends the run.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  sim      - Let the autopilot play headless

Examples:
  flappy play
  flappy gui --save db
  flappy serve --ssh :2222
  flappy scores --limit 20
  flappy sim --frames 3600 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Scores database path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger from --log-level and --log-file.
// With quiet set and no log file, logs are discarded; the terminal game
// owns the screen.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return logger, closeFn, nil
}

// loadParams resolves the game config and refuses to continue on an
// invalid one.
func loadParams(logger *log.Logger) (flappy.Params, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return flappy.Params{}, err
	}
	if err := cfg.Validate(); err != nil {
		return flappy.Params{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg.Params(), nil
}

// engineOptions returns the options every frontend shares.
func engineOptions(logger *log.Logger) []flappy.Option {
	opts := []flappy.Option{flappy.WithLogger(logger.WithPrefix("engine"))}
	if flagSeed != 0 {
		opts = append(opts, flappy.WithSeed(flagSeed))
	}
	return opts
}

// openScores opens the --db backend for the flappy game. A backend that
// cannot be opened is logged and skipped; the game still runs.
func openScores(logger *log.Logger) (storage.Backend, *storage.GameScores) {
	backend, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "db", flagDBPath, "error", err)
		return nil, nil
	}
	return backend, storage.NewGameScores(backend, flappy.GameID)
}
