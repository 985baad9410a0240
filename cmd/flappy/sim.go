package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagFrames int
	flagSlack  float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play headless",
	Long: `Run the game without a screen, driven by the autopilot and a synthetic
clock at --fps frames per second. The run ends at game over or after
--frames frames, whichever comes first. Equal seeds give equal runs.

Examples:
  flappy sim --seed 42
  flappy sim --frames 36000 --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().Float64Var(&flagSlack, "slack", 10, "How far below the gap center the autopilot sinks before flapping")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	params, err := loadParams(logger)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	start := time.Unix(0, 0)
	engine, err := flappy.NewEngine(params, start, engineOptions(logger)...)
	if err != nil {
		return err
	}

	step := time.Second / time.Duration(flagFPS)
	res, err := simulate(cmd.Context(), engine, flappy.Autopilot{Slack: flagSlack},
		func(ctx context.Context) <-chan time.Time {
			return flappy.FixedFrames(ctx, start, step, flagFrames)
		})
	if err != nil {
		return err
	}

	fmt.Printf("frames: %d  phase: %s  score: %d  best: %d\n", res.frames, res.last.Phase, res.last.Score, res.last.Best)
	return nil
}

type simResult struct {
	frames int
	last   flappy.View
}

// simulate lets pilot play engine until game over or until the frame source
// runs dry. The source gets its own context, canceled on return, so its
// producer never outlives the run.
func simulate(ctx context.Context, engine *flappy.Engine, pilot flappy.Autopilot, source func(context.Context) <-chan time.Time) (simResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var res simResult
	err := flappy.Run(ctx, engine, source(ctx), func(v flappy.View) {
		res.frames++
		res.last = v
		if v.Phase == flappy.PhaseGameOver {
			engine.Stop()
			return
		}
		if pilot.ShouldFlap(v) {
			engine.Press(v.Now, flappy.SourceKey)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return res, err
	}
	return res, nil
}
