// Package gui is the desktop frontend: an ebiten window that feeds pointer,
// touch and keyboard presses into a flappy.Engine and paints each frame with
// vector shapes.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Options tune the window.
type Options struct {
	Title  string
	Scale  float64 // Window size multiplier over the canvas
	TPS    int     // Frames per second; zero keeps ebiten's 60
	Logger *log.Logger
	Clock  func() time.Time
}

// DefaultOptions returns a 1x window titled "Flappy Bird".
func DefaultOptions() Options {
	return Options{Title: "Flappy Bird", Scale: 1}
}

// Game adapts an engine to ebiten.Game. Each Update is one simulation
// frame at ebiten's tick rate.
type Game struct {
	engine   *flappy.Engine
	renderer *Renderer
	logger   *log.Logger
	clock    func() time.Time
	last     time.Time
	touches  []ebiten.TouchID
}

// NewGame wraps an engine for the window loop.
func NewGame(engine *flappy.Engine, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		engine:   engine,
		renderer: NewRenderer(engine.Params()),
		logger:   opts.Logger,
		clock:    opts.Clock,
		last:     opts.Clock(),
	}
}

// Update routes this frame's presses, then advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := g.clock()
	for _, k := range flapKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.press(now, flappy.SourceKey)
			break
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(now, flappy.SourcePointer)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		g.press(now, flappy.SourceTouch)
	}

	if _, err := g.engine.Tick(now); err != nil {
		return err
	}
	g.last = now
	return nil
}

func (g *Game) press(now time.Time, src flappy.Source) {
	in := g.engine.Press(now, src)
	g.logger.Debug("press", "source", src, "input", in)
}

// Draw paints the state as of the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.engine.View(g.last))
}

// Layout pins the logical screen to the canvas size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	p := g.engine.Params()
	return int(p.Width), int(p.Height)
}

// Run opens the window and blocks until it closes. Closing the window or
// pressing Escape is a clean exit; an engine failure is returned.
func Run(engine *flappy.Engine, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	p := engine.Params()
	ebiten.SetWindowSize(int(p.Width*opts.Scale), int(p.Height*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	err := ebiten.RunGame(NewGame(engine, opts))
	engine.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return engine.Err()
}
