package flappy

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// ErrStopped is returned by Tick once the engine has been stopped, either
// by its owner or by a fail-stop.
var ErrStopped = errors.New("flappy: engine stopped")

// ScoreStore persists the best score across sessions.
// LoadBest reports ok=false when nothing has been stored yet.
type ScoreStore interface {
	LoadBest() (best int, ok bool, err error)
	SaveBest(best int) error
}

// RunRecorder is an optional ScoreStore extension that keeps a history
// of finished runs.
type RunRecorder interface {
	RecordRun(score int) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore sets the best-score store. Without one, best scores live only
// in memory.
func WithStore(s ScoreStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSampler sets the gap placement source.
func WithSampler(rng Sampler) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed seeds the default gap placement source.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// Engine owns one session and drives it frame by frame. It is not safe for
// concurrent use: a single frame source and its input handlers must call it
// from one goroutine.
type Engine struct {
	params  Params
	session Session
	rng     Sampler
	store   ScoreStore
	logger  *log.Logger
	err     error
	stopped bool
}

// NewEngine validates p, loads the best score and returns an idle engine.
func NewEngine(p Params, now time.Time, opts ...Option) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{params: p}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	e.session = NewSession(p, now, e.loadBest())
	return e, nil
}

// loadBest reads the stored best score. Missing, malformed or unreadable
// values all count as zero.
func (e *Engine) loadBest() int {
	if e.store == nil {
		return 0
	}
	best, ok, err := e.store.LoadBest()
	if err != nil {
		e.logger.Warn("could not load best score", "error", err)
		return 0
	}
	if !ok || best < 0 {
		return 0
	}
	return best
}

// Tick runs one frame. A panic or broken invariant inside the frame stops
// the engine for good; the session is left as it was before the frame.
func (e *Engine) Tick(now time.Time) (res StepResult, err error) {
	if e.stopped {
		return StepResult{}, ErrStopped
	}

	defer func() {
		if r := recover(); r != nil {
			err = e.fail(fmt.Errorf("flappy: frame panicked: %v", r))
			res = StepResult{}
		}
	}()

	next, res := Step(e.session, e.params, now, e.rng)
	if err := checkFrame(e.session, next, e.params); err != nil {
		return StepResult{}, e.fail(err)
	}
	e.session = next

	if res.GameOver {
		e.finishRun(res)
	}
	return res, nil
}

// finishRun performs the game-over side effects. Step reports GameOver at
// most once per run, so these happen at most once per run too.
func (e *Engine) finishRun(res StepResult) {
	e.logger.Info("game over",
		"score", e.session.Score,
		"best", e.session.Best,
		"collision", res.Collision,
	)
	if e.store == nil {
		return
	}
	if res.NewBest {
		if err := e.store.SaveBest(e.session.Best); err != nil {
			e.logger.Warn("could not save best score", "best", e.session.Best, "error", err)
		}
	}
	if rec, ok := e.store.(RunRecorder); ok && e.session.Score > 0 {
		if err := rec.RecordRun(e.session.Score); err != nil {
			e.logger.Warn("could not record run", "score", e.session.Score, "error", err)
		}
	}
}

func (e *Engine) fail(err error) error {
	e.logger.Error("stopping frame loop", "error", err)
	e.err = err
	e.stopped = true
	return err
}

// Press handles a pointer, touch or key press and returns what it meant.
// Presses after Stop are ignored.
func (e *Engine) Press(now time.Time, src Source) Input {
	in := Route(e.session.Phase, src)
	if e.stopped {
		return in
	}
	before := e.session.Phase
	e.session, in = Press(e.session, e.params, now, src)
	if before != e.session.Phase {
		e.logger.Debug("phase changed", "from", before, "to", e.session.Phase, "source", src)
	}
	return in
}

// Flap is the flap entry point for callers that bypass input routing.
func (e *Engine) Flap(now time.Time) {
	if e.stopped {
		return
	}
	e.session = Flap(e.session, e.params, now)
}

// View returns the renderer input for the current session.
func (e *Engine) View(now time.Time) View {
	return newView(e.session, e.params, now)
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.session.Clone()
}

// Params returns the engine's parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Stop halts the engine. Later ticks return ErrStopped.
func (e *Engine) Stop() {
	e.stopped = true
}

// Stopped reports whether the engine no longer accepts frames.
func (e *Engine) Stopped() bool {
	return e.stopped
}

// Err returns the error that caused a fail-stop, if any.
func (e *Engine) Err() error {
	return e.err
}

// checkFrame verifies the invariants a frame must keep. A violation means
// the session is corrupt and must not be committed.
func checkFrame(prev, next Session, p Params) error {
	if math.IsNaN(next.Bird.Y) || math.IsInf(next.Bird.Y, 0) {
		return fmt.Errorf("flappy: bird position is not finite: %v", next.Bird.Y)
	}
	if next.Bird.X != prev.Bird.X {
		return fmt.Errorf("flappy: bird x moved from %v to %v", prev.Bird.X, next.Bird.X)
	}
	if next.Score < prev.Score {
		return fmt.Errorf("flappy: score decreased from %d to %d", prev.Score, next.Score)
	}
	if next.Best < prev.Best {
		return fmt.Errorf("flappy: best decreased from %d to %d", prev.Best, next.Best)
	}
	for _, o := range next.Obstacles {
		if o.GapTop < p.MinGapTop() || o.GapTop > p.MaxGapTop() {
			return fmt.Errorf("flappy: gap top %v outside [%v, %v]", o.GapTop, p.MinGapTop(), p.MaxGapTop())
		}
	}
	return nil
}
