package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (ph Phase) String() string {
	switch ph {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Bird is the player entity. X never changes during a run.
type Bird struct {
	X        float64
	Y        float64 // Center
	Velocity float64 // Per frame, positive is down
	Rotation float64 // Derived from velocity, unclamped
}

// StartBird returns the bird in its start pose.
func StartBird(p Params) Bird {
	return Bird{X: p.BirdX(), Y: p.StartY()}
}

// Flap replaces the vertical velocity with the flap impulse.
func (b Bird) Flap(p Params) Bird {
	b.Velocity = p.FlapVelocity
	return b
}

// Fall integrates one frame of gravity.
func (b Bird) Fall(p Params) Bird {
	b.Velocity += p.Gravity
	b.Y += b.Velocity
	b.Rotation = b.Velocity * p.RotationScale
	return b
}

// Bob places the bird on its idle hover curve for the given instant.
func (b Bird) Bob(p Params, now time.Time) Bird {
	b.Y = p.StartY() + math.Sin(millis(now)*p.BobFrequency)*p.BobAmplitude
	b.Rotation = 0
	return b
}

// DrawRotation is the rotation clamped to the range renderers may show.
func (b Bird) DrawRotation(p Params) float64 {
	return core.ClampF(b.Rotation, p.RotationMin, p.RotationMax)
}

// Bounds is the full visual extent of the bird.
func (b Bird) Bounds(p Params) core.RectF {
	half := p.BirdSize / 2
	return core.CenteredRectF(b.X, b.Y, half, half)
}

// Hitbox is the inset box used against pipes.
func (b Bird) Hitbox(p Params) core.RectF {
	return b.Bounds(p).Inset(p.HitInset)
}

// Obstacle is a pipe pair with a single gap.
type Obstacle struct {
	X         float64 // Left edge
	GapTop    float64
	Scored    bool
	SpawnedAt time.Time
}

// GapBottom is the top of the lower pipe.
func (o Obstacle) GapBottom(p Params) float64 {
	return o.GapTop + p.GapHeight
}

// Right is the right edge of the pipe.
func (o Obstacle) Right(p Params) float64 {
	return o.X + p.PipeWidth
}

// Session is everything that changes while the game runs. It is a value:
// Step takes one and returns the next without touching the input.
type Session struct {
	Phase     Phase
	Bird      Bird
	Obstacles []Obstacle // Insertion (spawn) order
	Score     int
	Best      int
	Scroll    float64 // Background parallax offset, cosmetic
	LastSpawn time.Time
}

// NewSession returns an idle session with the given best score.
func NewSession(p Params, now time.Time, best int) Session {
	s := Session{Phase: PhaseIdle, Best: best}
	return s.reset(p, now)
}

// reset restores the run-scoped fields. Phase and Best are kept.
func (s Session) reset(p Params, now time.Time) Session {
	s.Bird = StartBird(p)
	s.Obstacles = nil
	s.Score = 0
	s.Scroll = 0
	s.LastSpawn = now
	return s
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	if s.Obstacles != nil {
		s.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	}
	return s
}

func millis(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}
