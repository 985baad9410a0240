package flappy

import "time"

// StepResult describes what happened during one frame.
type StepResult struct {
	Spawned   bool
	Scored    int       // Pipes passed this frame
	Collision Collision // First terminal condition found, if any
	GameOver  bool      // The frame moved the session into PhaseGameOver
	NewBest   bool      // Best was raised by this game over
}

// Step advances the session by one frame and returns the next session.
// The input session is never modified.
//
// In PhasePlaying the order is: scroll, bird physics, spawn, pipe
// movement and removal, boundary check, per-pipe collision and scoring.
// Idle only bobs the bird and scrolls the background. Game over is frozen.
func Step(s Session, p Params, now time.Time, rng Sampler) (Session, StepResult) {
	next := s.Clone()
	var res StepResult

	switch s.Phase {
	case PhaseIdle:
		next.Bird = next.Bird.Bob(p, now)
		next.Scroll += p.IdleScroll

	case PhasePlaying:
		next.Scroll += p.PipeSpeed
		next.Bird = next.Bird.Fall(p)

		next.Obstacles, next.LastSpawn, res.Spawned = spawn(next.Obstacles, p, next.LastSpawn, now, rng)
		next.Obstacles = advance(next.Obstacles, p)

		res.Collision, res.Scored = evaluate(next.Bird, next.Obstacles, p)
		next.Score += res.Scored

		if res.Collision != CollisionNone {
			next.Phase = PhaseGameOver
			res.GameOver = true
			if next.Score > next.Best {
				next.Best = next.Score
				res.NewBest = true
			}
		}
	}

	return next, res
}

// Flap applies the flap input. From idle it starts a fresh run and gives
// the bird its first impulse; while playing it only resets velocity. Game
// over ignores flaps: use Restart.
func Flap(s Session, p Params, now time.Time) Session {
	switch s.Phase {
	case PhaseIdle:
		next := s.reset(p, now)
		next.Phase = PhasePlaying
		next.Bird = next.Bird.Flap(p)
		return next
	case PhasePlaying:
		next := s.Clone()
		next.Bird = next.Bird.Flap(p)
		return next
	default:
		return s.Clone()
	}
}

// Restart returns a game-over session to idle with a fresh run. It does not
// launch the run; the next flap does.
func Restart(s Session, p Params, now time.Time) Session {
	if s.Phase != PhaseGameOver {
		return s.Clone()
	}
	next := s.reset(p, now)
	next.Phase = PhaseIdle
	return next
}
