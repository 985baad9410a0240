package flappy

import "time"

// View is the read-only snapshot a renderer draws from. It shares no
// memory with the engine.
type View struct {
	Phase     Phase
	Bird      Bird
	Obstacles []Obstacle
	Score     int
	Best      int
	Scroll    float64
	Now       time.Time
	Params    Params
}

func newView(s Session, p Params, now time.Time) View {
	s = s.Clone()
	return View{
		Phase:     s.Phase,
		Bird:      s.Bird,
		Obstacles: s.Obstacles,
		Score:     s.Score,
		Best:      s.Best,
		Scroll:    s.Scroll,
		Now:       now,
		Params:    p,
	}
}

// ViewOf builds a View straight from a session, for callers driving Step
// without an Engine.
func ViewOf(s Session, p Params, now time.Time) View {
	return newView(s, p, now)
}
