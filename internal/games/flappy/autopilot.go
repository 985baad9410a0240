package flappy

// Autopilot decides when to flap so the bird threads the next gap. It drives
// headless simulations and demo sessions.
type Autopilot struct {
	// Slack is how far below the gap center the bird may sink before it
	// flaps.
	Slack float64
}

// ShouldFlap reports whether a flap now keeps the bird on course.
func (a Autopilot) ShouldFlap(v View) bool {
	p := v.Params
	if v.Phase == PhaseGameOver {
		return false
	}
	if v.Phase == PhaseIdle {
		return true
	}

	target := p.StartY()
	for _, o := range v.Obstacles {
		if o.Right(p)+p.HitMargin >= v.Bird.X-p.BirdSize/2 {
			target = o.GapTop + p.GapHeight/2
			break
		}
	}

	return v.Bird.Velocity >= 0 && v.Bird.Y > target+a.Slack
}
