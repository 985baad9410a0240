package flappy

import "time"

// Source identifies the raw input device behind a press.
type Source int

const (
	SourcePointer Source = iota // Mouse button
	SourceTouch                 // Touch start
	SourceKey                   // Space, Up arrow and friends
)

// String returns a human-readable name for the source.
func (src Source) String() string {
	switch src {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	case SourceKey:
		return "key"
	default:
		return "unknown"
	}
}

// Input is the logical action a press resolves to.
type Input int

const (
	InputFlap Input = iota
	InputRestart
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	if in == InputRestart {
		return "restart"
	}
	return "flap"
}

// Route maps any press to its logical input for the current phase. All
// sources are treated identically.
func Route(ph Phase, _ Source) Input {
	if ph == PhaseGameOver {
		return InputRestart
	}
	return InputFlap
}

// Press routes a press and applies it to the session.
func Press(s Session, p Params, now time.Time, src Source) (Session, Input) {
	in := Route(s.Phase, src)
	if in == InputRestart {
		return Restart(s, p, now), in
	}
	return Flap(s, p, now), in
}
