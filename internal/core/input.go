package core

// Action is what a key or mouse event means to a session, independent of
// the device it came from.
type Action int

const (
	ActionNone Action = iota
	// ActionFlap is the one gameplay input. It starts, flaps and restarts.
	ActionFlap
	ActionScoreboard
	ActionBack
	ActionQuit
)

var actionNames = [...]string{"none", "flap", "scoreboard", "back", "quit"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}
