// Package tui is the terminal frontend for the flappy engine: a Bubble Tea
// program per player, fed by tea.Tick frames, and a Wish SSH server that
// hands one such program to every connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one engine frame at the carried instant.
type FrameMsg time.Time

// nextFrame schedules the next FrameMsg one frame interval from now. The
// model re-arms it after every frame, so a slow frame delays the next one
// instead of queueing a burst.
func nextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
