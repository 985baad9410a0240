package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellPaint is the color pair a run of cells shares.
type cellPaint struct {
	fg, bg core.Color
}

// ScreenRenderer turns screen buffers into styled strings. It memoizes one
// lipgloss style per color pair; frames reuse a small palette. A renderer
// belongs to one program and is not safe for concurrent use.
type ScreenRenderer struct {
	styles map[cellPaint]lipgloss.Style
	run    strings.Builder
}

// NewScreenRenderer returns a renderer with an empty style cache.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{styles: make(map[cellPaint]lipgloss.Style)}
}

func (r *ScreenRenderer) style(k cellPaint) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if k.fg.Set {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.bg.Set {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	r.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one escape sequence. lipgloss
// degrades the colors to whatever the terminal supports.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellPaint{fg: cell.Fg, bg: cell.Bg}

			r.run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellPaint{fg: cell.Fg, bg: cell.Bg}) != key {
					break
				}
				r.run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(key).Render(r.run.String()))
		}
	}
	return sb.String()
}
