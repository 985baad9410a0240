package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one flappy session. The engine is the
// only game state; FrameMsg ticks are its frame source.
type Model struct {
	engine    *flappy.Engine
	scores    ScoreSource // May be nil
	screen    *core.Screen
	painter   *ScreenRenderer
	config    core.RuntimeConfig
	keys      *KeyMapper
	board     *ScoreboardModel // Non-nil while the scoreboard is open
	frameTime time.Time
	quitting  bool
}

// NewModel creates a Bubble Tea model driving engine. scores backs the
// scoreboard and may be nil.
func NewModel(engine *flappy.Engine, scores ScoreSource, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalized()
	return Model{
		engine:  engine,
		scores:  scores,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		painter: NewScreenRenderer(),
		config:  cfg,
		keys:    NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return nextFrame(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.board == nil && m.keys.MapMouse(msg) == core.ActionFlap {
			m.engine.Press(m.now(), flappy.SourcePointer)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m, nil

	case FrameMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input while the game is shown.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionFlap:
		m.engine.Press(m.now(), flappy.SourceKey)
	case core.ActionScoreboard:
		// Never interrupt a run in progress.
		if m.engine.Session().Phase != flappy.PhasePlaying {
			board := NewScoreboardModel(m.scores, m.config.ScreenW, m.config.ScreenH)
			board.embedded = true
			m.board = &board
		}
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board := next.(ScoreboardModel)
	switch {
	case board.IsQuitting():
		return m.quit()
	case board.IsGoingBack():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// handleTick runs one engine frame and schedules the next.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.frameTime = now
	if _, err := m.engine.Tick(now); err != nil {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nextFrame(m.config.FrameInterval())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.engine.Stop()
	return m, tea.Quit
}

// now is the timestamp for input handling: the last frame time, so input
// and frames share one clock.
func (m Model) now() time.Time {
	if m.frameTime.IsZero() {
		return time.Now()
	}
	return m.frameTime
}

// Err returns the engine's fail-stop error, if the session ended on one.
func (m Model) Err() error {
	return m.engine.Err()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	flappy.RenderCells(m.screen, m.engine.View(m.now()))

	dir := filepath.Join(config.UserDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", flappy.GameID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	flappy.RenderCells(m.screen, m.engine.View(m.now()))
	footer := "space/click flap  tab scores  q quit"
	if m.engine.Session().Phase == flappy.PhasePlaying {
		footer = "space/click flap  q quit"
	}
	return m.painter.Render(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program for engine and returns once the player
// quits or the engine fails.
func Run(engine *flappy.Engine, scores ScoreSource, cfg core.RuntimeConfig, opts ...tea.ProgramOption) error {
	model := NewModel(engine, scores, cfg)

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		return err
	}
	return engine.Err()
}
