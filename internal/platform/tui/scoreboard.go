package tui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/paint"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	historyLimit = 100
	runIDWidth   = 8
	dateLayout   = "Jan 02 15:04"
)

// ScoreSource is what the scoreboard reads. *storage.GameScores satisfies it.
type ScoreSource interface {
	Top(limit int) ([]storage.ScoreEntry, error)
	Stats() (*storage.GameStats, error)
}

func termColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(core.FromNRGBA(c).Hex())
}

var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(termColor(paint.Title))
	boardMuted = lipgloss.NewStyle().Foreground(termColor(paint.Muted))
	boardFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(termColor(paint.PanelEdge)).
			Padding(0, 1)
	boardNotice = lipgloss.NewStyle().Italic(true).Padding(2, 4).
			Foreground(termColor(paint.Muted))
)

// boardKeys are the scoreboard bindings. They implement help.KeyMap.
type boardKeys struct {
	Up, Down, Refresh, Back, Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	bind := func(desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	}
	return boardKeys{
		Up:      bind("up", "up", "k"),
		Down:    bind("down", "down", "j"),
		Refresh: bind("reload", "r"),
		Back:    bind("back", "esc", "b", "tab"),
		Quit:    bind("quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel lists finished runs, best first. It runs on its own
// through RunScoreboard or inside the game Model, which sets embedded.
type ScoreboardModel struct {
	source   ScoreSource // nil when there is no database
	entries  []storage.ScoreEntry
	stats    *storage.GameStats
	err      error
	table    table.Model
	help     help.Model
	keys     boardKeys
	width    int
	height   int
	closing  bool
	quitting bool
	embedded bool
}

// NewScoreboardModel builds a scoreboard sized to the terminal and loads it.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   newBoardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.layout()
	m.reload()
	return m
}

// layout rebuilds the table for the current terminal size.
func (m *ScoreboardModel) layout() {
	dateW := 14
	if m.width > 60 {
		dateW = 18
	}
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Behind", Width: 7},
			{Title: "Played", Width: dateW},
			{Title: "Run", Width: runIDWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	st.Selected = st.Selected.
		Foreground(termColor(paint.Black)).
		Background(termColor(paint.Title))
	m.table.SetStyles(st)
	m.fillRows()
}

func (m *ScoreboardModel) reload() {
	m.entries, m.stats, m.err = nil, nil, nil
	if m.source == nil {
		m.fillRows()
		return
	}
	if m.entries, m.err = m.source.Top(historyLimit); m.err == nil {
		m.stats, m.err = m.source.Stats()
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	best := 0
	if len(m.entries) > 0 {
		best = m.entries[0].Score
	}
	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		behind := "-"
		if d := best - e.Score; d > 0 {
			behind = "-" + strconv.Itoa(d)
		}
		run := e.RunID
		if len(run) > runIDWidth {
			run = run[:runIDWidth]
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			behind,
			e.CreatedAt.Local().Format(dateLayout),
			run,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.done()
		case key.Matches(msg, m.keys.Back):
			m.closing = true
			return m, m.done()
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Up, m.keys.Down):
		default:
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// done ends a standalone program; an embedded board only flags its state.
func (m ScoreboardModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m ScoreboardModel) View() string {
	if !m.embedded && (m.closing || m.quitting) {
		return ""
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString(center(boardTitle.Render("HIGH SCORES - Flappy Bird")))
	b.WriteString("\n\n")
	if s := m.stats; s != nil && s.GamesCount > 0 {
		summary := fmt.Sprintf("%d runs  |  best %d  |  avg %.1f  |  last played %s",
			s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Local().Format(dateLayout))
		b.WriteString(center(boardMuted.Render(summary)))
		b.WriteString("\n\n")
	}
	b.WriteString(center(boardFrame.Render(m.body())))
	b.WriteString("\n")
	b.WriteString(boardMuted.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) body() string {
	switch {
	case m.source == nil:
		return boardNotice.Render("Score history is unavailable.\nStart with --db to record runs.")
	case m.err != nil:
		return boardNotice.Render("Could not load scores:\n" + m.err.Error())
	case len(m.entries) == 0:
		return boardNotice.Render("No scores recorded yet.\nFinish a run to set the first one.")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player left the board to keep playing.
func (m ScoreboardModel) IsGoingBack() bool { return m.closing }

// IsQuitting reports whether the player asked to quit the session.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard as its own full-screen program.
func RunScoreboard(source ScoreSource, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen()).Run()
	return err
}
