package tui

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var start = time.UnixMilli(5_000_000)

type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
}

func (f fakeScores) Top(int) ([]storage.ScoreEntry, error) { return f.entries, f.err }

func (f fakeScores) Stats() (*storage.GameStats, error) {
	return &storage.GameStats{GameID: flappy.GameID, GamesCount: len(f.entries)}, f.err
}

type brokenSampler struct{}

func (brokenSampler) Float64() float64 { panic("broken") }

func newTestModel(t *testing.T, scores ScoreSource, opts ...flappy.Option) Model {
	t.Helper()
	opts = append([]flappy.Option{flappy.WithSeed(1)}, opts...)
	e, err := flappy.NewEngine(flappy.DefaultParams(), start, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(e, scores, core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelFlapStartsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, FrameMsg(start.Add(16*time.Millisecond)))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.engine.Session().Phase; got != flappy.PhasePlaying {
		t.Fatalf("phase = %v, want playing", got)
	}

	m, cmd := update(t, m, FrameMsg(start.Add(32*time.Millisecond)))
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}
	if v := m.engine.Session().Bird.Velocity; math.Abs(v-(-4.05)) > 1e-9 {
		t.Errorf("velocity = %v, want -4.05", v)
	}
}

func TestModelMouseFlaps(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.engine.Session().Phase; got != flappy.PhasePlaying {
		t.Errorf("phase = %v, want playing", got)
	}
}

func TestModelScoreboardOnlyWhenNotPlaying(t *testing.T) {
	scores := fakeScores{entries: []storage.ScoreEntry{{Score: 9, CreatedAt: start}}}
	m := newTestModel(t, scores)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("scoreboard did not open from idle")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	// Space belongs to the scoreboard while it is open.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.engine.Session().Phase != flappy.PhaseIdle {
		t.Error("key leaked to the game while the scoreboard was open")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.board != nil {
		t.Fatal("scoreboard did not close on esc")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board != nil {
		t.Error("scoreboard opened during a run")
	}
}

func TestModelQuitStopsEngine(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if !m.engine.Stopped() {
		t.Error("engine still running after quit")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}

	_, cmd = update(t, m, FrameMsg(start.Add(time.Second)))
	if cmd != nil {
		t.Error("tick rescheduled after quit")
	}
}

func TestModelFailStopQuits(t *testing.T) {
	m := newTestModel(t, nil, flappy.WithSampler(brokenSampler{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, FrameMsg(start.Add(2*time.Second)))
	if cmd == nil {
		t.Fatal("fail-stop did not quit")
	}
	if m.Err() == nil || errors.Is(m.Err(), flappy.ErrStopped) {
		t.Errorf("Err() = %v, want the frame error", m.Err())
	}
}

func TestModelViewShowsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 25})
	out := m.View()
	if !strings.Contains(out, "FLAPPY BIRD") {
		t.Error("idle view missing title")
	}
	if !strings.Contains(out, "tab scores") {
		t.Error("idle view missing footer")
	}
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, want 24 (one row for the footer)", m.screen.Height())
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 30)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("nil source view should explain the missing database")
	}

	m = NewScoreboardModel(fakeScores{err: errors.New("db locked")}, 60, 30)
	if !strings.Contains(m.View(), "db locked") {
		t.Error("load error not shown")
	}

	m = NewScoreboardModel(fakeScores{}, 60, 30)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty history not shown")
	}
}

func TestScoreboardRows(t *testing.T) {
	m := NewScoreboardModel(fakeScores{entries: []storage.ScoreEntry{
		{Score: 12, RunID: "0123456789abcdef", CreatedAt: start},
		{Score: 7, RunID: "short", CreatedAt: start},
	}}, 80, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][2] != "-" || rows[0][4] != "01234567" {
		t.Errorf("best row = %v", rows[0])
	}
	if rows[1][1] != "7" || rows[1][2] != "-5" || rows[1][4] != "short" {
		t.Errorf("second row = %v", rows[1])
	}
}
