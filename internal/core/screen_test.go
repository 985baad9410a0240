package core

import (
	"strings"
	"testing"
)

var (
	testFg = RGB(0xff, 0xe1, 0x35)
	testBg = RGB(0x4d, 0xc9, 0xf6)
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 0x5", s.Width(), s.Height())
	}
	s.SetColored(0, 0, 'X', testFg)
	if s.String() != "\n\n\n\n" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenSetKeepsBackground(t *testing.T) {
	s := NewScreen(10, 10)

	s.PaintRow(5, testBg)
	s.SetColored(5, 5, 'X', testFg)

	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Fg != testFg || c.Bg != testBg {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}
	if s.GetCell(0, 5).Bg != testBg || s.GetCell(0, 4).Bg.Set {
		t.Error("PaintRow should paint exactly one row")
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', testFg)
	s.SetColored(100, 0, 'A', testFg)
	s.SetBackground(0, -1, testBg)
	s.PaintRow(100, testBg)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', testFg, testBg)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", testFg)

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "World", testFg)
	if got := s.Row(2); got != "                 Wor" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "▲▶▼", testFg)

	if s.Get(0, 0) != '▲' || s.Get(1, 0) != '▶' || s.Get(2, 0) != '▼' {
		t.Errorf("multibyte runes should occupy one cell each, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawTextCentered(2, "Hi", testFg)

	if got := s.Row(2); got != "    Hi    " {
		t.Errorf("Row(2) = %q", got)
	}

	s.DrawTextCentered(3, "Best: 7", testFg)
	if got := s.Row(3); got != " Best: 7  " {
		t.Errorf("Row(3) = %q", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', testFg, testBg)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			c := s.GetCell(x, y)
			if inside && (c.Rune != '#' || c.Bg != testBg) {
				t.Errorf("expected filled cell at (%d, %d), got %+v", x, y, c)
			}
			if !inside && c != blankCell {
				t.Errorf("expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), testFg)

	want := []string{
		"        ",
		" ╭───╮  ",
		" │   │  ",
		" │   │  ",
		" ╰───╯  ",
		"        ",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, want %q", y, got, line)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', testFg)

	if got := s.Row(2); got != "  -----   " {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", testFg)
	s.DrawText(0, 1, "def", testFg)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 0, "Hello", testFg)
	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should discard content")
	}

	s.DrawText(0, 0, "Hi", testFg)
	s.Resize(20, 10)
	if s.Get(0, 0) != 'H' {
		t.Error("Resize to the same size should keep content")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(7); got != "    " {
		t.Errorf("Row(7) = %q", got)
	}
}
