package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of the screen buffer. Fg colors the
// glyph, Bg the cell behind it.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a character buffer with a separate background layer. Glyph
// writes keep the background already painted, so a renderer can lay down
// sky and ground first and draw sprites over them.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// render pass redraws everything.
func (s *Screen) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear blanks every cell, background included.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) at(x, y int) *Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return nil
	}
	return &s.cells[y*s.width+x]
}

// SetColored places a glyph at (x, y), keeping the cell's background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(x, y int, r rune, fg Color) {
	if c := s.at(x, y); c != nil {
		c.Rune, c.Fg = r, fg
	}
}

// SetBackground paints the background of one cell.
func (s *Screen) SetBackground(x, y int, bg Color) {
	if c := s.at(x, y); c != nil {
		c.Bg = bg
	}
}

// PaintRow paints the background of a whole row.
func (s *Screen) PaintRow(y int, bg Color) {
	for x := 0; x < s.width; x++ {
		s.SetBackground(x, y, bg)
	}
}

// Get returns the rune at (x, y), or a space out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if c := s.at(x, y); c != nil {
		return *c
	}
	return blankCell
}

// DrawText writes a string horizontally starting at (x, y), clipped to
// the screen.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, fg)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text, fg)
}

// FillRect sets glyph, foreground and background of every cell in r.
func (s *Screen) FillRect(r Rect, fill rune, fg, bg Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if c := s.at(x, y); c != nil {
				*c = Cell{Rune: fill, Fg: fg, Bg: bg}
			}
		}
	}
}

// DrawBox draws a rounded box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, fg Color) {
	s.SetColored(r.X, r.Y, '╭', fg)
	s.SetColored(r.Right()-1, r.Y, '╮', fg)
	s.SetColored(r.X, r.Bottom()-1, '╰', fg)
	s.SetColored(r.Right()-1, r.Bottom()-1, '╯', fg)

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─', fg)
	s.DrawHLine(r.X+1, r.Bottom()-1, r.W-2, '─', fg)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', fg)
		s.SetColored(r.Right()-1, y, '│', fg)
	}
}

// DrawHLine draws length copies of r to the right of (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, fg Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, fg)
	}
}

// String converts the screen to plain text, one line per row. Colors are
// dropped; screenshots and tests use this form.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
