package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/paint"
)

const (
	PipeChar    = '█'
	PipeCapTop  = '▀'
	PipeCapDown = '▄'
	GroundChar  = '▀'
	GrassChar   = '^'
	DirtChar    = '░'
	CloudChar   = '░'
	BirdChar    = '●'
)

// Cell renderer glyphs for the bird's beak, by tilt.
var beakGlyphs = [...]rune{'▲', '▶', '▼'}

var (
	cellWhite     = core.FromNRGBA(paint.White)
	cellTitle     = core.FromNRGBA(paint.Title)
	cellBird      = core.FromNRGBA(paint.Body[0].Color)
	cellBeak      = core.FromNRGBA(paint.Beak)
	cellTuft      = core.FromNRGBA(paint.Tuft)
	cellPipeEdge  = core.FromNRGBA(paint.PipeEdge)
	cellPanel     = core.FromNRGBA(paint.Panel)
	cellPanelEdge = core.FromNRGBA(paint.PanelEdge)
	cellAlert     = core.FromNRGBA(paint.Alert)
	cellValue     = core.FromNRGBA(paint.Value)
	cellMuted     = core.FromNRGBA(paint.Muted)
	cellButton    = core.FromNRGBA(paint.Button[0].Color)
)

// cellMap scales world coordinates onto a character grid.
type cellMap struct {
	sx, sy float64
}

func (m cellMap) col(x float64) int { return int(math.Floor(x * m.sx)) }
func (m cellMap) row(y float64) int { return int(math.Floor(y * m.sy)) }

// RenderCells draws the view onto a character screen. World coordinates
// are scaled to the screen, so any screen size shows the whole canvas.
func RenderCells(dst *core.Screen, v View) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	p := v.Params
	m := cellMap{sx: float64(dst.Width()) / p.Width, sy: float64(dst.Height()) / p.Height}

	groundRow := m.row(p.GroundY())
	paintBackdrop(dst, groundRow)

	for _, c := range Clouds(p, v.Scroll) {
		x0, x1 := m.col(c.X), m.col(c.X+c.W)
		dst.DrawHLine(x0, m.row(c.Y), max(x1-x0, 1), CloudChar, cellWhite)
	}

	for _, o := range v.Obstacles {
		drawPipeCells(dst, o, p, m)
	}

	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.FromNRGBA(paint.Grass[0].Color))
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, core.FromNRGBA(paint.Dirt[1].Color))
	}
	for _, x := range GrassTufts(p, v.Scroll) {
		dst.SetColored(m.col(x+tuftSpacing/4), groundRow, GrassChar, cellTuft)
	}

	drawBirdCells(dst, v, m)

	switch v.Phase {
	case PhaseIdle:
		drawIdleCells(dst, v)
	case PhasePlaying:
		dst.DrawTextCentered(1, fmt.Sprintf(" %d ", v.Score), cellWhite)
	case PhaseGameOver:
		drawGameOverCells(dst, v)
	}
}

// paintBackdrop lays the sky gradient above the ground row and the grass
// and dirt gradients from it down.
func paintBackdrop(dst *core.Screen, groundRow int) {
	for y := 0; y < dst.Height(); y++ {
		var bg core.Color
		switch {
		case y < groundRow:
			bg = core.FromNRGBA(paint.At(paint.Sky, (float64(y)+0.5)/float64(max(groundRow, 1))))
		case y == groundRow:
			bg = core.FromNRGBA(paint.Grass[1].Color)
		default:
			depth := dst.Height() - groundRow - 1
			bg = core.FromNRGBA(paint.At(paint.Dirt, float64(y-groundRow-1)/float64(max(depth, 1))))
		}
		dst.PaintRow(y, bg)
	}
}

func drawPipeCells(dst *core.Screen, o Obstacle, p Params, m cellMap) {
	x0, x1 := m.col(o.X), m.col(o.Right(p))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	gapTop, gapBottom := m.row(o.GapTop), m.row(o.GapBottom(p))
	ground := m.row(p.GroundY())

	for x := x0; x < x1; x++ {
		shade := core.FromNRGBA(paint.At(paint.Pipe, (float64(x-x0)+0.5)/float64(x1-x0)))
		for y := 0; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, shade)
		}
		for y := gapBottom; y < ground; y++ {
			dst.SetColored(x, y, PipeChar, shade)
		}
		dst.SetColored(x, gapTop-1, PipeCapDown, cellPipeEdge)
		dst.SetColored(x, gapBottom, PipeCapTop, cellPipeEdge)
	}
}

func drawBirdCells(dst *core.Screen, v View, m cellMap) {
	b := v.Bird
	y := b.Y
	if v.Phase == PhasePlaying {
		y += WingOffset(v.Now) / 4
	}
	x, r := m.col(b.X), m.row(y)

	tilt := b.DrawRotation(v.Params)
	beak := beakGlyphs[1]
	switch {
	case tilt < -0.2:
		beak = beakGlyphs[0]
	case tilt > 0.4:
		beak = beakGlyphs[2]
	}
	dst.SetColored(x, r, BirdChar, cellBird)
	dst.SetColored(x+1, r, beak, cellBeak)
}

func drawIdleCells(dst *core.Screen, v View) {
	h := dst.Height()
	dst.DrawTextCentered(h/5, "FLAPPY BIRD", cellTitle)
	if PromptAlpha(v.Now) > promptBase {
		dst.DrawTextCentered(h*2/3, startPrompt, cellWhite)
	}
	if v.Best > 0 {
		dst.DrawTextCentered(h*2/3+2, fmt.Sprintf("Best: %d", v.Best), cellWhite)
	}
}

const startPrompt = "Press Space to start"

const (
	panelWidth = 22
	playAgain  = "[ Play Again ]"
)

func drawGameOverCells(dst *core.Screen, v View) {
	lines := []struct {
		text string
		fg   core.Color
	}{
		{"Game Over", cellAlert},
		{"", cellValue},
		{fmt.Sprintf("Score %d", v.Score), cellValue},
		{fmt.Sprintf("Best: %d", v.Best), cellMuted},
		{"", cellValue},
		{playAgain, cellWhite},
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(panelWidth, len(lines)+2)
	dst.FillRect(box, ' ', cellValue, cellPanel)
	dst.DrawBox(box, cellPanelEdge)

	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line.text, line.fg)
	}

	btnRow := box.Y + len(lines)
	btnX := (dst.Width() - len(playAgain)) / 2
	for x := btnX; x < btnX+len(playAgain); x++ {
		dst.SetBackground(x, btnRow, cellButton)
	}
}
