package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/paint"
)

const (
	capHeight   = 26
	capOverhang = 5
	grassBand   = 15
	birdCanvas  = 64 // Offscreen bird sprite size; the bird is drawn at its center
	ellipseSegs = 40
)

// Renderer draws a flappy.View onto an ebiten image. It owns the offscreen
// layers it needs and is not safe for concurrent use.
type Renderer struct {
	clouds *ebiten.Image
	bird   *ebiten.Image
}

// NewRenderer allocates the offscreen layers for a canvas of the given size.
func NewRenderer(p flappy.Params) *Renderer {
	return &Renderer{
		clouds: ebiten.NewImage(int(p.Width), int(p.Height)),
		bird:   ebiten.NewImage(birdCanvas, birdCanvas),
	}
}

// Draw paints one frame: background, pipes, ground, bird and the phase
// overlay, in that order.
func (r *Renderer) Draw(dst *ebiten.Image, v flappy.View) {
	p := v.Params
	r.drawSky(dst, v)
	for _, o := range v.Obstacles {
		drawPipe(dst, o, p)
	}
	drawGround(dst, v)
	r.drawBird(dst, v)

	switch v.Phase {
	case flappy.PhaseIdle:
		drawStartScreen(dst, v)
	case flappy.PhasePlaying:
		drawLabel(dst, label{
			Text: fmt.Sprint(v.Score), X: p.Width / 2, Y: 70, Size: 52, Bold: true,
			Color: paint.White, Outline: paint.Fade(paint.Black, 0.5), Stroke: 2.5,
		})
	case flappy.PhaseGameOver:
		drawGameOverScreen(dst, v)
	}
}

func (r *Renderer) drawSky(dst *ebiten.Image, v flappy.View) {
	p := v.Params
	fillGradientRect(dst, 0, 0, p.Width, p.GroundY(), paint.Sky, vertical)

	// Clouds are filled opaque on their own layer, then faded as a whole so
	// overlapping puffs do not stack alpha.
	r.clouds.Clear()
	for _, c := range flappy.Clouds(p, v.Scroll) {
		cx := c.X + c.W/2
		fillPolygon(r.clouds, paint.Ellipse(cx, c.Y, c.W/2, c.H/2, 0, ellipseSegs), paint.White)
		fillPolygon(r.clouds, paint.Ellipse(cx-c.W*0.25, c.Y+5, c.W/3, c.H/2.5, 0, ellipseSegs), paint.White)
		fillPolygon(r.clouds, paint.Ellipse(cx+c.W*0.25, c.Y+3, c.W/3, c.H/2.8, 0, ellipseSegs), paint.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(0.7)
	dst.DrawImage(r.clouds, op)
}

func drawPipe(dst *ebiten.Image, o flappy.Obstacle, p flappy.Params) {
	groundY := p.GroundY()
	top, bottom := o.GapTop, o.GapBottom(p)
	capX, capW := o.X-capOverhang, p.PipeWidth+2*capOverhang
	edge := o.X
	span := o.X + p.PipeWidth

	fillGradientRect(dst, o.X, 0, p.PipeWidth, top, paint.Pipe, horizontal)
	vector.StrokeRect(dst, float32(o.X), 0, float32(p.PipeWidth), float32(top), 2, paint.PipeEdge, true)
	topCap := paint.RoundedRect(capX, top-capHeight, capW, capHeight, 4, 4)
	fillGradientShape(dst, topCap, paint.Pipe, horizontal, edge, span)
	strokePolygon(dst, topCap, 2, paint.PipeEdge)

	fillGradientRect(dst, o.X, bottom, p.PipeWidth, groundY-bottom, paint.Pipe, horizontal)
	vector.StrokeRect(dst, float32(o.X), float32(bottom), float32(p.PipeWidth), float32(groundY-bottom), 2, paint.PipeEdge, true)
	bottomCap := paint.RoundedRect(capX, bottom, capW, capHeight, 4, 4)
	fillGradientShape(dst, bottomCap, paint.Pipe, horizontal, edge, span)
	strokePolygon(dst, bottomCap, 2, paint.PipeEdge)

	shine := paint.Fade(paint.White, 0.15)
	if h := top - capHeight; h > 0 {
		vector.DrawFilledRect(dst, float32(o.X+6), 0, 6, float32(h), shine, false)
	}
	if h := groundY - bottom - capHeight; h > 0 {
		vector.DrawFilledRect(dst, float32(o.X+6), float32(bottom+capHeight), 6, float32(h), shine, false)
	}
}

func drawGround(dst *ebiten.Image, v flappy.View) {
	p := v.Params
	groundY := p.GroundY()
	fillGradientRect(dst, 0, groundY, p.Width, grassBand, paint.Grass, vertical)
	fillGradientRect(dst, 0, groundY+grassBand, p.Width, p.GroundHeight-grassBand, paint.Dirt, vertical)
	for _, x := range flappy.GrassTufts(p, v.Scroll) {
		strokePath(dst, []paint.Point{
			{X: x, Y: groundY + 12},
			{X: x + 5, Y: groundY},
			{X: x + 10, Y: groundY + 12},
		}, 2, paint.Tuft)
	}
}

// drawBird paints the sprite unrotated around the center of the offscreen
// image, then places it with the clamped draw rotation.
func (r *Renderer) drawBird(dst *ebiten.Image, v flappy.View) {
	p := v.Params
	img := r.bird
	img.Clear()
	const c = birdCanvas / 2
	at := func(x, y float64) (float64, float64) { return c + x, c + y }

	rx, ry := p.BirdSize/2+2, p.BirdSize/2
	bx, by := at(0, 0)
	body := paint.Ellipse(bx, by, rx, ry, 0, ellipseSegs)
	fillShaded(img, body, func(pt paint.Point) color.NRGBA {
		d := math.Hypot(pt.X-bx, pt.Y-by)
		return paint.At(paint.Body, (d-2)/(p.BirdSize/2-2))
	})
	strokePolygon(img, body, 1.5, paint.BodyEdge)

	ex, ey := at(8, -6)
	eye := paint.Ellipse(ex, ey, 7, 8, 0, ellipseSegs)
	fillPolygon(img, eye, paint.White)
	strokePolygon(img, eye, 1, paint.EyeEdge)
	px, py := at(10, -5)
	vector.DrawFilledCircle(img, float32(px), float32(py), 3.5, paint.Pupil, true)
	hx, hy := at(11, -6.5)
	vector.DrawFilledCircle(img, float32(hx), float32(hy), 1.2, paint.White, true)

	beak := make([]paint.Point, 0, 4)
	for _, pt := range [][2]float64{{14, 0}, {22, -2}, {22, 4}, {14, 4}} {
		x, y := at(pt[0], pt[1])
		beak = append(beak, paint.Point{X: x, Y: y})
	}
	fillPolygon(img, beak, paint.Beak)
	strokePolygon(img, beak, 1, paint.BeakEdge)

	wx, wy := at(-6, 4+flappy.WingOffset(v.Now))
	wing := paint.Ellipse(wx, wy, 10, 5, -0.3, ellipseSegs)
	fillPolygon(img, wing, paint.Wing)
	strokePolygon(img, wing, 1, paint.BodyEdge)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-c, -c)
	op.GeoM.Rotate(v.Bird.DrawRotation(p))
	op.GeoM.Translate(v.Bird.X, v.Bird.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func drawStartScreen(dst *ebiten.Image, v flappy.View) {
	p := v.Params
	vector.DrawFilledRect(dst, 0, 0, float32(p.Width), float32(p.Height), paint.Fade(paint.Black, 0.25), false)
	drawLabel(dst, label{
		Text: "Flappy Bird", X: p.Width / 2, Y: 180, Size: 48, Bold: true,
		Color: paint.Title, Outline: paint.Fade(paint.Black, 0.6), Stroke: 2.5,
	})
	drawLabel(dst, label{
		Text: "Click or press Space to start", X: p.Width / 2, Y: 400, Size: 22,
		Color: paint.White, Outline: paint.Fade(paint.Black, 0.4), Stroke: 1.5,
		Alpha: flappy.PromptAlpha(v.Now),
	})
	if v.Best > 0 {
		drawLabel(dst, label{
			Text: fmt.Sprintf("Best: %d", v.Best), X: p.Width / 2, Y: 440, Size: 16,
			Color: paint.White, Outline: paint.Fade(paint.Black, 0.4), Stroke: 1,
		})
	}
}

func drawGameOverScreen(dst *ebiten.Image, v flappy.View) {
	p := v.Params
	mid := p.Width / 2
	vector.DrawFilledRect(dst, 0, 0, float32(p.Width), float32(p.Height), paint.Fade(paint.Black, 0.4), false)

	const panelW, panelH, panelY = 260, 220, 160
	panelX := (p.Width - panelW) / 2
	shadow := paint.RoundedRect(panelX+4, panelY+6, panelW, panelH, 14, 6)
	fillPolygon(dst, shadow, paint.Fade(paint.Black, 0.3))
	panel := paint.RoundedRect(panelX, panelY, panelW, panelH, 14, 6)
	fillPolygon(dst, panel, paint.Panel)
	strokePolygon(dst, panel, 3, paint.PanelEdge)
	strokePolygon(dst, paint.RoundedRect(panelX+3, panelY+3, panelW-6, panelH-6, 11, 6), 1.5, paint.PanelInner)

	drawLabel(dst, label{
		Text: "Game Over", X: mid, Y: panelY + 45, Size: 32, Bold: true,
		Color: paint.Alert, Outline: paint.Fade(paint.Black, 0.2), Stroke: 1,
	})
	drawLabel(dst, label{Text: "Score", X: mid, Y: panelY + 80, Size: 16, Color: paint.Caption})
	drawLabel(dst, label{Text: fmt.Sprint(v.Score), X: mid, Y: panelY + 122, Size: 40, Bold: true, Color: paint.Value})
	drawLabel(dst, label{Text: fmt.Sprintf("Best: %d", v.Best), X: mid, Y: panelY + 150, Size: 14, Color: paint.Muted})

	const btnW, btnH = 160, 40
	btnX, btnY := (p.Width-btnW)/2, float64(panelY+panelH-55)
	btn := paint.RoundedRect(btnX, btnY, btnW, btnH, 8, 4)
	fillGradientShape(dst, btn, paint.Button, vertical, btnY, btnY+btnH)
	strokePolygon(dst, btn, 2, paint.PipeEdge)
	drawLabel(dst, label{Text: "Play Again", X: mid, Y: btnY + 27, Size: 18, Bold: true, Color: paint.White})
}
