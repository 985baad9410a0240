package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/paint"
)

// whitePixel is the source texture for DrawTriangles; vertex colors do the
// actual shading.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

var face = text.NewGoXFace(basicfont.Face7x13)

func vertex(p paint.Point, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

// fillShaded fills a convex polygon as a triangle fan around its centroid,
// coloring each vertex with shade.
func fillShaded(dst *ebiten.Image, pts []paint.Point, shade func(paint.Point) color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c := paint.Centroid(pts)
	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(c, shade(c)))
	for _, p := range pts {
		vs = append(vs, vertex(p, shade(p)))
	}
	is := make([]uint16, 0, 3*len(pts))
	for i := range pts {
		is = append(is, 0, uint16(i+1), uint16((i+1)%len(pts)+1))
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func fillPolygon(dst *ebiten.Image, pts []paint.Point, c color.NRGBA) {
	fillShaded(dst, pts, func(paint.Point) color.NRGBA { return c })
}

func strokePolygon(dst *ebiten.Image, pts []paint.Point, width float32, c color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, c, true)
	}
}

func strokePath(dst *ebiten.Image, pts []paint.Point, width float32, c color.Color) {
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, c, true)
	}
}

// vertical and horizontal pick which axis a linear gradient runs along.
const (
	vertical = iota
	horizontal
)

// fillGradientRect fills a rectangle with a linear gradient along one axis.
// Each pair of neighboring stops becomes its own quad so the stops stay
// exact.
func fillGradientRect(dst *ebiten.Image, x, y, w, h float64, stops []paint.Stop, axis int) {
	if w <= 0 || h <= 0 || len(stops) == 0 {
		return
	}
	if len(stops) == 1 {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), stops[0].Color, false)
		return
	}
	vs := make([]ebiten.Vertex, 0, 4*(len(stops)-1))
	is := make([]uint16, 0, 6*(len(stops)-1))
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		var quad [4]paint.Point
		if axis == vertical {
			y0, y1 := y+h*lo.At, y+h*hi.At
			quad = [4]paint.Point{{X: x, Y: y0}, {X: x + w, Y: y0}, {X: x + w, Y: y1}, {X: x, Y: y1}}
		} else {
			x0, x1 := x+w*lo.At, x+w*hi.At
			quad = [4]paint.Point{{X: x0, Y: y}, {X: x1, Y: y}, {X: x1, Y: y + h}, {X: x0, Y: y + h}}
		}
		base := uint16(len(vs))
		if axis == vertical {
			vs = append(vs, vertex(quad[0], lo.Color), vertex(quad[1], lo.Color), vertex(quad[2], hi.Color), vertex(quad[3], hi.Color))
		} else {
			vs = append(vs, vertex(quad[0], lo.Color), vertex(quad[1], hi.Color), vertex(quad[2], hi.Color), vertex(quad[3], lo.Color))
		}
		is = append(is, base, base+1, base+2, base, base+2, base+3)
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{})
}

// fillGradientShape fills a convex outline with a linear gradient spanning
// [from, to] along one axis.
func fillGradientShape(dst *ebiten.Image, pts []paint.Point, stops []paint.Stop, axis int, from, to float64) {
	fillShaded(dst, pts, func(p paint.Point) color.NRGBA {
		v := p.Y
		if axis == horizontal {
			v = p.X
		}
		return paint.At(stops, (v-from)/(to-from))
	})
}

// label describes one line of canvas text. Y is the baseline.
type label struct {
	Text    string
	X, Y    float64
	Size    float64 // Target glyph height in pixels
	Bold    bool
	Color   color.Color
	Outline color.Color // Optional
	Stroke  float64     // Outline reach in pixels
	Alpha   float64     // Zero means opaque
}

func drawLabel(dst *ebiten.Image, l label) {
	if l.Outline != nil && l.Stroke > 0 {
		for a := 0.0; a < 2*math.Pi; a += math.Pi / 4 {
			drawGlyphs(dst, l, l.X+math.Cos(a)*l.Stroke, l.Y+math.Sin(a)*l.Stroke, l.Outline)
		}
	}
	drawGlyphs(dst, l, l.X, l.Y, l.Color)
}

func drawGlyphs(dst *ebiten.Image, l label, x, y float64, c color.Color) {
	scale := l.Size / float64(basicfont.Face7x13.Height)
	passes := 1
	if l.Bold {
		passes = 2
	}
	for i := 0; i < passes; i++ {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+float64(i)*scale/2, y)
		op.ColorScale.ScaleWithColor(c)
		if l.Alpha > 0 {
			op.ColorScale.ScaleAlpha(float32(l.Alpha))
		}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignEnd
		text.Draw(dst, l.Text, face, op)
	}
}
