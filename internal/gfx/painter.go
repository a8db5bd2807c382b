//go:build ebiten

package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/roadrush/internal/draw"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type textOp struct {
	x, y float64
	s    string
	c    draw.Color
}

type panelOp struct {
	title  string
	lines  []string
	accent draw.Color
}

// Painter draws onto an ebiten screen. Like the terminal Frame, text and the
// last panel are drawn over the shapes when the frame ends.
type Painter struct {
	screen   *ebiten.Image
	view     View
	texts    []textOp
	panel    *panelOp
	scratch  *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewPainter() *Painter {
	return &Painter{scratch: ebiten.NewImage(512, glyphHeight)}
}

// Begin starts a frame on screen.
func (p *Painter) Begin(screen *ebiten.Image) {
	b := screen.Bounds()
	p.screen = screen
	p.view = Fit(b.Dx(), b.Dy())
	p.texts = p.texts[:0]
	p.panel = nil
	screen.Fill(color.Black)
}

func (p *Painter) Fill(x, y, w, h float64, c draw.Color) {
	px, py := p.view.Point(x, y)
	pw, ph := p.view.Size(w, h)
	vector.DrawFilledRect(p.screen, px, py, pw, ph, c.RGBA(), false)
}

func (p *Painter) Polygon(points []draw.Point, c draw.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	for i, pt := range points {
		x, y := p.view.Point(pt.X, pt.Y)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	rgba := c.RGBA()
	for i := range p.vertices {
		p.vertices[i].SrcX = 1
		p.vertices[i].SrcY = 1
		p.vertices[i].ColorR = float32(rgba.R) / 0xff
		p.vertices[i].ColorG = float32(rgba.G) / 0xff
		p.vertices[i].ColorB = float32(rgba.B) / 0xff
		p.vertices[i].ColorA = float32(rgba.A) / 0xff
	}
	p.screen.DrawTriangles(p.vertices, p.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (p *Painter) Text(x, y float64, s string, c draw.Color) {
	p.texts = append(p.texts, textOp{x: x, y: y, s: s, c: c})
}

func (p *Painter) Panel(title string, lines []string, accent draw.Color) {
	p.panel = &panelOp{title: title, lines: lines, accent: accent}
}

// End draws the queued text and panel.
func (p *Painter) End() {
	for _, t := range p.texts {
		x, y := p.view.Point(t.x, t.y)
		p.print(t.s, int(x), int(y), t.c)
	}
	if p.panel == nil {
		return
	}
	b := p.screen.Bounds()
	l := layoutPanel(p.panel.title, p.panel.lines, b.Dx(), b.Dy())
	accent := p.panel.accent.RGBA()
	vector.DrawFilledRect(p.screen, float32(l.X), float32(l.Y), float32(l.W), float32(l.H), color.RGBA{A: 0xe0}, false)
	vector.StrokeRect(p.screen, float32(l.X), float32(l.Y), float32(l.W), float32(l.H), 2, accent, false)
	for _, r := range l.Rows {
		c := draw.Text
		if r.Title {
			c = p.panel.accent
		}
		p.print(r.Text, r.X, r.Y, c)
	}
}

// print draws tinted debug-font text. ebitenutil only prints white, so the
// string goes through a scratch image and is tinted on the way to the screen.
func (p *Painter) print(s string, x, y int, c draw.Color) {
	if s == "" {
		return
	}
	w := min(len([]rune(s))*glyphWidth, p.scratch.Bounds().Dx())
	p.scratch.Clear()
	ebitenutil.DebugPrintAt(p.scratch, s, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.RGBA())
	p.screen.DrawImage(p.scratch.SubImage(image.Rect(0, 0, w, glyphHeight)).(*ebiten.Image), op)
}

var _ draw.Painter = (*Painter)(nil)
