package object

import (
	"time"

	"github.com/tomz197/roadrush/internal/draw"
)

// Popup is floating text, such as "+25" over a passed obstacle.
type Popup struct {
	Text  string
	X, Y  float64
	Left  time.Duration
	Color draw.Color
	Rise  float64 // Logical units per second
}

// NewPopup creates a popup centered on x that lasts for life.
func NewPopup(text string, x, y float64, life time.Duration, c draw.Color) *Popup {
	return &Popup{Text: text, X: x, Y: y, Left: life, Color: c, Rise: 8}
}

func (p *Popup) Update(ctx UpdateContext) (bool, error) {
	p.Left -= ctx.Delta
	p.Y -= p.Rise * ctx.Delta.Seconds()
	return p.Left <= 0, nil
}

func (p *Popup) Draw(ctx DrawContext) error {
	x := p.X - float64(len(p.Text))/2
	ctx.Painter.Text(x+ctx.Shake.X, p.Y+ctx.Shake.Y, p.Text, p.Color)
	return nil
}

var _ Object = (*Popup)(nil)
