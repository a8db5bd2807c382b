// Package gfx is the windowed front-end. It draws the game with ebiten and
// plays its sounds through ebiten's audio context.
//
// Everything touching ebiten sits behind the ebiten build tag; the layout
// math in this file builds everywhere.
package gfx

import (
	"github.com/tomz197/roadrush/internal/loop/config"
)

// Debug font cell size in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// View letterboxes the logical viewport into a window.
type View struct {
	Scale float64
	OffX  float64
	OffY  float64
}

// Fit returns the largest View that shows the whole viewport in a w by h window.
func Fit(w, h int) View {
	s := min(float64(w)/config.ViewWidth, float64(h)/config.ViewHeight)
	if s <= 0 {
		s = 1
	}
	return View{
		Scale: s,
		OffX:  (float64(w) - s*config.ViewWidth) / 2,
		OffY:  (float64(h) - s*config.ViewHeight) / 2,
	}
}

// Point converts logical coordinates to window pixels.
func (v View) Point(x, y float64) (float32, float32) {
	return float32(v.OffX + x*v.Scale), float32(v.OffY + y*v.Scale)
}

// Size converts a logical extent to pixels.
func (v View) Size(w, h float64) (float32, float32) {
	return float32(w * v.Scale), float32(h * v.Scale)
}

type panelRow struct {
	X, Y  int
	Text  string
	Title bool
}

// panelLayout is a centered menu box in window pixels.
type panelLayout struct {
	X, Y, W, H int
	Rows       []panelRow
}

const panelPadding = 16

// layoutPanel centers title and lines in a w by h window.
func layoutPanel(title string, lines []string, w, h int) panelLayout {
	rows := make([]string, 0, len(lines)+2)
	if title != "" {
		rows = append(rows, title, "")
	}
	rows = append(rows, lines...)

	widest := 0
	for _, r := range rows {
		widest = max(widest, len([]rune(r)))
	}
	p := panelLayout{
		W: widest*glyphWidth + 2*panelPadding,
		H: len(rows)*glyphHeight + 2*panelPadding,
	}
	p.X = (w - p.W) / 2
	p.Y = (h - p.H) / 2
	for i, r := range rows {
		p.Rows = append(p.Rows, panelRow{
			X:     p.X + (p.W-len([]rune(r))*glyphWidth)/2,
			Y:     p.Y + panelPadding + i*glyphHeight,
			Text:  r,
			Title: title != "" && i == 0,
		})
	}
	return p
}
