package draw

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Painter is the drawing surface entities and screens render onto.
// Coordinates are logical (see config.ViewWidth/ViewHeight); implementations scale.
type Painter interface {
	Fill(x, y, w, h float64, c Color)
	Polygon(points []Point, c Color)
	Text(x, y float64, s string, c Color)
	Panel(title string, lines []string, accent Color)
}

type textItem struct {
	x, y float64
	s    string
	c    Color
}

type panelItem struct {
	title  string
	lines  []string
	accent Color
}

// Frame is the terminal Painter: shapes go to the Canvas, text and panels are
// queued and written over the rendered canvas on Flush.
type Frame struct {
	canvas *Canvas
	out    *Output
	styles *lipgloss.Renderer
	texts  []textItem
	panel  *panelItem
}

// NewFrame creates a Frame drawing onto canvas and writing to out.
// styles renders menu panels; pass one bound to the session's output.
func NewFrame(canvas *Canvas, out *Output, styles *lipgloss.Renderer) *Frame {
	return &Frame{canvas: canvas, out: out, styles: styles}
}

func (f *Frame) Fill(x, y, w, h float64, c Color) {
	f.canvas.FillRect(x, y, w, h, c)
}

func (f *Frame) Polygon(points []Point, c Color) {
	f.canvas.DrawPolygon(points, c)
}

func (f *Frame) Text(x, y float64, s string, c Color) {
	f.texts = append(f.texts, textItem{x: x, y: y, s: s, c: c})
}

func (f *Frame) Panel(title string, lines []string, accent Color) {
	f.panel = &panelItem{title: title, lines: lines, accent: accent}
}

// Flush renders the canvas, then the queued text and panel, into the Output.
func (f *Frame) Flush() {
	f.canvas.Render(f.out)

	termWidth := f.canvas.TerminalWidth()
	for _, t := range f.texts {
		col, row := f.canvas.LogicalToTerminal(t.x, t.y)
		s := clip(t.s, termWidth-col+1)
		if s == "" || col < 1 {
			continue
		}
		f.out.Print(col, row, s, t.c)
		f.canvas.Invalidate(col, row, lipgloss.Width(s))
	}
	f.texts = f.texts[:0]

	if f.panel != nil {
		f.writePanel(*f.panel)
		f.panel = nil
	}
}

func (f *Frame) writePanel(p panelItem) {
	lines := RenderPanel(f.styles, p.title, p.lines, p.accent)
	height := len(lines)
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	top := (f.canvas.TerminalHeight()-height)/2 + 1
	left := (f.canvas.TerminalWidth()-width)/2 + 1
	if left < 1 {
		left = 1
	}
	for i, l := range lines {
		f.out.Print(left, top+i, l+"\033[0m", None)
		f.canvas.Invalidate(left, top+i, lipgloss.Width(l))
	}
}

// RenderPanel lays out a bordered, centered menu panel and returns its lines.
func RenderPanel(r *lipgloss.Renderer, title string, lines []string, accent Color) []string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	accentColor := lipgloss.Color(strconv.Itoa(int(accent.ANSI())))
	titleStyle := r.NewStyle().Bold(true).Foreground(accentColor)
	bodyStyle := r.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(Text.ANSI()))))
	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Background(lipgloss.Color("0")).
		Padding(1, 3).
		Align(lipgloss.Center)

	body := make([]string, 0, len(lines)+2)
	if title != "" {
		body = append(body, titleStyle.Render(title), "")
	}
	for _, l := range lines {
		body = append(body, bodyStyle.Render(l))
	}
	return strings.Split(box.Render(lipgloss.JoinVertical(lipgloss.Center, body...)), "\n")
}

// clip shortens s to at most width display cells.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

var _ Painter = (*Frame)(nil)
