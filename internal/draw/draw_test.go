package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasFillRectScales(t *testing.T) {
	c := NewScaledCanvas(10, 5, 20, 20)

	c.FillRect(0, 0, 10, 10, Road)

	// 20x20 logical onto 10x10 sub-pixels: a quarter of the area.
	assert.Equal(t, Road, c.pixels[0])
	assert.Equal(t, Road, c.pixels[4*10+4])
	assert.Equal(t, None, c.pixels[5*10+5])
}

func TestCanvasFillRectClipsOutOfBounds(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	assert.NotPanics(t, func() {
		c.FillRect(-10, -10, 100, 100, Grass)
	})
	for _, p := range c.pixels {
		assert.Equal(t, Grass, p)
	}
}

func TestCanvasRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(0, 0, 4, 4, Road)

	var first bytes.Buffer
	c.Render(&first)
	assert.Equal(t, 8, strings.Count(first.String(), string(BlockFull)))

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String(), "unchanged frame emits nothing")

	c.Clear()
	c.FillRect(0, 0, 4, 4, Road)
	c.SetFloat(0, 0, LaneMark)
	var third bytes.Buffer
	c.Render(&third)
	assert.Equal(t, 1, strings.Count(third.String(), string(BlockUpperHalf)))

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	assert.Equal(t, 7, strings.Count(fourth.String(), string(BlockFull)))
}

func TestCanvasRenderUsesPaletteColours(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetFloat(0, 0, Cone)
	c.SetFloat(0, 1, Road)

	var out bytes.Buffer
	c.Render(&out)

	assert.Contains(t, out.String(), "38;5;208m")
	assert.Contains(t, out.String(), "48;5;240m")
	assert.Contains(t, out.String(), string(BlockUpperHalf))
}

func TestCanvasPolygonFill(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Grass)
	for i, p := range c.pixels {
		require.Equal(t, Grass, p, "pixel %d", i)
	}
}

func TestCanvasLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(120, 40, 120, 80)
	col, row := c.LogicalToTerminal(0, 0)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)

	col, row = c.LogicalToTerminal(60, 40)
	assert.Equal(t, 61, col)
	assert.Equal(t, 21, row)
}

func TestRenderBorderOnlyWithOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var none bytes.Buffer
	c.RenderBorder(&none)
	assert.Empty(t, none.String())

	c.SetOffset(2, 2)
	var framed bytes.Buffer
	c.RenderBorder(&framed)
	assert.Contains(t, framed.String(), "┌────┐")
	assert.Contains(t, framed.String(), "└────┘")
}

type writeCounter struct {
	writes []int
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, len(p))
	return len(p), nil
}

func TestOutputFlushSendsPackets(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, 2, 3)
	o.Print(1, 1, "hi", None)
	o.Print(5, 2, "GO", Text)

	require.NoError(t, o.Flush())
	assert.True(t, strings.HasPrefix(out.String(), "\033[4;3Hhi"))
	assert.Contains(t, out.String(), "\033[5;7H\033[0;1;38;5;231mGO\033[0m")

	out.Reset()
	require.NoError(t, o.Flush())
	assert.Empty(t, out.String(), "flushed frames are not resent")

	w := &writeCounter{}
	o = NewOutput(w, 0, 0)
	_, _ = o.Write([]byte(strings.Repeat("x", packetSize*2+10)))
	require.NoError(t, o.Flush())
	assert.Equal(t, []int{packetSize, packetSize, 10}, w.writes)
}

func TestScreenControl(t *testing.T) {
	var out bytes.Buffer
	EnterScreen(&out)
	assert.Contains(t, out.String(), "\033[?25l")
	out.Reset()
	LeaveScreen(&out)
	assert.True(t, strings.HasSuffix(out.String(), "\033[?25h"))
}

func TestFrameTextOverlayInvalidatesCells(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, 0, 0)
	c := NewScaledCanvas(20, 5, 20, 10)
	f := NewFrame(c, o, lipgloss.NewRenderer(&out))

	f.Fill(0, 0, 20, 10, Road)
	f.Text(2, 2, "SCORE", Text)
	f.Flush()
	require.NoError(t, o.Flush())
	assert.Contains(t, out.String(), "SCORE")

	// Second identical frame: only the cells under the text are repainted.
	out.Reset()
	f.Fill(0, 0, 20, 10, Road)
	f.Flush()
	require.NoError(t, o.Flush())
	assert.Equal(t, 5, strings.Count(out.String(), string(BlockFull)))
}

func TestFrameTextIsClipped(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, 0, 0)
	c := NewScaledCanvas(10, 5, 10, 10)
	f := NewFrame(c, o, lipgloss.NewRenderer(&out))

	f.Text(6, 0, "ABCDEFGHIJ", Text)
	f.Flush()
	require.NoError(t, o.Flush())
	assert.Contains(t, out.String(), "ABCD")
	assert.NotContains(t, out.String(), "ABCDE")
}

func TestRenderPanel(t *testing.T) {
	lines := RenderPanel(lipgloss.NewRenderer(&bytes.Buffer{}), "GAME OVER", []string{"Score: 120", "Press SPACE"}, ComboMax)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "GAME OVER")
	assert.Contains(t, joined, "Score: 120")
	assert.Contains(t, joined, "╭")
	width := lipgloss.Width(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l))
	}
}

func TestPaletteLookups(t *testing.T) {
	assert.Equal(t, uint8(208), Cone.ANSI())
	assert.Equal(t, Text.ANSI(), Color(250).ANSI(), "out of range falls back to text")
	assert.Equal(t, uint8(255), Rumble.RGBA().R)
}
