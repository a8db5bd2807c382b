// Package draw renders the game to ANSI terminals.
package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// packetSize caps each write so a frame leaves an SSH session in a few
// MTU-sized packets instead of one burst.
const packetSize = 1400

// Output collects one frame (canvas cells, overlay text, panels) and sends
// it in packetSize pieces on Flush. Cursor positions are 1-based canvas
// coordinates shifted by the centering offset.
type Output struct {
	frame  strings.Builder
	w      *bufio.Writer
	num    [20]byte
	offCol int
	offRow int
}

// NewOutput creates an Output writing to w with the canvas offset applied.
func NewOutput(w io.Writer, offsetCol, offsetRow int) *Output {
	return &Output{
		w:      bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset follows the canvas after a resize.
func (o *Output) SetOffset(offsetCol, offsetRow int) {
	o.offCol = offsetCol
	o.offRow = offsetRow
}

// Write queues raw bytes; Canvas.Render writes through it.
func (o *Output) Write(p []byte) (int, error) {
	return o.frame.Write(p)
}

// Clear queues a full terminal clear ahead of the rest of the frame.
func (o *Output) Clear() {
	o.frame.WriteString("\033[0m\033[H\033[2J")
}

// Print queues s at a canvas cell. A zero colour leaves s as styled by the caller.
func (o *Output) Print(col, row int, s string, c Color) {
	o.frame.WriteString("\033[")
	o.frame.Write(strconv.AppendInt(o.num[:0], int64(row+o.offRow), 10))
	o.frame.WriteByte(';')
	o.frame.Write(strconv.AppendInt(o.num[:0], int64(col+o.offCol), 10))
	o.frame.WriteByte('H')
	if c == None {
		o.frame.WriteString(s)
		return
	}
	o.frame.WriteString("\033[0;1;38;5;")
	o.frame.Write(strconv.AppendInt(o.num[:0], int64(c.ANSI()), 10))
	o.frame.WriteByte('m')
	o.frame.WriteString(s)
	o.frame.WriteString("\033[0m")
}

// Flush sends the queued frame and starts a new one.
func (o *Output) Flush() error {
	data := o.frame.String()
	o.frame.Reset()
	for len(data) > 0 {
		n := min(len(data), packetSize)
		if _, err := o.w.WriteString(data[:n]); err != nil {
			return err
		}
		if err := o.w.Flush(); err != nil {
			return err
		}
		data = data[n:]
	}
	return o.w.Flush()
}

var _ io.Writer = (*Output)(nil)

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// EnterScreen hides the cursor and clears the terminal for the game.
func EnterScreen(w io.Writer) {
	_, _ = io.WriteString(w, "\033[?25l\033[0m\033[H\033[2J")
}

// ClearScreen wipes the terminal, e.g. after a resize moved the canvas.
func ClearScreen(w io.Writer) {
	_, _ = io.WriteString(w, "\033[0m\033[H\033[2J")
}

// LeaveScreen restores attributes and the cursor on an empty terminal.
func LeaveScreen(w io.Writer) {
	_, _ = io.WriteString(w, "\033[0m\033[H\033[2J\033[?25h")
}
