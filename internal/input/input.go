// Package input turns a raw terminal byte stream into per-frame driving input.
package input

import (
	"bufio"
	"time"
)

// holdDuration is how long accelerate/brake count as held after their last byte.
// Terminals only repeat held keys, so the window has to bridge the autorepeat gap.
const holdDuration = 150 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit       bool
	LeftTaps   int  // Lane-left presses seen this frame
	RightTaps  int  // Lane-right presses seen this frame
	Accelerate bool // Held
	Brake      bool // Held
	Space      bool
	Enter      bool
	Escape     bool
	Options    bool
	Number     int // Digit pressed this frame, or -1
	Pressed    []byte
	Closed     bool // Underlying reader reached EOF
}

// Confirm reports whether the frame carries a start/continue press.
func (in Input) Confirm() bool {
	return in.Space || in.Enter
}

// keyState tracks the last time each held key was pressed, and the start of
// an escape sequence the previous read cut off.
type keyState struct {
	accelerate time.Time
	brake      time.Time
	pending    []byte
}

// Stream delivers input bytes via a channel and tracks held key state.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets held keys and discards buffered bytes, so a key held
// on a menu does not leak into the next run.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				return
			}
		default:
			return
		}
	}
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Parse(buf, &s.state, now)
	in.Closed = s.closed
	return in
}

// maxPending bounds a carried escape sequence; longer ones are not keys we know.
const maxPending = 16

// Parse decodes buf into an Input, updating held-key timestamps in state.
// An escape sequence cut off at the end of buf is kept in state and completed
// by the next call. A lone ESC counts as Escape once the next call shows
// nothing followed it.
func Parse(buf []byte, state *keyState, now time.Time) Input {
	in := Input{Number: -1, Pressed: buf}

	data := buf
	if len(state.pending) > 0 {
		data = append(state.pending, buf...)
		if len(buf) == 0 && len(state.pending) == 1 {
			in.Escape = true
			data = nil
		}
		state.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b == '\x1b' {
			n, complete := csiLength(data[i:])
			switch {
			case !complete && len(buf) > 0 && len(data)-i <= maxPending:
				state.pending = append([]byte(nil), data[i:]...)
				i = len(data)
				continue
			case !complete:
				// Nothing more arrived; drop the fragment.
				i = len(data)
				continue
			case n > 1:
				applyArrow(&in, state, data[i+n-1], now)
				i += n - 1
				continue
			}
		}

		switch b {
		case 'q', 'Q':
			in.Quit = true
		case 'a', 'A', 'h', 'H':
			in.LeftTaps++
		case 'd', 'D', 'l', 'L':
			in.RightTaps++
		case 'w', 'W', 'k', 'K':
			state.accelerate = now
		case 's', 'S', 'j', 'J':
			state.brake = now
		case 'o', 'O':
			in.Options = true
		case ' ':
			in.Space = true
		case '\n', '\r':
			in.Enter = true
		case '\x1b':
			in.Escape = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			in.Number = int(b - '0')
		}
	}

	in.Accelerate = now.Sub(state.accelerate) < holdDuration
	in.Brake = now.Sub(state.brake) < holdDuration
	return in
}

// csiLength measures the escape sequence at the start of b, which begins
// with ESC. It returns 1 for a bare ESC followed by an ordinary byte, the
// full length of an ESC [ params final sequence, and complete=false when b
// ends before the sequence does.
func csiLength(b []byte) (n int, complete bool) {
	if len(b) < 2 {
		return 1, false
	}
	if b[1] != '[' {
		return 1, true
	}
	for i := 2; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= '0' && c <= '9', c == ';':
		case c >= 0x40 && c <= 0x7e:
			return i + 1, true
		default:
			// Malformed; treat ESC as bare and reparse the rest.
			return 1, true
		}
	}
	return len(b), false
}

// applyArrow maps a CSI final byte to driving input. Modifier parameters
// (ESC [ 1 ; 5 C) are ignored; other finals are swallowed.
func applyArrow(in *Input, state *keyState, final byte, now time.Time) {
	switch final {
	case 'A':
		state.accelerate = now
	case 'B':
		state.brake = now
	case 'C':
		in.RightTaps++
	case 'D':
		in.LeftTaps++
	}
}
