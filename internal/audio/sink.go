package audio

import (
	"io"
	"sync"
)

// Sink plays tones and controls the music loop.
type Sink interface {
	Play(t Tone)
	StartMusic()
	StopMusic()
	Close() error
}

// Nop discards all audio.
type Nop struct{}

func (Nop) Play(Tone)    {}
func (Nop) StartMusic()  {}
func (Nop) StopMusic()   {}
func (Nop) Close() error { return nil }

// BellThreshold is the minimum tone volume that rings the terminal bell.
const BellThreshold = 0.2

// Bell rings the terminal bell for loud tones. Used where the player's sound
// card is out of reach, e.g. over SSH. Music is not representable and ignored.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a Bell writing BEL bytes to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play(t Tone) {
	if t.Volume < BellThreshold {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

func (b *Bell) StartMusic()  {}
func (b *Bell) StopMusic()   {}
func (b *Bell) Close() error { return nil }

var (
	_ Sink = Nop{}
	_ Sink = (*Bell)(nil)
	_ Sink = (*Speaker)(nil)
)
