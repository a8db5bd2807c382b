package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Melody is the background loop, one note every NoteLength.
var Melody = []float64{220, 247, 262, 294, 330, 349, 392}

const (
	NoteLength  = 800 * time.Millisecond
	MusicVolume = 0.02
)

// music is an endless sine voice stepping through Melody.
// Phase is continuous across note changes so there are no clicks.
type music struct {
	rate      beep.SampleRate
	phase     float64
	position  int
	perNote   int
	noteIndex int
}

// NewMusic returns an endless streamer playing Melody.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &music{rate: rate, perNote: rate.N(NoteLength)}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := Melody[m.noteIndex]
		val := MusicVolume * math.Sin(2*math.Pi*m.phase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
		if m.position >= m.perNote {
			m.position = 0
			m.noteIndex = (m.noteIndex + 1) % len(Melody)
		}
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }
