// Package audio synthesizes the game's oscillator sound effects and background music.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every streamer in this package is generated at.
const SampleRate = beep.SampleRate(44100)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSawtooth
	WaveNoise
)

// String returns the wave name.
func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	case WaveSawtooth:
		return "sawtooth"
	case WaveNoise:
		return "noise"
	}
	return "unknown"
}

// Tone is a single oscillator blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// DefaultVolume is used when a Tone leaves Volume at zero.
const DefaultVolume = 0.1

// silenceGain is the floor the exponential release ramps towards.
const silenceGain = 0.001

// oscillator renders a Tone with an exponential gain ramp from Volume to silence.
type oscillator struct {
	tone     Tone
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewTone creates a finite streamer for t at the given rate.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	if t.Volume <= 0 {
		t.Volume = DefaultVolume
	}
	return &oscillator{
		tone:  t,
		total: rate.N(t.Duration),
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(t.Freq*1000) + int64(t.Duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}
		val := waveSample(o.tone.Wave, o.phase, o.rng) * o.gain()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.tone.Freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// gain follows v * (floor/v)^(t/d), the shape of an exponential ramp to near silence.
func (o *oscillator) gain() float64 {
	if o.total == 0 {
		return 0
	}
	v := o.tone.Volume
	if v <= silenceGain {
		return v
	}
	progress := float64(o.position) / float64(o.total)
	return v * math.Pow(silenceGain/v, progress)
}

// waveSample returns the value of wave at phase in [0, 1).
func waveSample(w Wave, phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSawtooth:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
