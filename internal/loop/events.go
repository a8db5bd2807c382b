package loop

import (
	"time"

	"github.com/tomz197/roadrush/internal/audio"
)

// EventKind identifies the type of Event.
type EventKind int

const (
	EventSound EventKind = iota
	EventMusicStart
	EventMusicStop
	EventAchievement
	EventGameOver
)

// Event is something the front-end should react to: a sound cue, a music
// change, an unlocked achievement or the end of a run.
type Event struct {
	Kind        EventKind
	Tone        audio.Tone  // EventSound
	Achievement Achievement // EventAchievement
	Summary     Summary     // EventGameOver
}

func tone(freq float64, d time.Duration, w audio.Wave, volume float64) audio.Tone {
	return audio.Tone{Freq: freq, Duration: d, Wave: w, Volume: volume}
}

var (
	toneLane        = tone(600, 100*time.Millisecond, audio.WaveSine, audio.DefaultVolume)
	toneCrash       = tone(150, time.Second, audio.WaveSawtooth, 0.3)
	toneOil         = tone(200, 800*time.Millisecond, audio.WaveNoise, 0.2)
	toneRamp        = tone(400, 500*time.Millisecond, audio.WaveTriangle, 0.15)
	toneDeflect     = tone(800, 300*time.Millisecond, audio.WaveSquare, 0.2)
	toneSpeed       = tone(1000, 300*time.Millisecond, audio.WaveSine, 0.15)
	toneShield      = tone(600, 400*time.Millisecond, audio.WaveTriangle, 0.15)
	toneCoin        = tone(800, 200*time.Millisecond, audio.WaveSine, audio.DefaultVolume)
	toneMultiplier  = tone(1200, 300*time.Millisecond, audio.WaveSine, 0.15)
	toneAchievement = tone(1200, 500*time.Millisecond, audio.WaveSine, 0.2)
)

// passTone rises with the combo.
func passTone(combo float64) audio.Tone {
	return tone(900+combo*50, 150*time.Millisecond, audio.WaveSine, audio.DefaultVolume)
}

func (s *State) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *State) playSound(t audio.Tone) {
	s.emit(Event{Kind: EventSound, Tone: t})
}

// DrainEvents returns the queued events and clears the queue.
func (s *State) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Dispatch plays the audio side of events on sink, honouring settings.
// Non-audio events are ignored.
func Dispatch(sink audio.Sink, events []Event, settings Settings) {
	for _, e := range events {
		switch e.Kind {
		case EventSound:
			if settings.SoundEnabled {
				sink.Play(e.Tone)
			}
		case EventAchievement:
			if settings.SoundEnabled {
				sink.Play(toneAchievement)
			}
		case EventMusicStart:
			if settings.MusicEnabled {
				sink.StartMusic()
			}
		case EventMusicStop:
			sink.StopMusic()
		}
	}
}
