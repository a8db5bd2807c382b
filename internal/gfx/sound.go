//go:build ebiten

package gfx

import (
	"fmt"
	"sync"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/roadrush/internal/audio"
)

// maxToneLength bounds how much of a tone is rendered up front.
const maxToneLength = 2 * time.Second

// Sound is an audio.Sink backed by ebiten's audio context. Tones are rendered
// to PCM once and replayed from memory.
type Sound struct {
	mu     sync.Mutex
	ctx    *eaudio.Context
	master float64
	cache  map[audio.Tone][]byte
	music  *eaudio.Player
}

// NewSound creates the audio context at the given master volume (1 = unity).
func NewSound(master float64) *Sound {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(int(audio.SampleRate))
	}
	return &Sound{ctx: ctx, master: master, cache: make(map[audio.Tone][]byte)}
}

func (s *Sound) Play(t audio.Tone) {
	s.mu.Lock()
	pcm, ok := s.cache[t]
	if !ok {
		pcm = audio.EncodePCM(audio.NewTone(t, audio.SampleRate), audio.SampleRate.N(maxToneLength))
		s.cache[t] = pcm
	}
	s.mu.Unlock()

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.master)
	p.Play()
}

func (s *Sound) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		p, err := s.ctx.NewPlayer(audio.NewReader(audio.NewMusic(audio.SampleRate)))
		if err != nil {
			return
		}
		p.SetVolume(s.master)
		s.music = p
	}
	s.music.Play()
}

func (s *Sound) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music != nil {
		s.music.Pause()
	}
}

func (s *Sound) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return nil
	}
	err := s.music.Close()
	s.music = nil
	if err != nil {
		return fmt.Errorf("close music: %w", err)
	}
	return nil
}

var _ audio.Sink = (*Sound)(nil)
