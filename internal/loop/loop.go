// Package loop holds one player's game: state, the fixed-tick simulation
// step, the events it emits and the scene it draws.
package loop

import (
	"time"

	"github.com/tomz197/roadrush/internal/input"
)

// Update routes one tick of input by game state: menu keys on the title,
// settings and game over screens, Step while playing.
func (s *State) Update(in input.Input) error {
	switch s.GameState {
	case GameStateStart:
		switch {
		case in.Confirm():
			s.StartGame()
		case in.Options:
			s.ShowSettings()
		}
	case GameStateSettings:
		switch in.Number {
		case 1:
			s.ToggleSound()
		case 2:
			s.ToggleMusic()
		case 3:
			s.CycleQuality()
		}
		if in.Escape || in.Enter || in.Options {
			s.HideSettings()
		}
	case GameStateGameOver:
		if in.Confirm() {
			s.RestartGame()
		}
	case GameStatePlaying:
		return s.Step(in)
	}
	return s.Animate()
}

// Clock converts wall time into a whole number of fixed simulation ticks.
type Clock struct {
	Interval time.Duration
	acc      time.Duration
	maxSteps int
}

// NewClock ticks tps times per second. At most maxSteps ticks are released
// per Advance so a stalled frame can't trigger a catch-up spiral.
func NewClock(tps, maxSteps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Clock{Interval: time.Second / time.Duration(tps), maxSteps: maxSteps}
}

// Advance adds elapsed wall time and returns how many ticks to run.
func (c *Clock) Advance(elapsed time.Duration) int {
	c.acc += elapsed
	n := int(c.acc / c.Interval)
	if n > c.maxSteps {
		n = c.maxSteps
		c.acc = 0
		return n
	}
	c.acc -= time.Duration(n) * c.Interval
	return n
}
