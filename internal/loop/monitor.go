package loop

import (
	"time"

	"github.com/tomz197/roadrush/internal/config"
	lc "github.com/tomz197/roadrush/internal/loop/config"
)

// PerfMonitor samples the frame rate once a second and drops particle
// quality to low when the front-end keeps falling behind.
type PerfMonitor struct {
	frames  int
	elapsed time.Duration
	strikes int
	FPS     float64 // Last sample
}

// Frame records one rendered frame that took d. When a sample completes it
// returns true if it was slow and quality should be forced to low.
func (m *PerfMonitor) Frame(d time.Duration) bool {
	m.frames++
	m.elapsed += d
	if m.elapsed < time.Second {
		return false
	}
	m.FPS = float64(m.frames) / m.elapsed.Seconds()
	m.frames = 0
	m.elapsed = 0
	if m.FPS >= lc.LowFPSThreshold {
		if m.strikes > 0 {
			m.strikes--
		}
		return false
	}
	m.strikes++
	return m.strikes > lc.LowFPSStrikes
}

// Apply records a frame and lowers s's particle quality if needed.
func (m *PerfMonitor) Apply(s *State, d time.Duration) {
	if m.Frame(d) && s.Settings.ParticleQuality != config.QualityLow {
		s.Settings.ParticleQuality = config.QualityLow
	}
}
