package config

import (
	"flag"
	"fmt"
	"time"
)

// Particle quality levels accepted by Options.Quality.
const (
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"
)

// Options holds the run-time knobs shared by every front-end.
type Options struct {
	Seed    int64  // RNG seed; 0 picks one from the clock
	TPS     int    // Simulation ticks per second
	Sound   bool   // Sound effects enabled
	Music   bool   // Background music enabled
	Quality string // Particle quality: low, medium, high
	LogFile string // Optional log destination for front-ends that own stdout
}

// NewOptions returns Options populated from ROADRUSH_* environment variables,
// falling back to sensible defaults.
func NewOptions() *Options {
	return &Options{
		Seed:    GetEnvInt("ROADRUSH_SEED", 0),
		TPS:     int(GetEnvInt("ROADRUSH_TPS", 60)),
		Sound:   GetEnvBool("ROADRUSH_SOUND", true),
		Music:   GetEnvBool("ROADRUSH_MUSIC", true),
		Quality: GetEnv("ROADRUSH_QUALITY", QualityMedium),
		LogFile: GetEnv("ROADRUSH_LOG", ""),
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for obstacle and power-up spawning (0 = random)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "simulation ticks per second")
	fs.BoolVar(&o.Sound, "sound", o.Sound, "enable sound effects")
	fs.BoolVar(&o.Music, "music", o.Music, "enable background music")
	fs.StringVar(&o.Quality, "quality", o.Quality, "particle quality: low, medium or high")
	fs.StringVar(&o.LogFile, "log", o.LogFile, "write logs to this file")
}

// Validate reports the first invalid option.
func (o *Options) Validate() error {
	switch o.Quality {
	case QualityLow, QualityMedium, QualityHigh:
	default:
		return fmt.Errorf("invalid particle quality %q", o.Quality)
	}
	if o.TPS < 10 || o.TPS > 240 {
		return fmt.Errorf("tps %d out of range [10, 240]", o.TPS)
	}
	return nil
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is zero.
func (o *Options) ResolvedSeed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}
