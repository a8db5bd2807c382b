package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/roadrush/internal/config"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active run
	GameStateGameOver                  // Crashed, final stats shown
	GameStateSettings                  // Settings menu, reached from the title screen
)

func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game over"
	case GameStateSettings:
		return "settings"
	}
	return "unknown"
}

// Settings are the player's toggles. They survive restarts.
type Settings struct {
	SoundEnabled    bool
	MusicEnabled    bool
	ParticleQuality string // config.QualityLow, QualityMedium or QualityHigh
}

// DefaultSettings enables everything at medium quality.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, MusicEnabled: true, ParticleQuality: config.QualityMedium}
}

// SettingsFromOptions maps command-line options onto Settings.
func SettingsFromOptions(o *config.Options) Settings {
	return Settings{SoundEnabled: o.Sound, MusicEnabled: o.Music, ParticleQuality: o.Quality}
}

// ActivePowerup is a running timed power-up.
type ActivePowerup struct {
	Kind object.PowerupKind
	Left time.Duration
}

// AchievementPopup is the banner shown after an unlock.
type AchievementPopup struct {
	Achievement Achievement
	Left        time.Duration
}

// State holds everything about one player's game. It is not safe for
// concurrent use; each front-end owns its State.
type State struct {
	GameState GameState
	Settings  Settings

	Score      int
	Distance   float64 // Metres
	Speed      float64 // km/h
	MaxSpeed   float64
	Coins      int
	Combo      float64 // Decays towards 0 when nothing is ahead
	MaxCombo   float64
	Multiplier int

	Car       *object.Car
	Road      *object.Road
	Obstacles []*object.Obstacle
	Powerups  []*object.Powerup
	Effects   []object.Object // Particles and popups
	toSpawn   []object.Object // Effects to add after the current update pass

	Active       []ActivePowerup
	Achievements []Achievement
	Popup        *AchievementPopup

	Shake     time.Duration // Screen shake remaining
	Explosion time.Duration // Explosion flash remaining

	Ticks     uint64
	milestone int // Last 1000 m milestone that raised MaxSpeed
	final     Summary
	events    []Event
	rng       *rand.Rand
	View      object.Screen
}

// NewState creates a game on the title screen.
func NewState(settings Settings, seed int64) *State {
	rng := rand.New(rand.NewSource(seed))
	return &State{
		GameState:    GameStateStart,
		Settings:     settings,
		Speed:        lc.StartSpeed,
		MaxSpeed:     lc.InitialMaxSpeed,
		Multiplier:   1,
		Car:          object.NewCar(lc.StartLane),
		Road:         object.NewRoad(rng),
		Achievements: NewAchievements(),
		rng:          rng,
		View:         object.Screen{Width: lc.ViewWidth, Height: lc.ViewHeight},
	}
}

// Spawn queues an effect to be added after the current update pass.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued effects and clears the queue.
func (s *State) FlushSpawned() {
	s.Effects = append(s.Effects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext for the current tick.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   lc.TickTime,
		Speed:   s.Speed / lc.SpeedReference,
		Rand:    s.rng,
		Spawner: s,
		View:    s.View,
	}
}

// PowerupActive reports whether a timed power-up of kind is running.
func (s *State) PowerupActive(kind object.PowerupKind) bool {
	for _, a := range s.Active {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// ShieldActive reports whether the shield is up.
func (s *State) ShieldActive() bool { return s.PowerupActive(object.PowerupShield) }

// BoostActive reports whether the speed power-up is running.
func (s *State) BoostActive() bool { return s.PowerupActive(object.PowerupSpeed) }

// StartGame resets the run and switches to playing. Achievements are kept.
func (s *State) StartGame() {
	s.GameState = GameStatePlaying
	s.Score = 0
	s.Distance = 0
	s.Speed = lc.StartSpeed
	s.Coins = 0
	s.Combo = 0
	s.MaxCombo = 0
	s.Multiplier = 1
	s.Car = object.NewCar(lc.StartLane)
	s.Car.X = lc.CarStartX // eases into the start lane over the first ticks
	s.Obstacles = s.Obstacles[:0]
	s.Powerups = s.Powerups[:0]
	for _, e := range s.Effects {
		object.ReleaseObject(e)
	}
	s.Effects = s.Effects[:0]
	s.toSpawn = s.toSpawn[:0]
	s.Active = s.Active[:0]
	s.Popup = nil
	s.Shake = 0
	s.Explosion = 0
	s.milestone = 0
	s.final = Summary{}
	s.emit(Event{Kind: EventMusicStart})
}

// RestartGame starts a fresh run from the game over screen.
func (s *State) RestartGame() {
	s.StartGame()
}

// ShowSettings opens the settings menu from the title screen.
func (s *State) ShowSettings() {
	if s.GameState == GameStateStart {
		s.GameState = GameStateSettings
	}
}

// HideSettings returns to the title screen.
func (s *State) HideSettings() {
	if s.GameState == GameStateSettings {
		s.GameState = GameStateStart
	}
}

// ToggleSound flips sound effects on or off.
func (s *State) ToggleSound() {
	s.Settings.SoundEnabled = !s.Settings.SoundEnabled
}

// ToggleMusic flips background music. Turning it off mid-run stops the track.
func (s *State) ToggleMusic() {
	s.Settings.MusicEnabled = !s.Settings.MusicEnabled
	switch {
	case !s.Settings.MusicEnabled:
		s.emit(Event{Kind: EventMusicStop})
	case s.GameState == GameStatePlaying:
		s.emit(Event{Kind: EventMusicStart})
	}
}

// CycleQuality steps particle quality low, medium, high and back.
func (s *State) CycleQuality() {
	switch s.Settings.ParticleQuality {
	case config.QualityLow:
		s.Settings.ParticleQuality = config.QualityMedium
	case config.QualityMedium:
		s.Settings.ParticleQuality = config.QualityHigh
	default:
		s.Settings.ParticleQuality = config.QualityLow
	}
}

// GameOver ends the run: explosion, shake, crash sound and final stats.
func (s *State) GameOver() {
	s.GameState = GameStateGameOver
	s.Car.Boosting = false
	s.Car.Shielded = false
	s.Shake = lc.ScreenShakeDuration
	s.Explosion = lc.ExplosionDuration
	car := object.Project(s.Car.X, 0, s.View)
	object.SpawnExplosion(car.X, car.Y-3, 24, s.rng, s.View, s)
	s.FlushSpawned()
	s.final = s.Summary()
	s.emit(Event{Kind: EventMusicStop})
	s.emit(Event{Kind: EventSound, Tone: toneCrash})
	s.emit(Event{Kind: EventGameOver, Summary: s.final})
}

// FinalSummary returns the stats captured when the last run ended.
func (s *State) FinalSummary() Summary {
	return s.final
}
