package loop

import (
	"math"

	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/input"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/object"
	"github.com/tomz197/roadrush/internal/physics"
)

// particleRate is the per-tick chance of a speed line at each quality.
var particleRate = map[string]float64{
	config.QualityHigh:   0.4,
	config.QualityMedium: 0.2,
	config.QualityLow:    0.1,
}

// Step advances a running game by one fixed tick. It does nothing outside
// GameStatePlaying.
func (s *State) Step(in input.Input) error {
	if s.GameState != GameStatePlaying {
		return nil
	}
	s.Ticks++
	dt := lc.TickTime.Seconds()
	s.Distance += s.Speed * dt

	s.applyInput(in)
	ctx := s.UpdateContext()
	if _, err := s.Car.Update(ctx); err != nil {
		return err
	}
	if _, err := s.Road.Update(ctx); err != nil {
		return err
	}

	s.spawnObstacle()
	s.spawnPowerup()

	if err := s.updateObstacles(ctx); err != nil {
		return err
	}
	if s.GameState != GameStatePlaying {
		return nil
	}
	if err := s.updatePowerups(ctx); err != nil {
		return err
	}
	s.tickPowerups()

	s.spawnParticles()
	if err := s.updateEffects(ctx); err != nil {
		return err
	}
	s.tickTimers()
	s.checkAchievements()
	s.decayCombo()
	s.raiseDifficulty()
	return nil
}

// Animate keeps effects and timers moving on the menus and the game over
// screen, where Step does nothing.
func (s *State) Animate() error {
	if s.GameState == GameStatePlaying {
		return nil
	}
	ctx := s.UpdateContext()
	ctx.Speed = 0
	if err := s.updateEffects(ctx); err != nil {
		return err
	}
	s.tickTimers()
	return nil
}

// applyInput handles speed control and lane taps.
func (s *State) applyInput(in input.Input) {
	switch {
	case in.Accelerate:
		limit := s.MaxSpeed
		if s.BoostActive() {
			limit *= lc.BoostSpeedModifier
		}
		s.Speed = math.Min(limit, s.Speed+lc.Acceleration)
	case in.Brake:
		s.Speed = math.Max(lc.MinSpeed, s.Speed-lc.Deceleration*2)
	case s.Speed > lc.CruiseSpeed:
		s.Speed = math.Max(lc.CruiseSpeed, s.Speed-lc.Deceleration*0.5)
	}
	s.Car.Boosting = in.Accelerate

	for i := 0; i < in.LeftTaps; i++ {
		if s.Car.SteerLeft() {
			s.playSound(toneLane)
		}
	}
	for i := 0; i < in.RightTaps; i++ {
		if s.Car.SteerRight() {
			s.playSound(toneLane)
		}
	}
}

func (s *State) spawnObstacle() {
	rate := lc.ObstacleSpawnBase + s.Speed*lc.ObstacleSpawnPerKmh
	if !physics.Chance(s.rng, rate) {
		return
	}
	lane := s.rng.Intn(len(lc.Lanes))
	s.Obstacles = append(s.Obstacles, object.NewObstacle(lane, object.RandomObstacleKind(s.rng)))
}

func (s *State) spawnPowerup() {
	rate := lc.PowerupSpawnBase + s.Distance*lc.PowerupSpawnPerMetre
	if !physics.Chance(s.rng, rate) {
		return
	}
	lane := s.rng.Intn(len(lc.Lanes))
	s.Powerups = append(s.Powerups, object.NewPowerup(lane, object.RandomPowerupKind(s.rng)))
}

// spawnParticles adds speed lines and exhaust.
func (s *State) spawnParticles() {
	rate, ok := particleRate[s.Settings.ParticleQuality]
	if !ok {
		rate = particleRate[config.QualityMedium]
	}
	if s.Speed > lc.SpeedParticleMin && physics.Chance(s.rng, rate) {
		object.SpawnSpeedLine(s.rng, s.View, s)
	}
	if physics.Chance(s.rng, lc.ExhaustRate) {
		car := object.Project(s.Car.X, 0, s.View)
		object.SpawnExhaust(car.X, s.rng, s.View, s)
	}
}

// updateEffects updates particles and popups and drops finished ones.
func (s *State) updateEffects(ctx object.UpdateContext) error {
	kept := s.Effects[:0] // reuse backing array
	for _, e := range s.Effects {
		remove, err := e.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(s.Effects[len(kept):])
	s.Effects = kept
	s.FlushSpawned()
	return nil
}

// tickTimers counts down the screen effects and the achievement banner.
func (s *State) tickTimers() {
	s.Shake = max(s.Shake-lc.TickTime, 0)
	s.Explosion = max(s.Explosion-lc.TickTime, 0)
	if s.Popup != nil {
		s.Popup.Left -= lc.TickTime
		if s.Popup.Left <= 0 {
			s.Popup = nil
		}
	}
}

// decayCombo drains the combo while no obstacle is ahead of the car.
func (s *State) decayCombo() {
	if s.Combo <= 0 {
		return
	}
	for _, o := range s.Obstacles {
		if o.Z <= lc.ComboDecayHorizon {
			return
		}
	}
	s.Combo = math.Max(0, s.Combo-lc.ComboDecay)
}

// raiseDifficulty bumps the speed cap once per 1000 m milestone.
func (s *State) raiseDifficulty() {
	m := int(s.Distance / lc.DifficultyDistance)
	if m <= s.milestone {
		return
	}
	s.milestone = m
	s.MaxSpeed = math.Min(lc.MaxSpeedCap, s.MaxSpeed+lc.MaxSpeedStep)
}
