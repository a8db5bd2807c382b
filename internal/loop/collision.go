package loop

import (
	"fmt"
	"math"

	"github.com/tomz197/roadrush/internal/draw"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/object"
	"github.com/tomz197/roadrush/internal/physics"
)

// updateObstacles moves obstacles, resolves hits and scores passes.
// Iterates newest first; a fatal hit ends the run and stops the pass.
func (s *State) updateObstacles(ctx object.UpdateContext) error {
	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		o := s.Obstacles[i]
		remove, err := o.Update(ctx)
		if err != nil {
			return err
		}

		if !o.Hit && physics.InWindow(o.Z, -lc.ObstacleWindow, lc.ObstacleWindow) &&
			physics.Overlap1D(o.X, s.Car.X, lc.ObstacleTolerance) {
			o.Hit = true
			if s.hitObstacle(o) {
				return nil
			}
		}

		if o.Z > 0 && !o.Passed {
			o.Passed = true
			s.passObstacle(o)
		}

		if remove {
			s.Obstacles = append(s.Obstacles[:i], s.Obstacles[i+1:]...)
		}
	}
	return nil
}

// hitObstacle applies a collision. Returns true when the run ended.
func (s *State) hitObstacle(o *object.Obstacle) bool {
	if s.ShieldActive() {
		s.playSound(toneDeflect)
		object.SpawnSparks(o.X, o.Z, lc.SparkCount, s.rng, s.View, s)
		return false
	}
	if o.Kind.Fatal() {
		s.GameOver()
		return true
	}
	switch o.Kind {
	case object.ObstacleOil:
		s.Speed *= lc.OilSpeedFactor
		s.Combo = 0
		s.playSound(toneOil)
		s.Shake = lc.ScreenShakeDuration
	case object.ObstacleRamp:
		s.Score += lc.RampBonus
		s.playSound(toneRamp)
		s.Car.Jump = lc.RampJumpDuration
	}
	return false
}

// passObstacle scores an obstacle that made it behind the car.
func (s *State) passObstacle(o *object.Obstacle) {
	points := int(math.Floor(float64(o.Kind.Points()) * float64(s.Multiplier)))
	s.Score += points
	s.Combo++
	s.MaxCombo = math.Max(s.MaxCombo, s.Combo)
	s.playSound(passTone(s.Combo))
	s.scorePopup(fmt.Sprintf("+%d", points), o.X, draw.Coin)
}

// updatePowerups moves power-ups and collects the ones the car touches.
func (s *State) updatePowerups(ctx object.UpdateContext) error {
	for i := len(s.Powerups) - 1; i >= 0; i-- {
		p := s.Powerups[i]
		remove, err := p.Update(ctx)
		if err != nil {
			return err
		}
		if !p.Collected && physics.InWindow(p.Z, -lc.PowerupWindow, lc.PowerupWindow) &&
			physics.Overlap1D(p.X, s.Car.X, lc.PowerupTolerance) {
			p.Collected = true
			s.collectPowerup(p)
			remove = true
		}
		if remove {
			s.Powerups = append(s.Powerups[:i], s.Powerups[i+1:]...)
		}
	}
	return nil
}

func (s *State) scorePopup(text string, roadX float64, c draw.Color) {
	at := object.Project(roadX, 0, s.View)
	s.Spawn(object.NewPopup(text, at.X, s.View.Height*0.6, lc.ScorePopupLifetime, c))
}
