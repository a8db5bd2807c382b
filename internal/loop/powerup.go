package loop

import (
	"fmt"

	"github.com/tomz197/roadrush/internal/draw"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/object"
)

// collectPowerup applies a collected power-up.
func (s *State) collectPowerup(p *object.Powerup) {
	if p.Kind.Timed() {
		s.activatePowerup(p.Kind)
	}
	switch p.Kind {
	case object.PowerupSpeed:
		s.playSound(toneSpeed)
	case object.PowerupShield:
		s.playSound(toneShield)
	case object.PowerupCoin:
		s.Coins += lc.CoinValue
		s.Score += lc.CoinScore
		s.playSound(toneCoin)
		s.scorePopup(fmt.Sprintf("$+%d", lc.CoinScore), p.X, draw.Coin)
	case object.PowerupMultiplier:
		s.Multiplier = lc.MultiplierValue
		s.playSound(toneMultiplier)
	}
	s.syncCar()
	s.checkAchievements()
}

// activatePowerup starts kind's timer, restarting it if already running.
// Instant kinds have no timer.
func (s *State) activatePowerup(kind object.PowerupKind) {
	if !kind.Timed() {
		return
	}
	for i := range s.Active {
		if s.Active[i].Kind == kind {
			s.Active[i].Left = lc.PowerupDuration
			return
		}
	}
	s.Active = append(s.Active, ActivePowerup{Kind: kind, Left: lc.PowerupDuration})
}

// deactivatePowerup stops kind and clears its effect.
func (s *State) deactivatePowerup(kind object.PowerupKind) {
	kept := s.Active[:0]
	for _, a := range s.Active {
		if a.Kind != kind {
			kept = append(kept, a)
		}
	}
	s.Active = kept
	if kind == object.PowerupMultiplier {
		s.Multiplier = 1
	}
	s.syncCar()
}

// tickPowerups counts down active power-ups in simulation time.
func (s *State) tickPowerups() {
	for i := 0; i < len(s.Active); {
		s.Active[i].Left -= lc.TickTime
		if s.Active[i].Left > 0 {
			i++
			continue
		}
		s.deactivatePowerup(s.Active[i].Kind)
	}
	s.syncCar()
}

// syncCar mirrors the shield state onto the car for drawing.
func (s *State) syncCar() {
	s.Car.Shielded = false
	s.Car.ShieldLeft = 0
	for _, a := range s.Active {
		if a.Kind == object.PowerupShield {
			s.Car.Shielded = true
			s.Car.ShieldLeft = a.Left.Seconds()
		}
	}
}
