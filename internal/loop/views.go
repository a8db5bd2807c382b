package loop

import (
	"math"

	"github.com/tomz197/roadrush/internal/object"
	"github.com/tomz197/roadrush/internal/physics"
)

// MiniMapDot is an obstacle on the mini-map. Row is 0 at the far end and
// grows towards the car.
type MiniMapDot struct {
	Lane int
	Row  float64
	Kind object.ObstacleKind
}

// MiniMap is the overhead view: car position and upcoming obstacles, both on 0..1.
type MiniMap struct {
	CarX float64
	Dots []MiniMapDot
}

// MiniMap returns the current overhead view.
func (s *State) MiniMap() MiniMap {
	m := MiniMap{CarX: 0.5 + s.Car.X*0.4}
	for _, o := range s.Obstacles {
		m.Dots = append(m.Dots, MiniMapDot{Lane: o.Lane, Row: miniMapRow(o.Z), Kind: o.Kind})
	}
	return m
}

// miniMapRow maps depth onto a 140 px tall map, clamped to its 10..130 interior.
func miniMapRow(z float64) float64 {
	return physics.Clamp(10+(z+200)/10, 10, 130) / 140
}

// HUDPowerup is an active power-up badge.
type HUDPowerup struct {
	Kind    object.PowerupKind
	Seconds float64 // Remaining
}

// HUD is the in-run readout.
type HUD struct {
	Score      int
	Speed      int // km/h, floored
	Distance   int // m, floored
	Combo      float64
	Coins      int
	Multiplier int
	Powerups   []HUDPowerup
}

// HUD returns the current in-run readout.
func (s *State) HUD() HUD {
	h := HUD{
		Score:      s.Score,
		Speed:      int(math.Floor(s.Speed)),
		Distance:   int(math.Floor(s.Distance)),
		Combo:      s.Combo,
		Coins:      s.Coins,
		Multiplier: s.Multiplier,
	}
	for _, a := range s.Active {
		h.Powerups = append(h.Powerups, HUDPowerup{Kind: a.Kind, Seconds: a.Left.Seconds()})
	}
	return h
}

// Summary is the end-of-run stats.
type Summary struct {
	Score     int
	Distance  int
	BestCombo int
	Coins     int
}

// Summary returns the stats of the current run.
func (s *State) Summary() Summary {
	return Summary{
		Score:     s.Score,
		Distance:  int(math.Floor(s.Distance)),
		BestCombo: int(math.Floor(s.MaxCombo)),
		Coins:     s.Coins,
	}
}
