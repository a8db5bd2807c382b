package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/physics"
)

// PowerupKind is the type of collectible.
type PowerupKind int

const (
	PowerupSpeed PowerupKind = iota
	PowerupShield
	PowerupCoin
	PowerupMultiplier
)

var powerupWeights = []float64{0.2, 0.15, 0.5, 0.15}

var powerupNames = [...]string{"speed", "shield", "coin", "multiplier"}

var powerupColors = [...]draw.Color{draw.Boost, draw.Shield, draw.Coin, draw.Multiplier}

func (k PowerupKind) String() string {
	if k < 0 || int(k) >= len(powerupNames) {
		return "unknown"
	}
	return powerupNames[k]
}

// Timed reports whether the power-up runs on an activation timer.
func (k PowerupKind) Timed() bool {
	return k != PowerupCoin
}

// Color returns the palette colour used for the collectible and its HUD badge.
func (k PowerupKind) Color() draw.Color {
	if k < 0 || int(k) >= len(powerupColors) {
		return draw.Text
	}
	return powerupColors[k]
}

// RandomPowerupKind picks a kind using the spawn weights.
func RandomPowerupKind(rng *rand.Rand) PowerupKind {
	return PowerupKind(physics.WeightedPick(rng, powerupWeights))
}

// Powerup is a collectible travelling towards the car.
type Powerup struct {
	X         float64
	Z         float64
	Lane      int
	Kind      PowerupKind
	Collected bool
	spin      float64
}

// NewPowerup creates a power-up at the spawn depth in lane.
func NewPowerup(lane int, kind PowerupKind) *Powerup {
	return &Powerup{X: config.Lanes[lane], Z: config.SpawnZ, Lane: lane, Kind: kind}
}

// Update advances the power-up. Collected ones are removed immediately.
func (p *Powerup) Update(ctx UpdateContext) (bool, error) {
	if p.Collected {
		return true, nil
	}
	p.Z += config.ObjectStep * ctx.Speed
	p.spin += ctx.Delta.Seconds() * 4
	return p.Z > config.CullZ, nil
}

// Draw paints a spinning diamond hovering over the lane.
func (p *Powerup) Draw(ctx DrawContext) error {
	if p.Collected {
		return nil
	}
	pr := Project(p.X, p.Z, ctx.View)
	if !pr.OnScreen {
		return nil
	}
	r := max(pr.HalfRoad*0.1, 1)
	// Horizontal radius pulses to fake rotation.
	rx := r * (0.4 + 0.6*math.Abs(math.Cos(p.spin)))
	cy := pr.Y - r*2.5
	pts := [4]draw.Point{
		{X: pr.X, Y: cy - r},
		{X: pr.X + rx, Y: cy},
		{X: pr.X, Y: cy + r},
		{X: pr.X - rx, Y: cy},
	}
	ctx.Polygon(pts[:], p.Kind.Color())
	return nil
}

var _ Object = (*Powerup)(nil)
