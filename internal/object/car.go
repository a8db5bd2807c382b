package object

import (
	"time"

	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/physics"
)

// Car is the player's vehicle. X is the normalized road position.
type Car struct {
	X           float64
	CurrentLane int
	TargetLane  int
	Jump        time.Duration // Remaining ramp airtime
	Boosting    bool          // Accelerator held, shows the boost trail
	Shielded    bool
	ShieldLeft  float64 // Seconds of shield remaining (for the expiry blink)
}

// NewCar places a car centered in lane.
func NewCar(lane int) *Car {
	return &Car{X: config.Lanes[lane], CurrentLane: lane, TargetLane: lane}
}

// SteerLeft moves the target lane left. Returns false at the leftmost lane.
func (c *Car) SteerLeft() bool {
	if c.TargetLane <= 0 {
		return false
	}
	c.TargetLane--
	return true
}

// SteerRight moves the target lane right. Returns false at the rightmost lane.
func (c *Car) SteerRight() bool {
	if c.TargetLane >= len(config.Lanes)-1 {
		return false
	}
	c.TargetLane++
	return true
}

// Tilt is the body roll while changing lanes, in degrees.
func (c *Car) Tilt() float64 {
	return (c.X - config.Lanes[c.CurrentLane]) * 15
}

// Update eases the car towards its target lane and ticks the jump timer.
func (c *Car) Update(ctx UpdateContext) (bool, error) {
	var arrived bool
	c.X, arrived = physics.Approach(c.X, config.Lanes[c.TargetLane], config.LaneTransitionSpeed, config.LaneSnapDistance)
	if arrived {
		c.CurrentLane = c.TargetLane
	}
	if c.Jump > 0 {
		c.Jump -= ctx.Delta
		if c.Jump < 0 {
			c.Jump = 0
		}
	}
	return false, nil
}

// Draw paints the car body, windows, lights and any shield or boost effect.
func (c *Car) Draw(ctx DrawContext) error {
	p := Project(c.X, 0, ctx.View)
	w := ctx.View.Width * 0.11
	h := ctx.View.Height * 0.09
	lift := 0.0
	if c.Jump > 0 {
		lift = h * 0.6
	}
	// Lean into the lane change by shifting the roof.
	lean := c.Tilt() * 0.15
	x := p.X - w/2
	y := p.Y - h - lift

	if c.Boosting {
		ctx.Fill(x+w*0.2, y+h, w*0.2, h*0.35, draw.Boost)
		ctx.Fill(x+w*0.6, y+h, w*0.2, h*0.35, draw.Boost)
	}
	ctx.Fill(x, y+h*0.35, w, h*0.65, draw.CarBody)
	ctx.Fill(x+w*0.15+lean, y, w*0.7, h*0.4, draw.CarBody)
	ctx.Fill(x+w*0.22+lean, y+h*0.08, w*0.56, h*0.25, draw.CarWindow)
	ctx.Fill(x+w*0.05, y+h*0.55, w*0.15, h*0.15, draw.CarLight)
	ctx.Fill(x+w*0.8, y+h*0.55, w*0.15, h*0.15, draw.CarLight)

	if c.Shielded && ShouldRenderBlink(c.ShieldLeft, 8) {
		ctx.Fill(x-2, y-2, w+4, 1, draw.Shield)
		ctx.Fill(x-2, y+h+1, w+4, 1, draw.Shield)
		ctx.Fill(x-2, y-2, 1, h+4, draw.Shield)
		ctx.Fill(x+w+1, y-2, 1, h+4, draw.Shield)
	}
	return nil
}

var _ Object = (*Car)(nil)
