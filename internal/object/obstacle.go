package object

import (
	"math/rand"

	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/physics"
)

// ObstacleKind is the type of road obstacle.
type ObstacleKind int

const (
	ObstacleCar ObstacleKind = iota
	ObstacleTruck
	ObstacleCone
	ObstacleMotorcycle
	ObstacleBarrier
	ObstacleOil
	ObstacleRamp
)

// obstacleWeights are the spawn weights, indexed by ObstacleKind.
var obstacleWeights = []float64{0.25, 0.15, 0.2, 0.15, 0.1, 0.1, 0.05}

var obstacleNames = [...]string{"car", "truck", "cone", "motorcycle", "barrier", "oil", "ramp"}

// obstaclePoints is the score for passing each kind.
var obstaclePoints = [...]int{25, 35, 10, 20, 30, 15, 40}

// String returns the obstacle name.
func (k ObstacleKind) String() string {
	if k < 0 || int(k) >= len(obstacleNames) {
		return "unknown"
	}
	return obstacleNames[k]
}

// Points returns the base score for passing an obstacle of this kind.
// Unknown kinds are worth 10.
func (k ObstacleKind) Points() int {
	if k < 0 || int(k) >= len(obstaclePoints) {
		return 10
	}
	return obstaclePoints[k]
}

// Fatal reports whether hitting this kind ends the run.
func (k ObstacleKind) Fatal() bool {
	return k != ObstacleOil && k != ObstacleRamp
}

// RandomObstacleKind picks a kind using the spawn weights.
func RandomObstacleKind(rng *rand.Rand) ObstacleKind {
	return ObstacleKind(physics.WeightedPick(rng, obstacleWeights))
}

// Obstacle is a hazard travelling towards the car along its lane.
type Obstacle struct {
	X      float64
	Z      float64
	Lane   int
	Kind   ObstacleKind
	Passed bool // Already scored
	Hit    bool // Already affected the car (hit, slid on or deflected)
}

// NewObstacle creates an obstacle at the spawn depth in lane.
func NewObstacle(lane int, kind ObstacleKind) *Obstacle {
	return &Obstacle{X: config.Lanes[lane], Z: config.SpawnZ, Lane: lane, Kind: kind}
}

// Update advances the obstacle. Returns true once it is past the camera.
func (o *Obstacle) Update(ctx UpdateContext) (bool, error) {
	o.Z += config.ObjectStep * ctx.Speed
	return o.Z > config.CullZ, nil
}

// Draw paints the obstacle scaled by depth.
func (o *Obstacle) Draw(ctx DrawContext) error {
	p := Project(o.X, o.Z, ctx.View)
	if !p.OnScreen {
		return nil
	}
	lane := max(p.HalfRoad*0.4, 2*p.Scale) // One lane's width at this depth
	switch o.Kind {
	case ObstacleCar:
		w, h := lane*0.7, lane*0.45
		ctx.Fill(p.X-w/2, p.Y-h, w, h, draw.Traffic)
		ctx.Fill(p.X-w*0.3, p.Y-h*1.35, w*0.6, h*0.4, draw.CarWindow)
	case ObstacleTruck:
		w, h := lane*0.8, lane*0.8
		ctx.Fill(p.X-w/2, p.Y-h, w, h, draw.Truck)
		ctx.Fill(p.X-w*0.35, p.Y-h*0.95, w*0.7, h*0.2, draw.CarWindow)
	case ObstacleCone:
		w, h := lane*0.25, lane*0.35
		pts := [3]draw.Point{{X: p.X, Y: p.Y - h}, {X: p.X + w/2, Y: p.Y}, {X: p.X - w/2, Y: p.Y}}
		ctx.Polygon(pts[:], draw.Cone)
	case ObstacleMotorcycle:
		w, h := lane*0.2, lane*0.5
		ctx.Fill(p.X-w/2, p.Y-h, w, h, draw.Motorcycle)
	case ObstacleBarrier:
		w, h := lane*0.9, lane*0.3
		ctx.Fill(p.X-w/2, p.Y-h, w, h, draw.Barrier)
		ctx.Fill(p.X-w/2, p.Y-h*0.6, w, h*0.25, draw.Rumble)
	case ObstacleOil:
		w, h := lane*0.7, max(lane*0.12, 1)
		ctx.Fill(p.X-w/2, p.Y-h, w, h, draw.Oil)
	case ObstacleRamp:
		w, h := lane*0.8, lane*0.3
		pts := [4]draw.Point{
			{X: p.X - w/2, Y: p.Y - h*0.2},
			{X: p.X + w/2, Y: p.Y - h},
			{X: p.X + w/2, Y: p.Y},
			{X: p.X - w/2, Y: p.Y},
		}
		ctx.Polygon(pts[:], draw.Ramp)
	}
	return nil
}

var _ Object = (*Obstacle)(nil)
