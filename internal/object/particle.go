package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/roadrush/internal/draw"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle life is 1 at spawn and the particle is removed once it reaches 0.
// Positions and velocities are in logical view units per tick.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Decay  float64 // Life lost per tick
	Damp   float64 // Vertical velocity factor per tick (1.0 = none)
	Size   float64
	Color  draw.Color
	Fade   bool // Skip drawing in the last quarter of life
}

// Per-tick life loss for each effect.
const (
	ParticleDecay = 0.02
	SparkDecay    = 0.05
)

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, c draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Life:  1,
		Decay: ParticleDecay,
		Damp:  1,
		Size:  1,
		Color: c,
		Fade:  true,
	}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// pixelScale converts the browser-sized velocities the effects were tuned with
// into logical view units.
func pixelScale(view Screen) float64 {
	return view.Height / 600
}

// SpawnSpeedLine drops a streak from the top edge at a random column.
func SpawnSpeedLine(rng *rand.Rand, view Screen, spawner Spawner) {
	if spawner == nil {
		return
	}
	s := pixelScale(view)
	p := NewParticle(
		rng.Float64()*view.Width,
		0,
		(rng.Float64()-0.5)*2*s,
		(3+rng.Float64()*4)*s*3,
		draw.SpeedLine,
	)
	spawner.Spawn(p)
}

// SpawnExhaust puffs smoke behind the car at column x.
func SpawnExhaust(x float64, rng *rand.Rand, view Screen, spawner Spawner) {
	if spawner == nil {
		return
	}
	s := pixelScale(view)
	car := Project(0, 0, view)
	p := NewParticle(
		x+(rng.Float64()-0.5)*view.Width*0.03,
		car.Y-1,
		(rng.Float64()-0.5)*2*s,
		(1+rng.Float64()*3)*s,
		draw.Exhaust,
	)
	p.Damp = 0.98
	spawner.Spawn(p)
}

// SpawnSparks bursts count sparks at a road position, used when the shield deflects a hit.
func SpawnSparks(roadX, z float64, count int, rng *rand.Rand, view Screen, spawner Spawner) {
	if spawner == nil {
		return
	}
	s := pixelScale(view) * 3
	at := Project(roadX, z, view)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		v := (2 + rng.Float64()*3) * s
		p := NewParticle(at.X, at.Y-2, math.Cos(angle)*v, math.Sin(angle)*v, draw.Spark)
		p.Decay = SparkDecay
		p.Fade = false
		spawner.Spawn(p)
	}
}

// SpawnExplosion creates particles in a circular burst pattern at a view position.
func SpawnExplosion(x, y float64, count int, rng *rand.Rand, view Screen, spawner Spawner) {
	if spawner == nil {
		return
	}
	s := pixelScale(view) * 4
	colors := [...]draw.Color{draw.Explosion, draw.Cone, draw.Spark, draw.Exhaust}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		v := s * (0.5 + rng.Float64())
		p := NewParticle(x, y, math.Cos(angle)*v, math.Sin(angle)*v, colors[rng.Intn(len(colors))])
		p.Size = 1 + float64(rng.Intn(2))
		spawner.Spawn(p)
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	p.Life -= p.Decay
	if p.Life <= 0 {
		return true, nil
	}
	p.X += p.VX
	p.Y += p.VY
	p.VY *= p.Damp
	if p.Y > ctx.View.Height+p.Size || p.X < -p.Size || p.X > ctx.View.Width+p.Size {
		return true, nil
	}
	return false, nil
}

// Draw renders the particle as a small block.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.Fade && p.Life < 0.25 {
		return nil
	}
	ctx.Fill(p.X, p.Y, p.Size, p.Size, p.Color)
	return nil
}

var _ Releasable = (*Particle)(nil)
