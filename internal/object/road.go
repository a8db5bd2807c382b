package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/physics"
)

// Scenery is a roadside prop. Offset is the distance past the road edge
// in road half-widths; Side is -1 for left and 1 for right.
type Scenery struct {
	Z      float64
	Offset float64
	Width  float64
	Height float64
	Side   float64
}

// Cloud drifts across the sky independently of road speed.
type Cloud struct {
	X, Y  float64 // Fractions of the view
	Width float64 // Fraction of the view width
	Speed float64 // View widths per second
}

// Road holds the scrolling road surface and its scenery.
type Road struct {
	Segments  []float64 // Stripe band depths
	Markers   []float64 // Lane dash depths
	Trees     []Scenery
	Buildings []Scenery
	Clouds    []Cloud
}

// NewRoad lays out the road at rest. rng sizes and places the scenery.
func NewRoad(rng *rand.Rand) *Road {
	r := &Road{
		Segments: make([]float64, config.RoadSegmentCount),
		Markers:  make([]float64, config.LaneMarkerCount),
	}
	for i := range r.Segments {
		r.Segments[i] = -float64(i) * config.RoadSegmentSpacing
	}
	for i := range r.Markers {
		r.Markers[i] = -float64(i) * config.LaneMarkerSpacing
	}
	for i := 0; i < config.TreeCount; i++ {
		z := -float64(i)*config.TreeSpacing - config.TreeOffset
		for _, side := range []float64{-1, 1} {
			r.Trees = append(r.Trees, Scenery{
				Z:      z,
				Offset: 0.25 + rng.Float64()*0.4,
				Width:  0.06,
				Height: 0.18 + rng.Float64()*0.06,
				Side:   side,
			})
		}
	}
	for i := 0; i < config.BuildingCount; i++ {
		z := -float64(i)*config.BuildingSpacing - config.BuildingOffset
		for _, side := range []float64{-1, 1} {
			r.Buildings = append(r.Buildings, Scenery{
				Z:      z,
				Offset: 0.9 + rng.Float64()*0.6,
				Width:  0.15 + rng.Float64()*0.2,
				Height: 0.35 + rng.Float64()*0.7,
				Side:   side,
			})
		}
	}
	for i := 0; i < config.CloudCount; i++ {
		r.Clouds = append(r.Clouds, Cloud{
			X:     rng.Float64()*1.5 - 0.25,
			Y:     rng.Float64() * 0.3,
			Width: 0.08 + rng.Float64()*0.08,
			Speed: 0.01 + rng.Float64()*0.02,
		})
	}
	return r
}

// Update scrolls the road by ctx.Speed and wraps everything that passed the camera.
func (r *Road) Update(ctx UpdateContext) (bool, error) {
	m := ctx.Speed
	for i := range r.Segments {
		r.Segments[i] = physics.Wrap(r.Segments[i]+config.RoadSegmentStep*m, config.CullZ, config.RoadSegmentWrap)
	}
	for i := range r.Markers {
		r.Markers[i] = physics.Wrap(r.Markers[i]+config.LaneMarkerStep*m, config.CullZ, config.LaneMarkerWrap)
	}
	treeWrap := float64(config.TreeCount) * config.TreeSpacing
	for i := range r.Trees {
		r.Trees[i].Z = physics.Wrap(r.Trees[i].Z+config.RoadSegmentStep*m, config.CullZ, treeWrap)
	}
	buildingWrap := float64(config.BuildingCount) * config.BuildingSpacing
	for i := range r.Buildings {
		r.Buildings[i].Z = physics.Wrap(r.Buildings[i].Z+config.RoadSegmentStep*m, config.CullZ, buildingWrap)
	}
	dt := ctx.Delta.Seconds()
	for i := range r.Clouds {
		c := &r.Clouds[i]
		c.X += c.Speed * dt
		if c.X > 1.25 {
			c.X = -0.25 - c.Width
		}
	}
	return false, nil
}

// Draw paints sky, mountains, grass, the road surface, lane dashes and scenery.
func (r *Road) Draw(ctx DrawContext) error {
	view := ctx.View
	horizon := Horizon(view)

	ctx.Painter.Fill(0, 0, view.Width, horizon*0.5, draw.SkyHigh)
	ctx.Painter.Fill(0, horizon*0.5, view.Width, horizon*0.5+1, draw.Sky)
	for _, c := range r.Clouds {
		w := c.Width * view.Width
		y := c.Y * horizon
		ctx.Painter.Fill(c.X*view.Width, y, w, 2, draw.Cloud)
		ctx.Painter.Fill(c.X*view.Width+w*0.2, y-1, w*0.5, 1, draw.Cloud)
	}
	r.drawMountains(ctx, horizon)

	// One band per row from the horizon down.
	phase := r.Segments[0]
	for y := math.Floor(horizon) + 1; y < view.Height+1; y++ {
		f, z, ok := depthAtRow(y, view)
		if !ok {
			continue
		}
		band := math.Mod(z-phase, config.RoadSegmentSpacing)
		if band < 0 {
			band += config.RoadSegmentSpacing
		}
		dark := band < config.RoadSegmentSpacing/2

		grass, road, rumble := draw.Grass, draw.Road, draw.Rumble
		if dark {
			grass, road, rumble = draw.GrassDark, draw.RoadDark, draw.RumbleAlt
		}
		half := view.Width * RoadHalfRatio * f
		cx := view.Width / 2
		rumbleW := max(half*0.08, 1)
		ctx.Fill(0, y, view.Width, 1, grass)
		ctx.Fill(cx-half-rumbleW, y, 2*(half+rumbleW), 1, rumble)
		ctx.Fill(cx-half, y, 2*half, 1, road)
	}

	// Dashes sit on the three boundaries between the four lanes.
	for _, mz := range r.Markers {
		near := Project(0, mz, view)
		far := Project(0, mz-config.LaneMarkerSpacing/2, view)
		if !near.OnScreen || mz > 0 {
			continue
		}
		h := max(near.Y-far.Y, 1)
		for _, lx := range []float64{-0.4, 0, 0.4} {
			w := max(near.HalfRoad*0.02, 0.5)
			ctx.Fill(near.X+lx*near.HalfRoad-w/2, far.Y, w, h, draw.LaneMark)
		}
	}

	// Buildings first so trees cover them.
	r.drawScenery(ctx, r.Buildings, draw.Building, draw.TextDim)
	r.drawScenery(ctx, r.Trees, draw.Tree, draw.Trunk)
	return nil
}

func (r *Road) drawMountains(ctx DrawContext, horizon float64) {
	w := ctx.View.Width
	peaks := [...]float64{0.1, 0.3, 0.55, 0.8, 1.0}
	for i, px := range peaks {
		h := horizon * (0.25 + 0.1*float64(i%2))
		pts := [3]draw.Point{
			{X: px*w - w*0.15, Y: horizon},
			{X: px * w, Y: horizon - h},
			{X: px*w + w*0.15, Y: horizon},
		}
		ctx.Painter.Polygon(pts[:], draw.Mountain)
	}
}

func (r *Road) drawScenery(ctx DrawContext, props []Scenery, body, accent draw.Color) {
	for _, s := range props {
		if s.Z > 0 {
			continue
		}
		p := Project(0, s.Z, ctx.View)
		if !p.OnScreen {
			continue
		}
		x := p.X + s.Side*p.HalfRoad*(1+s.Offset)
		w := s.Width * ctx.View.Width * p.Perspect
		h := s.Height * ctx.View.Height * p.Perspect
		if body == draw.Tree {
			ctx.Fill(x-w*0.15, p.Y-h*0.35, w*0.3, h*0.35, accent)
			pts := [3]draw.Point{
				{X: x, Y: p.Y - h},
				{X: x + w/2, Y: p.Y - h*0.3},
				{X: x - w/2, Y: p.Y - h*0.3},
			}
			ctx.Polygon(pts[:], body)
			continue
		}
		ctx.Fill(x-w/2, p.Y-h, w, h, body)
		// A column of lit windows.
		for wy := p.Y - h*0.85; wy < p.Y-h*0.15; wy += max(h*0.2, 2) {
			ctx.Fill(x-w*0.2, wy, w*0.4, 1, accent)
		}
	}
}

// depthAtRow inverts Project for a screen row. Returns the perspective
// factor and depth; ok is false above the horizon.
func depthAtRow(y float64, view Screen) (f, z float64, ok bool) {
	horizon := view.Height * HorizonRatio
	near := view.Height * NearRatio
	f = (y - horizon) / (near - horizon)
	if f <= 0 {
		return 0, 0, false
	}
	z = CameraDistance - CameraDistance/f
	return f, z, true
}

var _ Object = (*Road)(nil)
