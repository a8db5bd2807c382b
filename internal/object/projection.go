package object

import (
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/physics"
)

// Perspective layout, as fractions of the view.
const (
	HorizonRatio   = 0.36 // Horizon row
	NearRatio      = 0.86 // Row where z = 0 (the car) sits
	RoadHalfRatio  = 0.42 // Half road width at z = 0
	CameraDistance = 400.0
	nearClipZ      = 250.0
)

// Projection is where a world point lands on screen.
type Projection struct {
	X, Y     float64 // Logical screen position
	HalfRoad float64 // Half road width at this depth
	Scale    float64 // Object size scale, max(0.2, 1 - |z|/1200)
	Perspect float64 // Raw perspective factor (1 at z = 0)
	OnScreen bool
}

// Project maps normalized road x and depth z onto the view.
func Project(x, z float64, view Screen) Projection {
	if z > nearClipZ {
		z = nearClipZ
	}
	f := CameraDistance / (CameraDistance - z)
	horizon := view.Height * HorizonRatio
	near := view.Height * NearRatio
	halfRoad := view.Width * RoadHalfRatio * f
	p := Projection{
		X:        view.Width/2 + x*halfRoad,
		Y:        horizon + (near-horizon)*f,
		HalfRoad: halfRoad,
		Scale:    physics.DepthScale(z, config.DepthMax),
		Perspect: f,
	}
	p.OnScreen = p.Y >= horizon && p.Y <= view.Height+10
	return p
}

// Horizon returns the horizon row of view.
func Horizon(view Screen) float64 {
	return view.Height * HorizonRatio
}
