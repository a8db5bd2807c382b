// Package object holds the road world's entities and the perspective projection they are drawn with.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/roadrush/internal/draw"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration // Fixed tick length
	Speed   float64       // Road speed multiplier (speed / 60)
	Rand    *rand.Rand
	Spawner Spawner
	View    Screen
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Painter draw.Painter
	View    Screen
	Shake   draw.Point // Screen-shake offset applied to world drawing
}

// Screen represents logical view dimensions.
type Screen struct {
	Width  float64
	Height float64
}

// Fill paints a rectangle shifted by the context's shake offset.
func (ctx DrawContext) Fill(x, y, w, h float64, c draw.Color) {
	ctx.Painter.Fill(x+ctx.Shake.X, y+ctx.Shake.Y, w, h, c)
}

// Polygon paints a filled polygon shifted by the context's shake offset.
// The points slice is modified in place.
func (ctx DrawContext) Polygon(points []draw.Point, c draw.Color) {
	for i := range points {
		points[i].X += ctx.Shake.X
		points[i].Y += ctx.Shake.Y
	}
	ctx.Painter.Polygon(points, c)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw paints the object.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ShouldRenderBlink returns true if an object with remainingTime left on a timer
// should be rendered this frame. Blinks only during the final second.
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 || remainingTime > 1 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
