// Package physics provides the 1-D collision checks and easing helpers used by the road simulation.
package physics

import "math"

// Overlap1D reports whether two positions on a single axis are closer than tolerance.
func Overlap1D(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// InWindow reports whether v lies strictly inside (lo, hi).
func InWindow(v, lo, hi float64) bool {
	return v > lo && v < hi
}

// Approach eases x towards target by rate (fraction of the remaining gap).
// When the gap is within snap, target is returned and arrived is true.
func Approach(x, target, rate, snap float64) (next float64, arrived bool) {
	if math.Abs(x-target) > snap {
		return x + (target-x)*rate, false
	}
	return target, true
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap moves v back by period once it passes limit.
func Wrap(v, limit, period float64) float64 {
	if v > limit {
		return v - period
	}
	return v
}

// DepthScale returns the perspective scale for depth z, floored at 0.2.
func DepthScale(z, depth float64) float64 {
	return math.Max(0.2, 1-math.Abs(z)/depth)
}
