package vmath

import "math"

// Lerp moves current toward target by factor t, first-order exponential smoothing when called per tick
func Lerp(current, target, t float64) float64 {
	return current + (target-current)*t
}

// Clamp limits v to [lo, hi]; NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// WrapToroidal teleports v to the opposite extreme when it leaves [-bound, bound]
// Values inside the range are returned unchanged
func WrapToroidal(v, bound float64) float64 {
	if v > bound {
		return -bound
	}
	if v < -bound {
		return bound
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
