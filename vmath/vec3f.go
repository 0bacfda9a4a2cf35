package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in particle-space
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FFinite reports whether every component is neither NaN nor infinite
func V3FFinite(v Vec3F) bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// Vec2F is a float64 2D vector, used for pointer and screen positions
type Vec2F struct {
	X, Y float64
}
