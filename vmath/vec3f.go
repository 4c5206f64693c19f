package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for entity positions and per-frame displacement
// World axes: +X right, +Y up, +Z toward the viewer
type Vec3F struct {
	X, Y, Z float64
}

// Axis unit vectors
var (
	V3FUp    = Vec3F{0, 1, 0}
	V3FDown  = Vec3F{0, -1, 0}
	V3FLeft  = Vec3F{-1, 0, 0}
	V3FRight = Vec3F{1, 0, 0}
)

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

// V3FIsZero reports exact zero on all axes
func V3FIsZero(v Vec3F) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// V3FRound returns the nearest integer cell for X and Y
// Used by renderers to map world space onto a character grid
func V3FRound(v Vec3F) (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
