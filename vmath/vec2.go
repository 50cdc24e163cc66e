package vmath

import "math"

// Vec2 is a float64 2D point or displacement in screen space (y grows down)
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// DistSq returns squared distance, used for radius tests without sqrt
func DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// Polar returns the point at angle theta and distance radius from center
func Polar(center Vec2, theta, radius float64) Vec2 {
	return Vec2{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y + radius*math.Sin(theta),
	}
}
