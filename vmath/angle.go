package vmath

import "math"

const (
	Pi    = math.Pi
	TwoPi = 2 * math.Pi
	// HalfPi is the track top, where the start/finish gate sits
	HalfPi = math.Pi / 2
)

// NormalizeAngle maps a to its equivalent in (-π, π]
// Far out-of-range inputs reduce in one step instead of looping
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	if a > -Pi && a <= Pi {
		return a
	}
	a = math.Mod(a, TwoPi)
	// Mod keeps the sign of a, result is in (-2π, 2π)
	if a <= -Pi {
		a += TwoPi
	} else if a > Pi {
		a -= TwoPi
	}
	return a
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
