// Package track holds the ring geometry and the item boxes placed on it
package track

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/vmath"
)

// ErrInvalidTrack reports track geometry that cannot be raced on
var ErrInvalidTrack = errors.New("invalid track")

// Track is a circular ring of asphalt between Inner and Outer around Center
// The start/finish gate sits at the top of the ring (theta = -π/2)
type Track struct {
	Center        vmath.Vec2
	Inner         float64
	Outer         float64
	GateTolerance float64
}

// New validates geometry and returns a track
func New(center vmath.Vec2, inner, outer, gateTolerance float64) (*Track, error) {
	switch {
	case !(inner > 0) || math.IsInf(inner, 0):
		return nil, fmt.Errorf("%w: inner radius %v must be positive", ErrInvalidTrack, inner)
	case !(outer > inner) || math.IsInf(outer, 0):
		return nil, fmt.Errorf("%w: outer radius %v must exceed inner radius %v", ErrInvalidTrack, outer, inner)
	case !(gateTolerance > 0) || gateTolerance >= math.Pi:
		return nil, fmt.Errorf("%w: gate tolerance %v must be in (0, π)", ErrInvalidTrack, gateTolerance)
	}
	return &Track{
		Center:        center,
		Inner:         inner,
		Outer:         outer,
		GateTolerance: gateTolerance,
	}, nil
}

// Default returns the standard ring
func Default() *Track {
	t, err := New(
		vmath.Vec2{X: constant.TrackCenterX, Y: constant.TrackCenterY},
		constant.TrackInnerRadius,
		constant.TrackOuterRadius,
		constant.GateTolerance,
	)
	if err != nil {
		panic(err)
	}
	return t
}

// MidRadius is the centerline radius karts orbit on
func (t *Track) MidRadius() float64 {
	return (t.Inner + t.Outer) / 2
}

// PositionOnRing converts an angular position to screen coordinates
func (t *Track) PositionOnRing(theta, radius float64) vmath.Vec2 {
	return vmath.Polar(t.Center, theta, radius)
}

// IsOffTrack reports whether p lies on the grass inside or outside the ring
func (t *Track) IsOffTrack(p vmath.Vec2) bool {
	r := vmath.V2Mag(vmath.V2Sub(p, t.Center))
	return r < t.Inner || r > t.Outer
}

// GateOffset is the signed angle from the gate line, positive past it in race direction
func (t *Track) GateOffset(theta float64) float64 {
	return vmath.NormalizeAngle(theta + vmath.HalfPi)
}

// InGate reports whether theta is inside the gate band
func (t *Track) InGate(theta float64) bool {
	return math.Abs(t.GateOffset(theta)) < t.GateTolerance
}

// Progress maps theta to (0, 1] for tie-breaking placement on equal laps
// Grows in race direction, 0.5 on the gate line, wraps at the bottom of the ring
func (t *Track) Progress(theta float64) float64 {
	return (t.GateOffset(theta) + math.Pi) / vmath.TwoPi
}
