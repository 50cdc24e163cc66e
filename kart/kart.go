// Package kart implements per-kart motion on the ring: throttle, steering,
// friction, turbo and lap-gate detection
package kart

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

// ErrInvalidTuning reports kart constants that would break the motion model
var ErrInvalidTuning = errors.New("invalid kart tuning")

// Tuning holds per-kart physics constants
type Tuning struct {
	Accel       float64 // px/s²
	MaxSpeed    float64 // px/s
	SteerRate   float64 // rad/s at top speed
	Friction    float64 // per 1/60 s on asphalt
	OffFriction float64 // per 1/60 s on grass
}

// DefaultTuning returns the standard kart
func DefaultTuning() Tuning {
	return Tuning{
		Accel:       constant.KartAccel,
		MaxSpeed:    constant.KartMaxSpeed,
		SteerRate:   constant.KartSteerRate,
		Friction:    constant.KartFriction,
		OffFriction: constant.KartOffFriction,
	}
}

// Validate rejects tuning that cannot drive the model
func (t Tuning) Validate() error {
	switch {
	case !(t.Accel > 0):
		return fmt.Errorf("%w: accel %v must be positive", ErrInvalidTuning, t.Accel)
	case !(t.MaxSpeed > 0) || math.IsInf(t.MaxSpeed, 0):
		return fmt.Errorf("%w: max speed %v must be positive", ErrInvalidTuning, t.MaxSpeed)
	case !(t.SteerRate >= 0):
		return fmt.Errorf("%w: steer rate %v must not be negative", ErrInvalidTuning, t.SteerRate)
	case !(t.Friction >= 0) || !(t.OffFriction >= 0):
		return fmt.Errorf("%w: friction %v/%v must not be negative", ErrInvalidTuning, t.Friction, t.OffFriction)
	}
	return nil
}

// Kart is one competitor, created once and reset between races
type Kart struct {
	Name       string
	Tuning     Tuning
	Radius     float64 // orbit radius
	StartTheta float64

	Theta      float64 // (-π, π]
	Speed      float64 // signed px/s
	Pos        vmath.Vec2
	Item       track.Item
	TurboTime  float64 // seconds of active turbo remaining
	Lap        int     // 1-indexed
	PassedGate bool    // set while the current gate visit is resolved
	Halfway    bool    // far side of the ring reached since the last counted crossing
	Finished   bool
}

// New validates tuning and places the kart on its grid slot
func New(name string, tr *track.Track, radius, startTheta float64, tuning Tuning) (*Kart, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("kart %q: %w", name, err)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("kart %q: %w: orbit radius %v must be positive", name, ErrInvalidTuning, radius)
	}
	k := &Kart{
		Name:       name,
		Tuning:     tuning,
		Radius:     radius,
		StartTheta: vmath.NormalizeAngle(startTheta),
	}
	k.Reset(tr)
	return k, nil
}

// Reset restores every per-race field, the kart itself is kept
func (k *Kart) Reset(tr *track.Track) {
	k.Theta = k.StartTheta
	k.Speed = 0
	k.Pos = tr.PositionOnRing(k.Theta, k.Radius)
	k.Item = track.ItemNone
	k.TurboTime = 0
	k.Lap = 1
	k.PassedGate = false
	k.Halfway = false
	k.Finished = false
}

// Position implements track.Picker
func (k *Kart) Position() vmath.Vec2 { return k.Pos }

// HeldItem implements track.Picker
func (k *Kart) HeldItem() track.Item { return k.Item }

// GrantItem implements track.Picker
func (k *Kart) GrantItem(i track.Item) { k.Item = i }

// UseItem consumes a held turbo and opens the boost window
// Returns false when nothing was held
func (k *Kart) UseItem() bool {
	if k.Item != track.ItemTurbo {
		return false
	}
	k.Item = track.ItemNone
	k.TurboTime = constant.TurboSeconds
	return true
}

// TurboActive reports an open boost window
func (k *Kart) TurboActive() bool {
	return k.TurboTime > 0
}

// Heading is the screen rotation of the kart sprite, tangent to the ring
func (k *Kart) Heading() float64 {
	return k.Theta + vmath.HalfPi
}
