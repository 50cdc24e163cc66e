package kart

import (
	"math"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

// Outcome flags what happened to a kart during one update
type Outcome uint8

const (
	OutcomeItemUsed Outcome = 1 << iota
	OutcomePickup
	OutcomeLap
	OutcomeFinished
)

// OutcomeNone is an uneventful tick
const OutcomeNone Outcome = 0

// Has reports whether all flags in o are set
func (oc Outcome) Has(o Outcome) bool {
	return oc&o == o
}

// Env is the shared world a kart moves through
type Env struct {
	Track *track.Track
	Field *track.Field // nil disables pickups
	Laps  int
}

// Update advances k by dt seconds under intent in
// Finished karts keep moving but never change lap, finish or item state again
func Update(k *Kart, dt float64, in Intent, env Env) Outcome {
	var out Outcome
	tn := &k.Tuning
	prevOffset := env.Track.GateOffset(k.Theta)

	if in.UseItem && !k.Finished && k.UseItem() {
		out |= OutcomeItemUsed
	}

	// Throttle
	if in.Accelerate {
		k.Speed += tn.Accel * dt
	}
	if in.Brake {
		k.Speed -= constant.KartBrakeRatio * tn.Accel * dt
	}
	if k.TurboTime > 0 {
		k.Speed += constant.TurboAccelRatio * tn.Accel * dt
		k.TurboTime -= dt
	}
	k.Speed = vmath.Clamp(k.Speed, -constant.KartReverseRatio*tn.MaxSpeed, tn.MaxSpeed)

	// Steering authority scales with speed, none when stopped
	steer := tn.SteerRate * vmath.Clamp(math.Abs(k.Speed)/tn.MaxSpeed, 0, 1) * dt
	if in.Left {
		k.Theta -= steer
	}
	if in.Right {
		k.Theta += steer
	}
	k.Theta = vmath.NormalizeAngle(k.Theta)

	// Advance along the ring
	k.Theta = vmath.NormalizeAngle(k.Theta + k.Speed/k.Radius*dt)
	k.Pos = env.Track.PositionOnRing(k.Theta, k.Radius)

	// Coasting friction, surface picked from the post-move position
	if !in.Accelerate && !in.Brake && k.TurboTime <= 0 {
		k.Speed = applyFriction(k.Speed, k.friction(env.Track)*constant.FrictionFrameRate*dt)
	}

	if !k.Finished && env.Field != nil && env.Field.TryPickup(k) >= 0 {
		out |= OutcomePickup
	}

	out |= k.checkGate(env.Track, prevOffset, env.Laps)
	return out
}

func (k *Kart) friction(tr *track.Track) float64 {
	if tr.IsOffTrack(k.Pos) {
		return k.Tuning.OffFriction
	}
	return k.Tuning.Friction
}

// applyFriction decays speed toward zero by decel without crossing it
func applyFriction(speed, decel float64) float64 {
	s := vmath.Sign(speed)
	speed -= s * decel
	if vmath.Sign(speed) != s {
		return 0
	}
	return speed
}
