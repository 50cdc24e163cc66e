package kart

import (
	"math"

	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

// checkGate counts a lap when the kart crosses the gate line in race direction
// prevOffset is the gate offset at the start of the tick
//
// PassedGate guards one visit to the gate band:
//   - outside the band it is always clear
//   - a forward crossing inside the band sets it
//   - first seen inside the band already past the line (reversing in) sets it,
//     so backing over the line and driving forward again within one visit never counts
//   - approaching the line from behind keeps it clear
//
// A step long enough to jump the whole band still counts when it carries the
// offset from behind the line to past it on the gate side of the ring
//
// A forward crossing only advances the lap once the kart has reached the far half
// of the ring since the previous counted crossing, so leaving the band backwards
// and re-entering cannot farm laps
func (k *Kart) checkGate(tr *track.Track, prevOffset float64, laps int) Outcome {
	offset := tr.GateOffset(k.Theta)
	if math.Abs(offset) > vmath.HalfPi {
		k.Halfway = true
	}
	crossed := prevOffset <= 0 && offset > 0 &&
		prevOffset > -vmath.HalfPi && offset < vmath.HalfPi

	if math.Abs(offset) >= tr.GateTolerance {
		k.PassedGate = false
		if !crossed || k.Finished {
			return OutcomeNone
		}
	} else {
		if k.PassedGate || k.Finished || offset <= 0 {
			return OutcomeNone
		}
		k.PassedGate = true
		if !crossed {
			return OutcomeNone
		}
	}
	if !k.Halfway {
		return OutcomeNone
	}
	k.Halfway = false

	if k.Lap < laps {
		k.Lap++
		return OutcomeLap
	}
	k.Finished = true
	return OutcomeFinished
}
