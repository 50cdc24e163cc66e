package input

import (
	"math"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/track"
)

// Controller resolves one kart's intent each tick, from keys or from the AI driver
type Controller struct {
	Binding Binding
	AI      bool

	rng RandSource
}

// NewController creates a human-driven controller; rng backs the AI when enabled
func NewController(b Binding, rng RandSource) *Controller {
	if rng == nil {
		rng = NewRandSource()
	}
	return &Controller{Binding: b, rng: rng}
}

// Resolve builds the intent for k from the pressed keys, or synthesizes it when AI is on
func (c *Controller) Resolve(keys KeySet, k *kart.Kart, tr *track.Track) kart.Intent {
	if c.AI {
		return c.drive(k, tr)
	}
	if keys == nil {
		return kart.Intent{}
	}
	return kart.Intent{
		Accelerate: keys.Pressed(c.Binding.Up),
		Brake:      keys.Pressed(c.Binding.Down),
		Left:       keys.Pressed(c.Binding.Left),
		Right:      keys.Pressed(c.Binding.Right),
		UseItem:    keys.Pressed(c.Binding.Item),
	}
}

// drive is the AI: full throttle, no steering, fires a held turbo on the main straight by chance
// The chance is only rolled when the turbo is usable so the stream stays aligned with decisions
func (c *Controller) drive(k *kart.Kart, tr *track.Track) kart.Intent {
	in := kart.Intent{Accelerate: true}
	if k.Item == track.ItemTurbo && math.Abs(tr.GateOffset(k.Theta)) < constant.AIStraightTolerance {
		in.UseItem = c.rng.Float64() < constant.AIItemChance
	}
	return in
}
