package track

import (
	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/vmath"
)

// Box is an item box at a fixed slot on the ring
// Active and a counting Cooldown are mutually exclusive
type Box struct {
	Theta    float64
	Pos      vmath.Vec2
	Active   bool
	Cooldown float64
}

// Picker is anything that can collect an item from a box
type Picker interface {
	Position() vmath.Vec2
	HeldItem() Item
	GrantItem(Item)
}

// Field is the fixed ring of item boxes
type Field struct {
	boxes         []Box
	pickupRadSq   float64
	respawnPeriod float64
}

// NewField spaces count boxes evenly around the ring, ringOffset outward from the centerline
func NewField(t *Track, count int, ringOffset float64) *Field {
	f := &Field{
		boxes:         make([]Box, count),
		pickupRadSq:   constant.BoxPickupRadius * constant.BoxPickupRadius,
		respawnPeriod: constant.BoxRespawnSeconds,
	}
	radius := t.MidRadius() + ringOffset
	for i := range f.boxes {
		theta := float64(i) / float64(count) * vmath.TwoPi
		f.boxes[i] = Box{
			Theta:  theta,
			Pos:    t.PositionOnRing(theta, radius),
			Active: true,
		}
	}
	return f
}

// TryPickup grants p a turbo from the first active box in range
// Returns the box index, or -1 when nothing was collected
func (f *Field) TryPickup(p Picker) int {
	if p.HeldItem() != ItemNone {
		return -1
	}
	pos := p.Position()
	for i := range f.boxes {
		b := &f.boxes[i]
		if !b.Active {
			continue
		}
		if vmath.DistSq(pos, b.Pos) < f.pickupRadSq {
			b.Active = false
			b.Cooldown = f.respawnPeriod
			p.GrantItem(ItemTurbo)
			return i
		}
	}
	return -1
}

// Tick advances respawn cooldowns
func (f *Field) Tick(dt float64) {
	for i := range f.boxes {
		b := &f.boxes[i]
		if b.Active {
			continue
		}
		b.Cooldown -= dt
		if b.Cooldown <= 0 {
			b.Active = true
			b.Cooldown = 0
		}
	}
}

// Reset reactivates every box
func (f *Field) Reset() {
	for i := range f.boxes {
		f.boxes[i].Active = true
		f.boxes[i].Cooldown = 0
	}
}

// Len returns the number of boxes
func (f *Field) Len() int {
	return len(f.boxes)
}

// Box returns a copy of box i
func (f *Field) Box(i int) Box {
	return f.boxes[i]
}

// Boxes returns a copy of all boxes in creation order
func (f *Field) Boxes() []Box {
	out := make([]Box, len(f.boxes))
	copy(out, f.boxes)
	return out
}
