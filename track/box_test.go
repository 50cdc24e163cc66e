package track

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-kart/vmath"
)

type testPicker struct {
	pos  vmath.Vec2
	item Item
}

func (p *testPicker) Position() vmath.Vec2 { return p.pos }
func (p *testPicker) HeldItem() Item       { return p.item }
func (p *testPicker) GrantItem(i Item)     { p.item = i }

func TestNewFieldLayout(t *testing.T) {
	tr := Default()
	f := NewField(tr, 8, 8)

	if f.Len() != 8 {
		t.Fatalf("Expected 8 boxes, got %d", f.Len())
	}
	for i, b := range f.Boxes() {
		wantTheta := float64(i) / 8 * vmath.TwoPi
		if math.Abs(b.Theta-wantTheta) > 1e-12 {
			t.Errorf("box %d: expected theta %v, got %v", i, wantTheta, b.Theta)
		}
		r := vmath.V2Mag(vmath.V2Sub(b.Pos, tr.Center))
		if math.Abs(r-203) > 1e-9 {
			t.Errorf("box %d: expected radius 203, got %v", i, r)
		}
		if !b.Active || b.Cooldown != 0 {
			t.Errorf("box %d: expected active with zero cooldown, got %+v", i, b)
		}
	}
}

func TestTryPickupGrantsTurbo(t *testing.T) {
	tr := Default()
	f := NewField(tr, 8, 8)
	p := &testPicker{pos: f.Box(2).Pos}

	idx := f.TryPickup(p)
	if idx != 2 {
		t.Fatalf("Expected pickup from box 2, got %d", idx)
	}
	if p.item != ItemTurbo {
		t.Errorf("Expected turbo granted, got %v", p.item)
	}
	b := f.Box(2)
	if b.Active || b.Cooldown != 3 {
		t.Errorf("Expected box inactive with 3s cooldown, got %+v", b)
	}
}

func TestTryPickupIgnoresHolder(t *testing.T) {
	f := NewField(Default(), 8, 8)
	p := &testPicker{pos: f.Box(0).Pos, item: ItemTurbo}

	if idx := f.TryPickup(p); idx != -1 {
		t.Errorf("Expected no pickup while holding an item, got box %d", idx)
	}
	if !f.Box(0).Active {
		t.Error("Expected box to stay active")
	}
}

func TestTryPickupRadius(t *testing.T) {
	f := NewField(Default(), 8, 8)
	b := f.Box(0).Pos

	// Exactly on the radius does not count, strict less-than
	p := &testPicker{pos: vmath.Vec2{X: b.X + 28, Y: b.Y}}
	if idx := f.TryPickup(p); idx != -1 {
		t.Errorf("Expected no pickup at exactly 28px, got box %d", idx)
	}

	p.pos = vmath.Vec2{X: b.X + 27.9, Y: b.Y}
	if idx := f.TryPickup(p); idx != 0 {
		t.Errorf("Expected pickup at 27.9px, got %d", idx)
	}
}

func TestTryPickupAtMostOnePerCall(t *testing.T) {
	tr := Default()
	f := NewField(tr, 8, 8)
	// Two overlapping boxes, first in creation order wins
	f.boxes[1].Pos = f.boxes[0].Pos

	p := &testPicker{pos: f.Box(0).Pos}
	if idx := f.TryPickup(p); idx != 0 {
		t.Fatalf("Expected first box to win, got %d", idx)
	}
	if !f.Box(1).Active {
		t.Error("Expected second overlapping box untouched")
	}
}

func TestRespawnAfterCooldown(t *testing.T) {
	f := NewField(Default(), 8, 8)
	p := &testPicker{pos: f.Box(4).Pos}
	f.TryPickup(p)

	const dt = 1.0 / 60
	ticks := 0
	for !f.Box(4).Active {
		f.Tick(dt)
		ticks++
		if ticks > 1000 {
			t.Fatal("Box never respawned")
		}
	}

	elapsed := float64(ticks) * dt
	if elapsed < 3-1e-9 || elapsed > 3+dt+1e-9 {
		t.Errorf("Expected respawn after ~3s, got %v", elapsed)
	}
	if f.Box(4).Cooldown != 0 {
		t.Errorf("Expected cooldown zeroed on respawn, got %v", f.Box(4).Cooldown)
	}

	// Other boxes never touched
	for i, b := range f.Boxes() {
		if !b.Active {
			t.Errorf("box %d unexpectedly inactive", i)
		}
	}
}

func TestResetReactivates(t *testing.T) {
	f := NewField(Default(), 8, 8)
	f.TryPickup(&testPicker{pos: f.Box(3).Pos})
	f.Reset()

	for i, b := range f.Boxes() {
		if !b.Active || b.Cooldown != 0 {
			t.Errorf("box %d not reset: %+v", i, b)
		}
	}
}
