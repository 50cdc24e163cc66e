package input

import (
	"testing"

	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

func newTestKart(t *testing.T, tr *track.Track, theta float64) *kart.Kart {
	t.Helper()
	k, err := kart.New("Test", tr, tr.MidRadius(), theta, kart.DefaultTuning())
	if err != nil {
		t.Fatalf("kart.New: %v", err)
	}
	return k
}

func TestResolveHumanReadsBinding(t *testing.T) {
	tr := track.Default()
	k := newTestKart(t, tr, 0)
	c := NewController(Player1Binding(), FixedRand(0))

	keys := MapKeySet{}
	keys.Press("KeyW", "KeyA", KeyShiftLeft, KeyArrowRight)

	got := c.Resolve(keys, k, tr)
	want := kart.Intent{Accelerate: true, Left: true, UseItem: true}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	keys.Release("KeyW", "KeyA", KeyShiftLeft)
	keys.Press("KeyS", "KeyD")
	got = c.Resolve(keys, k, tr)
	want = kart.Intent{Brake: true, Right: true}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestResolveNilKeysIsIdle(t *testing.T) {
	tr := track.Default()
	c := NewController(Player2Binding(), nil)
	if got := c.Resolve(nil, newTestKart(t, tr, 0), tr); got != (kart.Intent{}) {
		t.Errorf("Expected empty intent, got %+v", got)
	}
}

func TestResolveAI(t *testing.T) {
	tr := track.Default()
	onStraight := -vmath.HalfPi + 0.1
	farSide := vmath.HalfPi

	tests := []struct {
		name    string
		theta   float64
		item    track.Item
		rng     RandSource
		useItem bool
	}{
		{"no item", onStraight, track.ItemNone, FixedRand(0), false},
		{"item on straight", onStraight, track.ItemTurbo, FixedRand(0), true},
		{"item on straight, roll fails", onStraight, track.ItemTurbo, FixedRand(1), false},
		{"item away from straight", farSide, track.ItemTurbo, FixedRand(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newTestKart(t, tr, tt.theta)
			k.Item = tt.item
			c := NewController(Player2Binding(), tt.rng)
			c.AI = true

			// Keys are ignored while AI drives
			keys := MapKeySet{}
			keys.Press(KeyArrowDown, KeyArrowLeft)

			got := c.Resolve(keys, k, tr)
			want := kart.Intent{Accelerate: true, UseItem: tt.useItem}
			if got != want {
				t.Errorf("Expected %+v, got %+v", want, got)
			}
		})
	}
}

type countingRand struct {
	calls int
}

func (r *countingRand) Float64() float64 {
	r.calls++
	return 0.5
}

func TestAIRollsOnlyWhenUsable(t *testing.T) {
	tr := track.Default()
	rng := &countingRand{}
	c := NewController(Player1Binding(), rng)
	c.AI = true

	k := newTestKart(t, tr, -vmath.HalfPi)
	c.Resolve(nil, k, tr)
	if rng.calls != 0 {
		t.Errorf("Expected no roll without an item, got %d", rng.calls)
	}
	k.Item = track.ItemTurbo
	c.Resolve(nil, k, tr)
	if rng.calls != 1 {
		t.Errorf("Expected one roll with a usable item, got %d", rng.calls)
	}
}
