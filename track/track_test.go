package track

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/vi-kart/vmath"
)

func TestNewRejectsBadGeometry(t *testing.T) {
	c := vmath.Vec2{X: 400, Y: 300}
	cases := []struct {
		name          string
		inner, outer  float64
		gateTolerance float64
	}{
		{"zero inner", 0, 240, 0.12},
		{"negative inner", -10, 240, 0.12},
		{"outer below inner", 150, 100, 0.12},
		{"outer equals inner", 150, 150, 0.12},
		{"nan outer", 150, math.NaN(), 0.12},
		{"zero gate", 150, 240, 0},
		{"gate too wide", 150, 240, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(c, tc.inner, tc.outer, tc.gateTolerance)
			if !errors.Is(err, ErrInvalidTrack) {
				t.Errorf("Expected ErrInvalidTrack, got %v", err)
			}
		})
	}
}

func TestIsOffTrack(t *testing.T) {
	tr := Default()

	cases := []struct {
		radius float64
		off    bool
	}{
		{100, true},
		{150, false},
		{195, false},
		{240, false},
		{260, true},
	}
	for _, tc := range cases {
		p := tr.PositionOnRing(0.7, tc.radius)
		if got := tr.IsOffTrack(p); got != tc.off {
			t.Errorf("radius %v: expected off=%v, got %v", tc.radius, tc.off, got)
		}
	}
}

func TestGateBand(t *testing.T) {
	tr := Default()

	if !tr.InGate(-vmath.HalfPi) {
		t.Error("Expected gate line to be inside the band")
	}
	if !tr.InGate(-vmath.HalfPi+0.1) || !tr.InGate(-vmath.HalfPi-0.1) {
		t.Error("Expected ±0.1 rad to be inside the band")
	}
	if tr.InGate(-vmath.HalfPi+0.13) || tr.InGate(-vmath.HalfPi-0.13) {
		t.Error("Expected ±0.13 rad to be outside the band")
	}
	if tr.InGate(vmath.HalfPi) {
		t.Error("Expected bottom of ring to be outside the band")
	}
}

func TestProgressGrowsInRaceDirection(t *testing.T) {
	tr := Default()

	prev := tr.Progress(-vmath.HalfPi)
	if math.Abs(prev-0.5) > 1e-12 {
		t.Errorf("Expected progress 0.5 on the gate line, got %v", prev)
	}

	// From the gate to just before the bottom, moving forward
	for theta := -vmath.HalfPi + 0.1; theta < vmath.HalfPi-0.05; theta += 0.1 {
		p := tr.Progress(theta)
		if p <= prev {
			t.Fatalf("Expected progress to increase at theta=%v: %v <= %v", theta, p, prev)
		}
		if p <= 0 || p > 1 {
			t.Fatalf("Progress %v out of (0, 1]", p)
		}
		prev = p
	}
}
