package race

import (
	"math"

	"github.com/lixenwraith/vi-kart/vmath"
)

// Item labels shown on the HUD
const (
	ItemLabelHeld   = "Turbo"
	ItemLabelActive = "Turbo!"
	ItemLabelNone   = "-"
)

// KartView is the read-only per-kart state for renderers and the HUD
type KartView struct {
	Name       string
	Pos        vmath.Vec2
	Theta      float64
	Heading    float64 // sprite rotation, tangent to the ring
	TurboGlow  bool
	Lap        int
	Speed      int // rounded absolute speed
	Place      int // 1-based
	PlaceLabel string
	ItemLabel  string
	Finished   bool
	AI         bool
}

// BoxView is one item box for renderers
type BoxView struct {
	Pos    vmath.Vec2
	Active bool
}

// Snapshot is everything a presenter needs after a tick
type Snapshot struct {
	RaceID           string
	Phase            Phase
	Laps             int
	Countdown        string
	CountdownVisible bool
	Banner           string
	BannerVisible    bool
	Karts            []KartView // grid order
	Boxes            []BoxView  // creation order
	Finishers        []string
}

// Presenter consumes snapshots, it never mutates race state
type Presenter interface {
	Present(Snapshot)
}

// Snapshot derives presentation and HUD state from the current race
func (d *Director) Snapshot() Snapshot {
	s := Snapshot{
		RaceID:           d.raceID,
		Phase:            d.phase,
		Laps:             d.laps,
		Countdown:        d.countdown.label(),
		CountdownVisible: d.phase == PhaseCountdown && d.countdown.visible(),
		Banner:           d.banner,
		BannerVisible:    d.bannerTimer > 0,
		Karts:            make([]KartView, len(d.entrants)),
		Finishers:        d.Finishers(),
	}

	for place, idx := range d.Placement() {
		s.Karts[idx].Place = place + 1
		s.Karts[idx].PlaceLabel = PlaceLabel(place + 1)
	}

	for i, e := range d.entrants {
		k := e.Kart
		v := &s.Karts[i]
		v.Name = k.Name
		v.Pos = k.Pos
		v.Theta = k.Theta
		v.Heading = k.Heading()
		v.TurboGlow = k.TurboActive()
		v.Lap = k.Lap
		v.Speed = int(math.Round(math.Abs(k.Speed)))
		v.Finished = k.Finished
		v.AI = e.Controller.AI
		v.ItemLabel = itemLabel(k.Item.String(), k.TurboActive())
	}

	if d.field != nil {
		boxes := d.field.Boxes()
		s.Boxes = make([]BoxView, len(boxes))
		for i, b := range boxes {
			s.Boxes[i] = BoxView{Pos: b.Pos, Active: b.Active}
		}
	}
	return s
}

// itemLabel prefers the held item over an active turbo, as the HUD always did
func itemLabel(held string, turbo bool) string {
	switch {
	case held != "":
		return held
	case turbo:
		return ItemLabelActive
	default:
		return ItemLabelNone
	}
}
