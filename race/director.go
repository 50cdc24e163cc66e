// Package race owns race flow: countdown, per-tick kart updates, finish order and placement
package race

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/input"
	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/status"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

// ErrInvalidRace reports a race that cannot be set up
var ErrInvalidRace = errors.New("invalid race")

// Entrant pairs a kart with whatever drives it
type Entrant struct {
	Kart       *kart.Kart
	Controller *input.Controller
}

// Options configures a Director
type Options struct {
	Track   *track.Track
	Field   *track.Field // nil races without item boxes
	Laps    int
	Keys    input.KeySet
	MaxStep float64          // seconds, zero means constant.MaxFrameStepSeconds
	Metrics *status.Registry // nil keeps counters private
	NewID   func() string    // race id source, nil means uuid
}

// GridTheta is the starting angle of grid slot i, each slot a little behind the previous
func GridTheta(i int) float64 {
	return -vmath.HalfPi - constant.GridOffset*float64(i)
}

// Director owns race state and is the only writer of it
// All methods are meant for the single game-loop goroutine
type Director struct {
	track    *track.Track
	field    *track.Field
	laps     int
	keys     input.KeySet
	maxStep  float64
	newID    func() string
	entrants []Entrant

	raceID      string
	phase       Phase
	countdown   countdown
	finishOrder []int // entrant indices
	banner      string
	bannerTimer float64

	listeners []Listener

	statStarts   *atomic.Int64
	statFinishes *atomic.Int64
	statLaps     *atomic.Int64
	statPickups  *atomic.Int64
	statTurbos   *atomic.Int64
}

// NewDirector validates the setup and returns a director in PhaseIdle
func NewDirector(opts Options, entrants ...Entrant) (*Director, error) {
	if opts.Track == nil {
		return nil, fmt.Errorf("%w: no track", ErrInvalidRace)
	}
	if opts.Laps < 1 {
		return nil, fmt.Errorf("%w: laps %d must be at least 1", ErrInvalidRace, opts.Laps)
	}
	if len(entrants) == 0 {
		return nil, fmt.Errorf("%w: no entrants", ErrInvalidRace)
	}
	names := make(map[string]bool, len(entrants))
	for i, e := range entrants {
		if e.Kart == nil || e.Controller == nil {
			return nil, fmt.Errorf("%w: entrant %d incomplete", ErrInvalidRace, i)
		}
		if names[e.Kart.Name] {
			return nil, fmt.Errorf("%w: duplicate kart name %q", ErrInvalidRace, e.Kart.Name)
		}
		names[e.Kart.Name] = true
	}

	maxStep := opts.MaxStep
	if maxStep <= 0 {
		maxStep = constant.MaxFrameStepSeconds
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	reg := opts.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}

	d := &Director{
		track:        opts.Track,
		field:        opts.Field,
		laps:         opts.Laps,
		keys:         opts.Keys,
		maxStep:      maxStep,
		newID:        newID,
		entrants:     entrants,
		countdown:    newCountdown(),
		statStarts:   reg.Ints.Get("race.starts"),
		statFinishes: reg.Ints.Get("race.finishes"),
		statLaps:     reg.Ints.Get("race.laps"),
		statPickups:  reg.Ints.Get("race.pickups"),
		statTurbos:   reg.Ints.Get("race.turbos"),
	}
	d.Reset()
	return d, nil
}

// Subscribe registers l for race events
func (d *Director) Subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

func (d *Director) emit(e Event) {
	for _, l := range d.listeners {
		l.OnRaceEvent(e)
	}
}

// Reset puts every kart back on the grid, reactivates boxes and clears race history
// Every field is overwritten, so it is safe mid-race
func (d *Director) Reset() {
	for _, e := range d.entrants {
		e.Kart.Reset(d.track)
	}
	if d.field != nil {
		d.field.Reset()
	}
	d.phase = PhaseIdle
	d.countdown.clear()
	d.finishOrder = d.finishOrder[:0]
	d.banner = ""
	d.bannerTimer = 0
}

// Start resets the race and begins the countdown from "3"
func (d *Director) Start() {
	d.Reset()
	d.raceID = d.newID()
	d.phase = PhaseCountdown
	d.countdown.begin()
	d.statStarts.Add(1)
	log.Printf("race %s: countdown started, %d karts, %d laps", d.raceID, len(d.entrants), d.laps)
	d.emit(Event{Type: EventCountdown, Label: d.countdown.label()})
}

// SetAI hands kart i to the AI driver or back to the keyboard, effective next tick
func (d *Director) SetAI(i int, on bool) {
	if i < 0 || i >= len(d.entrants) {
		return
	}
	d.entrants[i].Controller.AI = on
}

// ToggleAI flips the AI driver for kart i and returns the new state
func (d *Director) ToggleAI(i int) bool {
	if i < 0 || i >= len(d.entrants) {
		return false
	}
	c := d.entrants[i].Controller
	c.AI = !c.AI
	return c.AI
}

// Tick advances the race by dt seconds, clamped to the max step
// Countdown and kart simulation never run in the same tick
func (d *Director) Tick(dt float64) {
	dt = vmath.Clamp(dt, 0, d.maxStep)

	if d.bannerTimer > 0 {
		d.bannerTimer -= dt
	}

	switch d.phase {
	case PhaseCountdown:
		d.tickCountdown(dt)
	case PhaseRunning:
		d.tickRunning(dt)
	}
}

func (d *Director) tickCountdown(dt float64) {
	changed, done := d.countdown.advance(dt)
	switch {
	case done:
		d.phase = PhaseRunning
		log.Printf("race %s: running", d.raceID)
		d.emit(Event{Type: EventRunning})
	case changed && d.countdown.step == len(CountdownLabels)-1:
		d.emit(Event{Type: EventGo, Label: d.countdown.label()})
	case changed:
		d.emit(Event{Type: EventCountdown, Label: d.countdown.label()})
	}
}

func (d *Director) tickRunning(dt float64) {
	env := kart.Env{Track: d.track, Field: d.field, Laps: d.laps}

	for i, e := range d.entrants {
		in := e.Controller.Resolve(d.keys, e.Kart, d.track)
		d.handleOutcome(i, kart.Update(e.Kart, dt, in, env))
	}
	if d.field != nil {
		d.field.Tick(dt)
	}

	if len(d.finishOrder) == len(d.entrants) {
		d.phase = PhaseFinished
		d.showBanner(d.resultText())
		log.Printf("race %s: over, %s", d.raceID, d.resultText())
		d.emit(Event{Type: EventRaceOver})
	}
}

func (d *Director) handleOutcome(i int, out kart.Outcome) {
	k := d.entrants[i].Kart
	if out.Has(kart.OutcomeItemUsed) {
		d.statTurbos.Add(1)
		d.emit(Event{Type: EventTurbo, Kart: k.Name, Lap: k.Lap})
	}
	if out.Has(kart.OutcomePickup) {
		d.statPickups.Add(1)
		d.emit(Event{Type: EventPickup, Kart: k.Name, Lap: k.Lap})
	}
	if out.Has(kart.OutcomeLap) {
		d.statLaps.Add(1)
		d.emit(Event{Type: EventLap, Kart: k.Name, Lap: k.Lap})
	}
	if out.Has(kart.OutcomeFinished) {
		d.finishOrder = append(d.finishOrder, i)
		d.statFinishes.Add(1)
		d.showBanner(k.Name + " finished!")
		log.Printf("race %s: %s finished in place %d", d.raceID, k.Name, len(d.finishOrder))
		d.emit(Event{Type: EventFinished, Kart: k.Name, Lap: k.Lap})
	}
}

func (d *Director) showBanner(text string) {
	d.banner = text
	d.bannerTimer = constant.BannerSeconds
}

// resultText lists finishers in order: "Result: 1º Mario • 2º Luigi"
func (d *Director) resultText() string {
	parts := make([]string, len(d.finishOrder))
	for pos, idx := range d.finishOrder {
		parts[pos] = PlaceLabel(pos+1) + " " + d.entrants[idx].Kart.Name
	}
	return "Result: " + strings.Join(parts, " • ")
}

// Placement returns entrant indices from first to last place
func (d *Director) Placement() []int {
	karts := make([]*kart.Kart, len(d.entrants))
	for i, e := range d.entrants {
		karts[i] = e.Kart
	}
	return Rank(d.track, karts, d.finishOrder)
}

// Phase returns the current race phase
func (d *Director) Phase() Phase { return d.phase }

// Running reports whether karts are being simulated
func (d *Director) Running() bool { return d.phase == PhaseRunning }

// RaceID identifies the current race, empty before the first Start
func (d *Director) RaceID() string { return d.raceID }

// Laps is the number of laps to win
func (d *Director) Laps() int { return d.laps }

// Finishers returns kart names in finishing order
func (d *Director) Finishers() []string {
	names := make([]string, len(d.finishOrder))
	for pos, idx := range d.finishOrder {
		names[pos] = d.entrants[idx].Kart.Name
	}
	return names
}

// Kart returns entrant i's kart
func (d *Director) Kart(i int) *kart.Kart { return d.entrants[i].Kart }

// Len returns the number of entrants
func (d *Director) Len() int { return len(d.entrants) }
