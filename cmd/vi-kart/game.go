package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-kart/config"
	"github.com/lixenwraith/vi-kart/input"
	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/race"
	"github.com/lixenwraith/vi-kart/status"
	"github.com/lixenwraith/vi-kart/track"
)

// aiTarget is the kart the toggle_ai action hands to the computer
const aiTarget = 1

// action is a game-level request from the terminal, applied on the loop goroutine
type action uint8

const (
	actionNone action = iota
	actionStart
	actionToggleAI
	actionMute
	actionQuit
)

// buildRace assembles track, item boxes, karts and the director from cfg
func buildRace(cfg *config.Config, keys input.KeySet, reg *status.Registry) (*race.Director, *track.Track, error) {
	tr, err := cfg.BuildTrack()
	if err != nil {
		return nil, nil, err
	}
	field := track.NewField(tr, cfg.Track.Boxes, cfg.Track.BoxRingOffset)

	entrants := make([]race.Entrant, len(cfg.Players))
	for i, p := range cfg.Players {
		k, err := kart.New(p.Name, tr, tr.MidRadius(), race.GridTheta(i), cfg.Tuning())
		if err != nil {
			return nil, nil, err
		}
		c := input.NewController(p.Binding(), input.NewRandSource())
		c.AI = p.AI
		entrants[i] = race.Entrant{Kart: k, Controller: c}
	}

	d, err := race.NewDirector(race.Options{
		Track:   tr,
		Field:   field,
		Laps:    cfg.Race.Laps,
		Keys:    keys,
		Metrics: reg,
	}, entrants...)
	if err != nil {
		return nil, nil, err
	}
	return d, tr, nil
}

// actionKeys maps configured control keys to actions
func actionKeys(c config.ControlsConfig) map[input.Key]action {
	m := make(map[input.Key]action)
	bind := func(keys []string, a action) {
		for _, k := range config.Keys(keys) {
			m[k] = a
		}
	}
	bind(c.Start, actionStart)
	bind(c.ToggleAI, actionToggleAI)
	bind(c.Mute, actionMute)
	bind(c.Quit, actionQuit)
	return m
}

// classify returns the action behind ev, actionNone for driving keys
// Ctrl+C always quits
func classify(ev *tcell.EventKey, actions map[input.Key]action) action {
	if ev.Key() == tcell.KeyCtrlC {
		return actionQuit
	}
	k, ok := input.KeyFromEvent(ev)
	if !ok {
		return actionNone
	}
	return actions[k]
}

// footerHint lists the control keys
func footerHint(c config.ControlsConfig) string {
	parts := []string{
		strings.Join(c.Start, "/") + " start",
		strings.Join(c.ToggleAI, "/") + " AI",
		strings.Join(c.Mute, "/") + " mute",
		strings.Join(c.Quit, "/") + " quit",
	}
	return strings.Join(parts, "  ")
}

// idleHint is shown before the first race
func idleHint(c config.ControlsConfig) string {
	if len(c.Start) == 0 {
		return ""
	}
	return fmt.Sprintf("Press %s to race", c.Start[0])
}
