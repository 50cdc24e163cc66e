package audio

import "github.com/lixenwraith/vi-kart/race"

// Cue identifies one synthesized sound
type Cue int

const (
	CueTick   Cue = iota // countdown label
	CueGo                // countdown release
	CueBell              // item box pickup
	CueWhoosh            // turbo fired
	CueChime             // lap completed
	CueCoin              // kart finished
	cueCount
)

var cueNames = [...]string{
	CueTick:   "tick",
	CueGo:     "go",
	CueBell:   "bell",
	CueWhoosh: "whoosh",
	CueChime:  "chime",
	CueCoin:   "coin",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps a race event to its sound, false for silent events
func CueFor(e race.Event) (Cue, bool) {
	switch e.Type {
	case race.EventCountdown:
		return CueTick, true
	case race.EventGo:
		return CueGo, true
	case race.EventPickup:
		return CueBell, true
	case race.EventTurbo:
		return CueWhoosh, true
	case race.EventLap:
		return CueChime, true
	case race.EventFinished:
		return CueCoin, true
	}
	return 0, false
}
