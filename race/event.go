package race

// EventType discriminates race notifications
type EventType uint8

const (
	EventCountdown EventType = iota // countdown label shown, Label is "3", "2" or "1"
	EventGo                         // "GO!" shown, karts still frozen for one dwell
	EventRunning                    // karts released
	EventPickup                     // kart collected an item box
	EventTurbo                      // kart fired its turbo
	EventLap                        // kart started a new lap, Lap is the new lap
	EventFinished                   // kart crossed the line on its final lap
	EventRaceOver                   // every kart finished
)

var eventNames = [...]string{
	EventCountdown: "countdown",
	EventGo:        "go",
	EventRunning:   "running",
	EventPickup:    "pickup",
	EventTurbo:     "turbo",
	EventLap:       "lap",
	EventFinished:  "finished",
	EventRaceOver:  "race_over",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is one race notification
type Event struct {
	Type  EventType
	Kart  string // empty for race-wide events
	Lap   int
	Label string
}

// Listener receives race events synchronously on the tick goroutine
type Listener interface {
	OnRaceEvent(Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

// OnRaceEvent implements Listener
func (f ListenerFunc) OnRaceEvent(e Event) { f(e) }
