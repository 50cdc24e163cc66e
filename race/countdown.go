package race

import "github.com/lixenwraith/vi-kart/constant"

// Phase is the race-level state
type Phase uint8

const (
	PhaseIdle      Phase = iota // reset, waiting for Start
	PhaseCountdown              // labels counting down, karts frozen
	PhaseRunning                // karts moving
	PhaseFinished               // every kart finished
)

var phaseNames = [...]string{
	PhaseIdle:      "idle",
	PhaseCountdown: "countdown",
	PhaseRunning:   "running",
	PhaseFinished:  "finished",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// CountdownLabels are shown in order, each for one dwell
var CountdownLabels = [...]string{"3", "2", "1", "GO!"}

// countdown steps through CountdownLabels
// Each step resets the timer to a full dwell, overshoot is not carried
type countdown struct {
	step  int
	timer float64
	dwell float64
}

func newCountdown() countdown {
	return countdown{dwell: constant.CountdownStepSeconds}
}

func (c *countdown) begin() {
	c.step = 0
	c.timer = c.dwell
}

func (c *countdown) clear() {
	c.step = 0
	c.timer = 0
}

func (c *countdown) label() string {
	return CountdownLabels[c.step]
}

func (c *countdown) visible() bool {
	return c.timer > 0
}

// advance runs the timer; changed reports a new label, done reports the last dwell expired
func (c *countdown) advance(dt float64) (changed, done bool) {
	c.timer -= dt
	if c.timer > 0 {
		return false, false
	}
	if c.step == len(CountdownLabels)-1 {
		c.timer = 0
		return false, true
	}
	c.step++
	c.timer = c.dwell
	return true, false
}
