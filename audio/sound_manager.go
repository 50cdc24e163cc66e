// Package audio synthesizes race sound cues with beep and plays them through the speaker
package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/race"
	"github.com/lixenwraith/vi-kart/status"
)

// SoundManager plays cues for race events
// Without a working speaker every call is a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	initialized bool
	muted       bool

	statPlayed *atomic.Int64
	statMuted  *atomic.Int64
}

// NewSoundManager creates a manager, Initialize opens the device
func NewSoundManager(cfg Config, reg *status.Registry) *SoundManager {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		statPlayed: reg.Ints.Get("audio.played"),
		statMuted:  reg.Ints.Get("audio.muted"),
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio returns nil and stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops every queued sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.sink = nil
	sm.initialized = false
}

// Play queues c, returns false when nothing was queued
func (sm *SoundManager) Play(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.sink == nil {
		return false
	}
	if sm.muted {
		sm.statMuted.Add(1)
		return false
	}
	s := GetSoundEffect(c, sm.cfg)
	if s == nil {
		return false
	}
	sm.sink(s)
	sm.statPlayed.Add(1)
	return true
}

// OnRaceEvent implements race.Listener
func (sm *SoundManager) OnRaceEvent(e race.Event) {
	if c, ok := CueFor(e); ok {
		sm.Play(c)
	}
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	log.Printf("audio: muted=%v", sm.muted)
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
