package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-kart/engine"
)

// HeldKeys is a KeySet fed from terminal key events
// Terminals report presses and auto-repeats but no releases, so a key stays pressed
// for the hold window after its last event
// Safe for one writer goroutine (event poller) and one reader (game loop)
type HeldKeys struct {
	mu     sync.Mutex
	clock  engine.TimeProvider
	window time.Duration
	last   map[Key]time.Time
}

// NewHeldKeys creates an empty set with the given hold window
func NewHeldKeys(clock engine.TimeProvider, window time.Duration) *HeldKeys {
	return &HeldKeys{
		clock:  clock,
		window: window,
		last:   make(map[Key]time.Time),
	}
}

// Press marks k as pressed now, extending its hold
func (h *HeldKeys) Press(k Key) {
	now := h.clock.Now()
	h.mu.Lock()
	h.last[k] = now
	h.mu.Unlock()
}

// Release drops k immediately, for backends that do report key-up
func (h *HeldKeys) Release(k Key) {
	h.mu.Lock()
	delete(h.last, k)
	h.mu.Unlock()
}

// Clear drops every key, used on focus loss and race reset
func (h *HeldKeys) Clear() {
	h.mu.Lock()
	clear(h.last)
	h.mu.Unlock()
}

// Pressed implements KeySet
func (h *HeldKeys) Pressed(k Key) bool {
	now := h.clock.Now()
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.last[k]
	if !ok {
		return false
	}
	if now.Sub(t) >= h.window {
		delete(h.last, k)
		return false
	}
	return true
}
