package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame cadence of the terminal loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameStep bounds a single simulation step after stalls or pauses
	MaxFrameStep = 50 * time.Millisecond

	// MaxFrameStepSeconds is MaxFrameStep as used by the simulation
	MaxFrameStepSeconds = 0.05
)

// Input
const (
	// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
	// Terminals never report key release, auto-repeat keeps the key alive
	KeyHoldWindow = 300 * time.Millisecond

	// KeyEventBuffer is the capacity of the terminal event channel
	KeyEventBuffer = 256
)
