package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trades latency for underruns
	AudioBufferDuration = 100 * time.Millisecond

	AudioDefaultVolume = 0.6
)

// Countdown tick: short sine blip per label
const (
	TickSoundFreq     = 660.0
	TickSoundDuration = 90 * time.Millisecond
	TickSoundAttack   = 5 * time.Millisecond
	TickSoundRelease  = 40 * time.Millisecond
)

// GO: same blip an octave up, held longer
const (
	GoSoundFreq     = 1320.0
	GoSoundDuration = 350 * time.Millisecond
	GoSoundAttack   = 5 * time.Millisecond
	GoSoundRelease  = 200 * time.Millisecond
)

// Bell, item box pickup
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Whoosh, turbo fired
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Chime, lap completed: rising fifth
const (
	ChimeSoundNoteDuration = 120 * time.Millisecond
	ChimeSoundAttack       = 5 * time.Millisecond
	ChimeSoundRelease      = 60 * time.Millisecond
)

// Coin, kart finished
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)
