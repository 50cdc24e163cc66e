package audio

import "github.com/lixenwraith/vi-kart/constant"

// Config controls sound output
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns audio on at the default volume with every cue at unity
func DefaultConfig() Config {
	vols := make(map[Cue]float64, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		vols[c] = 1.0
	}
	// Noise carries more energy than the tones
	vols[CueWhoosh] = 0.5
	return Config{
		Enabled:      true,
		MasterVolume: constant.AudioDefaultVolume,
		SampleRate:   constant.AudioSampleRate,
		CueVolumes:   vols,
	}
}

// volume is the final gain for c
func (c Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
