package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "VI_KART_AUDIO_ENABLED"
	EnvMasterVolume = "VI_KART_MASTER_VOLUME"
	EnvLaps         = "VI_KART_LAPS"
)

func lookupEnv(key string) string {
	return os.Getenv(key)
}

// applyEnv overlays environment settings on cfg
// Malformed audio values are ignored; a malformed lap count is an error since it changes the race
func applyEnv(cfg *Config, getenv func(string) string) error {
	if enabled := getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// 0-100, clamped
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = min(max(val, 0), 100)
		}
	}

	if laps := getenv(EnvLaps); laps != "" {
		val, err := strconv.Atoi(laps)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvLaps, laps, err)
		}
		cfg.Race.Laps = val
	}
	return nil
}
