// Package config loads game settings from an optional TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-kart/audio"
	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/input"
	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

// ErrInvalidConfig reports settings that cannot start a race
var ErrInvalidConfig = errors.New("invalid config")

// PlayerCount is the number of karts on the grid
const PlayerCount = 2

// Config is the full game configuration
type Config struct {
	Track    TrackConfig    `toml:"track"`
	Race     RaceConfig     `toml:"race"`
	Kart     KartConfig     `toml:"kart"`
	Players  []PlayerConfig `toml:"player"`
	Audio    AudioConfig    `toml:"audio"`
	Controls ControlsConfig `toml:"controls"`
	Input    InputConfig    `toml:"input"`
}

// TrackConfig is the ring geometry in world pixels
type TrackConfig struct {
	CenterX       float64 `toml:"center_x"`
	CenterY       float64 `toml:"center_y"`
	InnerRadius   float64 `toml:"inner_radius"`
	OuterRadius   float64 `toml:"outer_radius"`
	GateTolerance float64 `toml:"gate_tolerance"`
	Boxes         int     `toml:"boxes"`
	BoxRingOffset float64 `toml:"box_ring_offset"`
}

// RaceConfig holds race rules
type RaceConfig struct {
	Laps int `toml:"laps"`
}

// KartConfig is the shared kart tuning
type KartConfig struct {
	Accel       float64 `toml:"accel"`
	MaxSpeed    float64 `toml:"max_speed"`
	SteerRate   float64 `toml:"steer_rate"`
	Friction    float64 `toml:"friction"`
	OffFriction float64 `toml:"off_friction"`
}

// PlayerConfig names one kart and its keys
type PlayerConfig struct {
	Name  string `toml:"name"`
	AI    bool   `toml:"ai"`
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Item  string `toml:"item"`
}

// AudioConfig is the sound section, volume in percent
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume"`
}

// ControlsConfig binds game-level actions, each to one or more keys
type ControlsConfig struct {
	Start    []string `toml:"start"`
	ToggleAI []string `toml:"toggle_ai"`
	Mute     []string `toml:"mute"`
	Quit     []string `toml:"quit"`
}

// InputConfig tunes terminal key handling
type InputConfig struct {
	HoldMillis int `toml:"hold_ms"`
}

// Default returns the stock two-player setup
func Default() *Config {
	p1, p2 := input.Player1Binding(), input.Player2Binding()
	tn := kart.DefaultTuning()
	return &Config{
		Track: TrackConfig{
			CenterX:       constant.TrackCenterX,
			CenterY:       constant.TrackCenterY,
			InnerRadius:   constant.TrackInnerRadius,
			OuterRadius:   constant.TrackOuterRadius,
			GateTolerance: constant.GateTolerance,
			Boxes:         constant.BoxCount,
			BoxRingOffset: constant.BoxRingOffset,
		},
		Race: RaceConfig{Laps: constant.LapsToWin},
		Kart: KartConfig{
			Accel:       tn.Accel,
			MaxSpeed:    tn.MaxSpeed,
			SteerRate:   tn.SteerRate,
			Friction:    tn.Friction,
			OffFriction: tn.OffFriction,
		},
		Players: []PlayerConfig{
			playerFromBinding("Mario", p1),
			playerFromBinding("Luigi", p2),
		},
		Audio: AudioConfig{Enabled: true, Volume: int(constant.AudioDefaultVolume * 100)},
		Controls: ControlsConfig{
			Start:    []string{"F2", "KeyN"},
			ToggleAI: []string{"KeyI"},
			Mute:     []string{"KeyM"},
			Quit:     []string{string(input.KeyEscape)},
		},
		Input: InputConfig{HoldMillis: int(constant.KeyHoldWindow / time.Millisecond)},
	}
}

func playerFromBinding(name string, b input.Binding) PlayerConfig {
	return PlayerConfig{
		Name:  name,
		Up:    string(b.Up),
		Down:  string(b.Down),
		Left:  string(b.Left),
		Right: string(b.Right),
		Item:  string(b.Item),
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		// Players replace the default list wholesale when the file has any
		cfg.Players = nil
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
		}
		if len(cfg.Players) == 0 {
			cfg.Players = Default().Players
		}
	}
	if err := applyEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a race
func (c *Config) Validate() error {
	tr, err := c.BuildTrack()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Track.Boxes < 0 {
		return fmt.Errorf("%w: box count %d is negative", ErrInvalidConfig, c.Track.Boxes)
	}
	if c.Race.Laps < 1 {
		return fmt.Errorf("%w: laps %d must be at least 1", ErrInvalidConfig, c.Race.Laps)
	}
	if err := c.Tuning().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// The gate tells a forward crossing from a wrap at the far side only while one step stays under a quarter turn
	if arc := c.Kart.MaxSpeed * constant.MaxFrameStepSeconds / tr.MidRadius(); arc >= vmath.HalfPi {
		return fmt.Errorf("%w: max speed %v covers %.2f rad per step, must stay under %.2f",
			ErrInvalidConfig, c.Kart.MaxSpeed, arc, vmath.HalfPi)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: audio volume %d outside 0-100", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Input.HoldMillis <= 0 {
		return fmt.Errorf("%w: hold window %dms must be positive", ErrInvalidConfig, c.Input.HoldMillis)
	}

	if len(c.Players) != PlayerCount {
		return fmt.Errorf("%w: need exactly %d players, got %d", ErrInvalidConfig, PlayerCount, len(c.Players))
	}
	names := make(map[string]bool, len(c.Players))
	bindings := make([]input.Binding, len(c.Players))
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidConfig, i+1)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true
		bindings[i] = p.Binding()
	}
	if err := input.ValidateBindings(bindings...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return c.validateControls(bindings)
}

// validateControls checks action keys are known and never shadow a driving key
func (c *Config) validateControls(bindings []input.Binding) error {
	owner := make(map[input.Key]string)
	for i, b := range bindings {
		for _, k := range b.Keys() {
			owner[k] = c.Players[i].Name
		}
	}
	actions := []struct {
		name string
		keys []string
	}{
		{"start", c.Controls.Start},
		{"toggle_ai", c.Controls.ToggleAI},
		{"mute", c.Controls.Mute},
		{"quit", c.Controls.Quit},
	}
	for _, a := range actions {
		for _, s := range a.keys {
			k := input.Key(s)
			if !k.Valid() {
				return fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, a.name, s)
			}
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("%w: %s: key %q already used by %s", ErrInvalidConfig, a.name, s, prev)
			}
			owner[k] = a.name
		}
	}
	return nil
}

// BuildTrack constructs the validated track geometry
func (c *Config) BuildTrack() (*track.Track, error) {
	t := c.Track
	return track.New(vmath.Vec2{X: t.CenterX, Y: t.CenterY}, t.InnerRadius, t.OuterRadius, t.GateTolerance)
}

// Tuning returns the kart tuning
func (c *Config) Tuning() kart.Tuning {
	k := c.Kart
	return kart.Tuning{
		Accel:       k.Accel,
		MaxSpeed:    k.MaxSpeed,
		SteerRate:   k.SteerRate,
		Friction:    k.Friction,
		OffFriction: k.OffFriction,
	}
}

// Binding returns the player's key binding
func (p PlayerConfig) Binding() input.Binding {
	return input.Binding{
		Up:    input.Key(p.Up),
		Down:  input.Key(p.Down),
		Left:  input.Key(p.Left),
		Right: input.Key(p.Right),
		Item:  input.Key(p.Item),
	}
}

// AudioSettings converts the audio section for the sound manager
func (c *Config) AudioSettings() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = float64(c.Audio.Volume) / 100.0
	return a
}

// HoldWindow is how long a terminal key stays pressed after its last event
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMillis) * time.Millisecond
}

// Keys converts action key names
func Keys(names []string) []input.Key {
	keys := make([]input.Key, len(names))
	for i, n := range names {
		keys[i] = input.Key(n)
	}
	return keys
}
