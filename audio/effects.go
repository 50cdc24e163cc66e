package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-kart/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq   float64
	phase  float64
	remain int
	wave   WaveType
	rate   beep.SampleRate
}

// NewOscillator creates a wave of the given length, unity gain
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		remain: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remain <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.remain <= 0 {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.remain--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope applies attack/release over duration and cuts the stream there
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	left := e.total - e.position
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.release > 0:
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, silent at or below zero
// effects.Volume is logarithmic, math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sineBlip is a short enveloped pure tone
func sineBlip(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		// Above Nyquist for this rate, fall back to the hand-rolled oscillator
		tone = NewOscillator(freq, duration, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(duration), tone), duration, attack, release, rate)
}

// CreateTickSound is the countdown blip
func CreateTickSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := sineBlip(constant.TickSoundFreq, constant.TickSoundDuration, constant.TickSoundAttack, constant.TickSoundRelease, rate)
	return newVolume(blip, cfg.volume(CueTick))
}

// CreateGoSound is the release blip, an octave over the tick
func CreateGoSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := sineBlip(constant.GoSoundFreq, constant.GoSoundDuration, constant.GoSoundAttack, constant.GoSoundRelease, rate)
	return newVolume(blip, cfg.volume(CueGo))
}

// CreateBellSound is a short ding, fundamental plus octave
func CreateBellSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5
	fund := NewOscillator(880.0, constant.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.BellSoundDuration, constant.BellSoundAttack, constant.BellSoundFundamentalRelease, rate)

	// A6
	over := NewOscillator(1760.0, constant.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.BellSoundDuration, constant.BellSoundAttack, constant.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(CueBell))
}

// CreateWhooshSound is a swell of noise
func CreateWhooshSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, constant.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constant.WhooshSoundDuration, constant.WhooshSoundAttack, constant.WhooshSoundRelease, rate)
	return newVolume(shaped, cfg.volume(CueWhoosh))
}

// CreateChimeSound is a rising fifth, C6 then G6
func CreateChimeSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.ChimeSoundNoteDuration
	n1 := sineBlip(1046.5, d, constant.ChimeSoundAttack, constant.ChimeSoundRelease, rate)
	n2 := sineBlip(1568.0, d, constant.ChimeSoundAttack, constant.ChimeSoundRelease, rate)
	return newVolume(beep.Seq(n1, n2), cfg.volume(CueChime))
}

// CreateCoinSound is the two-note square chime, B5 then E6
func CreateCoinSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(987.77, constant.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.CoinSoundNote1Duration, constant.CoinSoundAttack, constant.CoinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constant.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.CoinSoundNote2Duration, constant.CoinSoundAttack, constant.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(CueCoin))
}

// GetSoundEffect builds a fresh streamer for c, nil for unknown cues
func GetSoundEffect(c Cue, cfg Config) beep.Streamer {
	switch c {
	case CueTick:
		return CreateTickSound(cfg)
	case CueGo:
		return CreateGoSound(cfg)
	case CueBell:
		return CreateBellSound(cfg)
	case CueWhoosh:
		return CreateWhooshSound(cfg)
	case CueChime:
		return CreateChimeSound(cfg)
	case CueCoin:
		return CreateCoinSound(cfg)
	}
	return nil
}
