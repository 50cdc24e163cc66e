package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-kart/status"
)

// StepFunc advances the simulation by dt seconds
type StepFunc func(dt float64)

// FrameDriver invokes one simulation step per frame with elapsed time clamped to maxStep
// Steps run on the caller's goroutine, one at a time
type FrameDriver struct {
	clock    TimeProvider
	interval time.Duration
	maxStep  time.Duration
	step     StepFunc

	last    time.Time
	started bool

	statFrames  *atomic.Int64
	statClamped *atomic.Int64
	statDt      *status.AtomicFloat
	statDtMax   *status.AtomicFloat
}

// NewFrameDriver creates a driver ticking every interval
// A nil registry keeps metrics private to the driver
func NewFrameDriver(clock TimeProvider, interval, maxStep time.Duration, step StepFunc, reg *status.Registry) *FrameDriver {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &FrameDriver{
		clock:       clock,
		interval:    interval,
		maxStep:     maxStep,
		step:        step,
		statFrames:  reg.Ints.Get("engine.frames"),
		statClamped: reg.Ints.Get("engine.clamped"),
		statDt:      reg.Floats.Get("engine.dt_last"),
		statDtMax:   reg.Floats.Get("engine.dt_max"),
	}
}

// Step measures time since the previous step and runs the step func with the clamped delta
// The first call only primes the clock and steps with zero
func (d *FrameDriver) Step() float64 {
	now := d.clock.Now()
	var elapsed time.Duration
	if d.started {
		elapsed = now.Sub(d.last)
	}
	d.last = now
	d.started = true

	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > d.maxStep {
		elapsed = d.maxStep
		d.statClamped.Add(1)
	}

	dt := elapsed.Seconds()
	d.statFrames.Add(1)
	d.statDt.Set(dt)
	d.statDtMax.Max(dt)

	d.step(dt)
	return dt
}

// Run steps on every interval until ctx is done
// before is called ahead of each step on the same goroutine, used to drain control requests
func (d *FrameDriver) Run(ctx context.Context, before func()) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if before != nil {
				before()
			}
			d.Step()
		}
	}
}
