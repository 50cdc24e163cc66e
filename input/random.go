package input

import (
	"math/rand"
	"time"
)

// RandSource is the random stream behind AI decisions, injectable for deterministic tests
type RandSource interface {
	Float64() float64
}

// NewRandSource returns a time-seeded source for live play
func NewRandSource() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// FixedRand always returns the same value
// FixedRand(0) makes every chance succeed, FixedRand(1) makes every chance fail
type FixedRand float64

// Float64 implements RandSource
func (f FixedRand) Float64() float64 {
	return float64(f)
}
