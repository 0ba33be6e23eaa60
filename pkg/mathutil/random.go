package mathutil

import (
	"math"
	"math/rand/v2"
)

// DefaultSeed is the state a Rand starts from when created with NewRand(DefaultSeed).
const DefaultSeed uint32 = 1234567

// Source yields uniformly distributed floats in [0, 1).
// *Rand and *rand.Rand from math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns the platform's default random source.
func DefaultSource() Source {
	return globalSource{}
}

// RandInt returns a uniform integer in [low, high].
func RandInt(low, high int) int {
	return low + int(math.Floor(rand.Float64()*float64(high-low+1)))
}

// RandFloat returns a uniform float in [low, high).
func RandFloat(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}

// RandFloatSpread returns a uniform float in [-spread/2, spread/2).
func RandFloatSpread(spread float64) float64 {
	return spread * (0.5 - rand.Float64())
}

// Rand is a deterministic mulberry32 stream. The same seed always produces
// the same sequence, bit for bit. A Rand is not safe for concurrent use;
// give each goroutine its own.
type Rand struct {
	state uint32
}

// NewRand returns a stream seeded with seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Seed resets the stream so the next draw starts the sequence for seed.
func (r *Rand) Seed(seed uint32) {
	r.state = seed
}

// Next advances the stream and returns a float in [0, 1).
func (r *Rand) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}

// Float64 is Next, so a *Rand can be used as a Source.
func (r *Rand) Float64() float64 {
	return r.Next()
}
