package sim

import "math/rand"

// RNG is the single seeded variate stream that drives one simulation run.
// Every random decision in a run (station selection, service durations,
// interarrival times, backoff draws) consumes this one stream, so two runs
// constructed with the same seed and configuration draw identical sequences
// and produce bit-for-bit identical results.
//
// Thread-safety: NOT thread-safe. Runs are single-threaded and fully
// independent; each gets its own RNG.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a stream seeded with the given value.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, src: rand.New(rand.NewSource(seed))}
}

// Uniform returns the next uniform deviate in [0, 1).
func (r *RNG) Uniform() float64 {
	return r.src.Float64()
}

// Exponential returns the next exponentially-distributed deviate with the
// given mean. The result is >= 0.
func (r *RNG) Exponential(mean float64) float64 {
	return r.src.ExpFloat64() * mean
}

// Seed returns the seed this stream was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}
