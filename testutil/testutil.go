package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/doubleint"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// InRange returns a pseudo-random value uniformly distributed over the
// double-safe range [doubleint.Min, doubleint.Max], both bounds included.
func (r *RNG) InRange() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inRangeLocked()
}

// inRangeLocked is the internal implementation (caller must hold lock).
func (r *RNG) inRangeLocked() int64 {
	// The span 2^54+1 fits an int64, so a single Int63n draw covers the
	// whole range without bias.
	return doubleint.Min + r.rand.Int63n(doubleint.Max-doubleint.Min+1)
}

// OutOfRange returns a pseudo-random int64 outside the double-safe range,
// on a randomly chosen side of it.
func (r *RNG) OutOfRange() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	mag := doubleint.Max + 1 + r.rand.Int63n(math.MaxInt64-doubleint.Max)
	if r.rand.Intn(2) == 0 {
		return -mag
	}

	return mag
}

// Ints generates n values uniformly distributed over the double-safe range.
// Locks only once per call (preferred over calling InRange in a loop).
func (r *RNG) Ints(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vals := make([]int64, n)
	for i := range vals {
		vals[i] = r.inRangeLocked()
	}

	return vals
}

// DecimalStrings generates n decimal strings of in-range values, as inputs
// for parser tests and benchmarks.
func (r *RNG) DecimalStrings(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	vals := make([]string, n)
	for i := range vals {
		vals[i] = strconv.FormatInt(r.inRangeLocked(), 10)
	}

	return vals
}
