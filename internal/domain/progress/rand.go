package progress

import (
	"math/rand/v2"
	"sync"
)

// Rand is the sampling source used for sub-metrics the status does not pin.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// lockedRand serialises access to a Rand that is not goroutine safe.
type lockedRand struct {
	mu  sync.Mutex
	src Rand
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// globalRand is safe for concurrent use as-is.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }
