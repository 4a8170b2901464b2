package orbit

import (
	"math/rand/v2"
	"sync"
)

// Source is the random generator used by the simulation.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSource returns a goroutine-safe Source. A zero seed yields the
// runtime's global generator.
func NewSource(seed int64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return &lockedSource{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Uniform draws from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Jitter draws from [-amp, amp).
func Jitter(src Source, amp float64) float64 {
	return Uniform(src, -amp, amp)
}
