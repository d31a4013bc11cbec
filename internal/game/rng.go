package game

import (
	"math/rand"
	"time"
)

// RNG supplies uniform integers. Range returns a value in [lo, hi).
type RNG interface {
	Range(lo, hi int) int
}

// RandRNG is the default RNG backed by math/rand.
type RandRNG struct {
	r *rand.Rand
}

// NewRandRNG creates a seeded RNG. A zero seed uses the current time.
func NewRandRNG(seed int64) *RandRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandRNG{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform integer in [lo, hi). It returns lo when the range is empty.
func (g *RandRNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}
