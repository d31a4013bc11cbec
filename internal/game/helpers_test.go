package game

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// stubRNG replays values in order, wrapping around, clamped into the
// requested range.
type stubRNG struct {
	values []int
	calls  int
}

func (s *stubRNG) Range(lo, hi int) int {
	if len(s.values) == 0 || hi <= lo {
		return lo
	}
	v := s.values[s.calls%len(s.values)]
	s.calls++
	if v < lo {
		return lo
	}
	if v >= hi {
		return hi - 1
	}
	return v
}

// steady returns an RNG that always answers 25: gap center 25, horde 4,
// baddie row 25.
func steady() *stubRNG {
	return &stubRNG{values: []int{25}}
}

func defaultCfg() config.DragonConfig {
	return config.DefaultDragonConfig()
}

// physicsTick is longer than the default frame duration, so every session
// step with it runs exactly one physics step.
const physicsTick = 80.0
