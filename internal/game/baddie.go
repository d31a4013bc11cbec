package game

import "github.com/vovakirdan/flappy-dragon/internal/config"

// Baddie is a roaming enemy at a single cell.
type Baddie struct {
	X, Y int
}

// NewBaddie creates a baddie at (x, y).
func NewBaddie(x, y int) Baddie {
	return Baddie{X: x, Y: y}
}

// Touches reports whether the baddie occupies the player's cell.
func (b Baddie) Touches(p Player) bool {
	return b.X == p.X && b.Y == p.Y
}

// Hit is called when the player touches the baddie. It has no effect:
// touching a baddie neither ends the run nor changes the score.
func (b *Baddie) Hit(p *Player) {}

// spawnHorde rolls a horde size and builds horde-1 baddies ahead of the
// player. Each new baddie replaces the previous one, so only the last is
// returned. ok is false when the roll produced no baddie.
func spawnHorde(p Player, fieldWidth int, rules config.AdversaryConfig, rng RNG) (last Baddie, horde int, ok bool) {
	horde = rng.Range(rules.HordeMin, rules.HordeMax)
	for i := 1; i < horde; i++ {
		last = NewBaddie(p.X+fieldWidth+rules.SpawnOffset, rng.Range(rules.YMin, rules.YMax))
		ok = true
	}
	return last, horde, ok
}
