package game

import "github.com/vovakirdan/flappy-dragon/internal/config"

// Obstacle is a wall with one vertical gap at scroll column X.
type Obstacle struct {
	X    int // Scroll-space column
	GapY int // Center row of the gap
	Size int // Gap size; the gap spans GapY-Size/2 .. GapY+Size/2
}

// NewObstacle builds an obstacle at x. The gap shrinks with score.
func NewObstacle(x, score int, rules config.ObstacleConfig, rng RNG) Obstacle {
	return Obstacle{
		X:    x,
		GapY: rng.Range(rules.GapMin, rules.GapMax),
		Size: rules.GapSize(score),
	}
}

// HalfSize returns half the gap size, rounded down.
func (o Obstacle) HalfSize() int {
	return o.Size / 2
}

// HitObstacle reports whether the player is inside the wall.
// Only the obstacle's own column can collide; the player moves one column
// per physics step so it can never skip over it.
func (o Obstacle) HitObstacle(p Player) bool {
	half := o.HalfSize()
	doesXMatch := p.X == o.X
	aboveGap := p.Y < o.GapY-half
	belowGap := p.Y > o.GapY+half
	return doesXMatch && (aboveGap || belowGap)
}
