package config

import "github.com/vovakirdan/flappy-dragon/internal/core"

// GapSize returns the obstacle gap size for the given score.
// Every point shrinks the gap by one cell down to MinSize, so difficulty
// never decreases with score and the gap never closes.
func (o ObstacleConfig) GapSize(score int) int {
	return core.Max(o.MinSize, o.BaseSize-score)
}
