package core

// Color is the role of a screen cell. The host decides how each role looks,
// so the same frame can be painted for any terminal profile.
type Color uint8

const (
	ColorDefault Color = iota // Plain text and empty space
	ColorWall                 // Obstacle walls
	ColorDragon               // The player
	ColorBaddie               // Adversaries
	ColorTitle                // Screen headings
	ColorHUD                  // Score and hints while playing
)
