package game

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Player is the dragon. X is its position in scroll space, Y its row.
type Player struct {
	X        int
	Y        int
	Velocity float64

	physics config.PhysicsConfig
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(x, y int, physics config.PhysicsConfig) Player {
	return Player{X: x, Y: y, physics: physics}
}

// GravityAndMove runs one physics step.
//
// Velocity grows by gravity up to the cap. The row advances by
// int(Velocity), which truncates toward zero: rising ticks move less than
// the velocity suggests (-1.8 moves one row). The top of the field clamps
// Y to 0; there is no bottom clamp, falling out is checked by the session.
func (p *Player) GravityAndMove() {
	p.Velocity = core.ClampF(p.Velocity+p.physics.Gravity, p.physics.ThrustVelocity, p.physics.MaxVelocity)
	p.Y = core.Max(p.Y+int(p.Velocity), 0)
	p.X++
}

// Flap replaces the current velocity with the thrust velocity.
// Repeated flaps do not stack.
func (p *Player) Flap() {
	p.Velocity = p.physics.ThrustVelocity
}

// MoveForward is intentionally inert.
func (p *Player) MoveForward() {
	p.X += 0
}

// MoveBackward steps the player one column back.
func (p *Player) MoveBackward() {
	p.X--
}
