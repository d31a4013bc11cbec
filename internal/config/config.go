// Package config provides YAML-based tuning for the game: play-field size,
// physics constants, difficulty scaling and spawn bands.
package config

import (
	"errors"
	"fmt"
)

// DragonConfig contains all tuning for Flappy Dragon.
type DragonConfig struct {
	Field       FieldConfig     `yaml:"field"`
	Physics     PhysicsConfig   `yaml:"physics"`
	Player      PlayerConfig    `yaml:"player"`
	Obstacles   ObstacleConfig  `yaml:"obstacles"`
	Adversaries AdversaryConfig `yaml:"adversaries"`
}

// FieldConfig defines the play-field in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`  // Also the spawn distance ahead of the player
	Height int `yaml:"height"` // Falling below this row ends the run
}

// PhysicsConfig defines the player's vertical physics.
type PhysicsConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"` // Wall time per physics step
	Gravity         float64 `yaml:"gravity"`           // Velocity added per step
	MaxVelocity     float64 `yaml:"max_velocity"`      // Terminal fall speed
	ThrustVelocity  float64 `yaml:"thrust_velocity"`   // Velocity set by a flap (negative = up)
}

// PlayerConfig defines the player's origin and where it is drawn.
type PlayerConfig struct {
	StartX       int `yaml:"start_x"`
	StartY       int `yaml:"start_y"`
	ScreenColumn int `yaml:"screen_column"`
}

// ObstacleConfig defines gap obstacles.
type ObstacleConfig struct {
	BaseSize int `yaml:"base_size"` // Gap size at score 0
	MinSize  int `yaml:"min_size"`  // Gap size never shrinks below this
	GapMin   int `yaml:"gap_min"`   // Gap center range, inclusive
	GapMax   int `yaml:"gap_max"`   // Gap center range, exclusive
}

// AdversaryConfig defines baddie spawning.
type AdversaryConfig struct {
	HordeMin    int `yaml:"horde_min"`    // Horde roll range, inclusive
	HordeMax    int `yaml:"horde_max"`    // Horde roll range, exclusive
	SpawnOffset int `yaml:"spawn_offset"` // Extra distance past the field width
	YMin        int `yaml:"y_min"`
	YMax        int `yaml:"y_max"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the config describes a playable field.
func (c DragonConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Physics.FrameDurationMs <= 0:
		return fmt.Errorf("%w: frame_duration_ms must be positive", ErrInvalid)
	case c.Physics.MaxVelocity <= 0:
		return fmt.Errorf("%w: max_velocity must be positive", ErrInvalid)
	case c.Physics.Gravity <= 0 || c.Physics.Gravity > c.Physics.MaxVelocity:
		return fmt.Errorf("%w: gravity %v must be in (0, max_velocity]", ErrInvalid, c.Physics.Gravity)
	case c.Physics.ThrustVelocity >= 0:
		return fmt.Errorf("%w: thrust_velocity must be negative (up)", ErrInvalid)
	case c.Player.StartY < 0 || c.Player.StartY > c.Field.Height:
		return fmt.Errorf("%w: start_y %d outside field", ErrInvalid, c.Player.StartY)
	case c.Player.ScreenColumn < 1 || c.Player.ScreenColumn > c.Field.Width-2:
		// The wings sit one column either side
		return fmt.Errorf("%w: screen_column %d must leave room for the wings", ErrInvalid, c.Player.ScreenColumn)
	case c.Obstacles.MinSize < 1:
		return fmt.Errorf("%w: obstacles.min_size must be at least 1", ErrInvalid)
	case c.Obstacles.BaseSize < c.Obstacles.MinSize:
		return fmt.Errorf("%w: obstacles.base_size below min_size", ErrInvalid)
	case c.Obstacles.GapMin >= c.Obstacles.GapMax:
		return fmt.Errorf("%w: empty gap range [%d, %d)", ErrInvalid, c.Obstacles.GapMin, c.Obstacles.GapMax)
	case c.Obstacles.GapMin < 0 || c.Obstacles.GapMax > c.Field.Height:
		return fmt.Errorf("%w: gap range [%d, %d) outside field", ErrInvalid, c.Obstacles.GapMin, c.Obstacles.GapMax)
	case c.Adversaries.HordeMin < 1 || c.Adversaries.HordeMin >= c.Adversaries.HordeMax:
		return fmt.Errorf("%w: bad horde range [%d, %d)", ErrInvalid, c.Adversaries.HordeMin, c.Adversaries.HordeMax)
	case c.Adversaries.YMin >= c.Adversaries.YMax:
		return fmt.Errorf("%w: empty adversary y range [%d, %d)", ErrInvalid, c.Adversaries.YMin, c.Adversaries.YMax)
	case c.Adversaries.YMin < 0 || c.Adversaries.YMax > c.Field.Height:
		return fmt.Errorf("%w: adversary y range [%d, %d) outside field", ErrInvalid, c.Adversaries.YMin, c.Adversaries.YMax)
	}
	return nil
}
