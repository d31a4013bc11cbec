package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the hard-coded default configuration.
// It matches defaults/dragon.yaml.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Field: FieldConfig{
			Width:  80,
			Height: 50,
		},
		Physics: PhysicsConfig{
			FrameDurationMs: 75,
			Gravity:         0.2,
			MaxVelocity:     2.0,
			ThrustVelocity:  -2.0,
		},
		Player: PlayerConfig{
			StartX:       5,
			StartY:       25,
			ScreenColumn: 3,
		},
		Obstacles: ObstacleConfig{
			BaseSize: 20,
			MinSize:  2,
			GapMin:   10,
			GapMax:   40,
		},
		Adversaries: AdversaryConfig{
			HordeMin:    1,
			HordeMax:    5,
			SpawnOffset: 20,
			YMin:        10,
			YMax:        45,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
