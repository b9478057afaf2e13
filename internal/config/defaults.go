package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  10,
			Height: 10,
		},
		Movement: MovementConfig{
			TickPeriodMS: 150,
		},
		Sizes: SizesConfig{
			Head: 0.8,
			Body: 0.65,
			Food: 0.8,
		},
		Start: StartConfig{
			Head:      Cell{X: 3, Y: 3},
			Direction: "up",
			Body:      []Cell{{X: 3, Y: 2}},
		},
		Food: FoodConfig{
			Sampling: SamplingUniform,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
