package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration: an 800x600
// board of 25-unit cells, a four-cell body heading right, nine steps per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    800,
			Height:   600,
			CellSize: 25,
		},
		Snake: StartConfig{
			Start: [][2]int{
				{50, 50},
				{75, 50},
				{100, 50},
				{125, 50},
			},
			Direction: "right",
		},
		Fruit: FruitConfig{
			Overlap:     "avoid",
			MaxAttempts: 64,
		},
		Timing: TimingConfig{
			TickRate: 9,
		},
	}
}
