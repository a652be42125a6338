// Package config provides YAML-based configuration loading for the snake
// simulation and its terminal driver.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// MinStartLength is the shortest body a round may start with.
const MinStartLength = 4

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  StartConfig  `yaml:"snake"`
	Fruit  FruitConfig  `yaml:"fruit"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the board extents in board units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// StartConfig defines the body and heading every round starts from.
type StartConfig struct {
	Start     [][2]int `yaml:"start"`     // Oldest cell first, head last
	Direction string   `yaml:"direction"` // up, down, left or right
}

// FruitConfig defines fruit placement.
type FruitConfig struct {
	Overlap     string `yaml:"overlap"`      // "avoid" or "allow"
	MaxAttempts int    `yaml:"max_attempts"` // Resample budget for "avoid"
}

// TimingConfig defines the fixed step rate of the driver.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Steps per second
}

var (
	validDirections = []string{"up", "down", "left", "right"}
	validOverlaps   = []string{"avoid", "allow"}

	// Unit steps per direction, y growing downwards.
	directionSteps = map[string][2]int{
		"up":    {0, -1},
		"down":  {0, 1},
		"left":  {-1, 0},
		"right": {1, 0},
	}
)

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, b.CellSize)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalidConfig, b.Width, b.Height)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell_size %d",
			ErrInvalidConfig, b.Width, b.Height, b.CellSize)
	}
	// Fruit lines are strictly inside the board, so each axis needs three cells.
	if b.Width < 3*b.CellSize || b.Height < 3*b.CellSize {
		return fmt.Errorf("%w: board %dx%d leaves no interior cell", ErrInvalidConfig, b.Width, b.Height)
	}

	if len(c.Snake.Start) < MinStartLength {
		return fmt.Errorf("%w: start body needs at least %d cells, got %d",
			ErrInvalidConfig, MinStartLength, len(c.Snake.Start))
	}
	seen := make(map[[2]int]bool, len(c.Snake.Start))
	for i, cell := range c.Snake.Start {
		x, y := cell[0], cell[1]
		if x%b.CellSize != 0 || y%b.CellSize != 0 {
			return fmt.Errorf("%w: start cell %d (%d,%d) is not grid-aligned", ErrInvalidConfig, i, x, y)
		}
		if x < 0 || x > b.Width || y < 0 || y > b.Height {
			return fmt.Errorf("%w: start cell %d (%d,%d) is outside the board", ErrInvalidConfig, i, x, y)
		}
		if seen[cell] {
			return fmt.Errorf("%w: start cell %d (%d,%d) is repeated", ErrInvalidConfig, i, x, y)
		}
		seen[cell] = true
	}
	for i := 1; i < len(c.Snake.Start); i++ {
		prev, cur := c.Snake.Start[i-1], c.Snake.Start[i]
		if core.Abs(cur[0]-prev[0])+core.Abs(cur[1]-prev[1]) != b.CellSize {
			return fmt.Errorf("%w: start cells %d and %d are not adjacent", ErrInvalidConfig, i-1, i)
		}
	}

	if !oneOf(c.Snake.Direction, validDirections) {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, c.Snake.Direction)
	}
	head := c.Snake.Start[len(c.Snake.Start)-1]
	neck := c.Snake.Start[len(c.Snake.Start)-2]
	step := directionSteps[strings.ToLower(strings.TrimSpace(c.Snake.Direction))]
	if head[0]+step[0]*b.CellSize == neck[0] && head[1]+step[1]*b.CellSize == neck[1] {
		return fmt.Errorf("%w: direction %q points into the body", ErrInvalidConfig, c.Snake.Direction)
	}
	if !oneOf(c.Fruit.Overlap, validOverlaps) {
		return fmt.Errorf("%w: unknown fruit overlap policy %q", ErrInvalidConfig, c.Fruit.Overlap)
	}
	if c.Fruit.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be at least 1, got %d", ErrInvalidConfig, c.Fruit.MaxAttempts)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	}
	return nil
}

func oneOf(v string, set []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
