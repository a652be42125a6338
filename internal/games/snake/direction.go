package snake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-snake/internal/core"
)

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("snake: unknown direction")

// Direction represents the snake's movement direction.
// The zero value is DirRight, the heading every round starts with.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Unit returns the one-cell step for d with y growing downward.
func (d Direction) Unit() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	default:
		return Position{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "down", "left" or "right", ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// DirectionFromAction maps a movement action to its heading.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// Controller buffers the most recent direction request until the head sits
// on a grid line.
type Controller struct {
	pending    Direction
	hasPending bool
}

// RequestDirection records d as the pending direction. Last write wins.
func (c *Controller) RequestDirection(d Direction) {
	c.pending = d
	c.hasPending = true
}

// Pending returns the buffered request, if any.
func (c *Controller) Pending() (Direction, bool) {
	return c.pending, c.hasPending
}

// Resolve returns the direction to apply this tick.
// A request is only considered when head is grid-aligned; otherwise it stays
// buffered. A considered request is consumed whether it is committed or
// rejected as a reversal of current.
func (c *Controller) Resolve(current Direction, head Position, cellSize int) Direction {
	if !c.hasPending || !head.Aligned(cellSize) {
		return current
	}

	next := c.pending
	c.hasPending = false

	if next == current.Opposite() {
		return current
	}
	return next
}

// Reset drops any pending request.
func (c *Controller) Reset() {
	c.pending = DirRight
	c.hasPending = false
}
