package snake

import (
	"errors"
	"fmt"
)

// Reference board geometry.
const (
	DefaultCellSize = 25
	DefaultWidth    = 800
	DefaultHeight   = 600
)

// ErrInvalidBounds is wrapped by Bounds.Validate failures.
var ErrInvalidBounds = errors.New("snake: invalid bounds")

// Position is the top-left anchor of one grid cell, in board units.
type Position struct {
	X, Y int
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by k.
func (p Position) Scale(k int) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Aligned reports whether both coordinates are multiples of cellSize.
func (p Position) Aligned(cellSize int) bool {
	return p.X%cellSize == 0 && p.Y%cellSize == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds describes the board. Valid head positions satisfy
// 0 <= X <= Width and 0 <= Y <= Height; both edges are inclusive.
type Bounds struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultBounds returns the 800x600 board with 25-unit cells.
func DefaultBounds() Bounds {
	return Bounds{Width: DefaultWidth, Height: DefaultHeight, CellSize: DefaultCellSize}
}

// Validate checks that the bounds are grid-aligned and leave at least one
// interior cell on each axis for fruit placement.
func (b Bounds) Validate() error {
	if b.CellSize <= 0 || b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d with cell %d", ErrInvalidBounds, b.Width, b.Height, b.CellSize)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("%w: %dx%d not a multiple of cell %d", ErrInvalidBounds, b.Width, b.Height, b.CellSize)
	}
	if len(b.Columns()) == 0 || len(b.Rows()) == 0 {
		return fmt.Errorf("%w: %dx%d has no interior cell", ErrInvalidBounds, b.Width, b.Height)
	}
	return nil
}

// Outside reports whether p lies beyond the board edges.
func (b Bounds) Outside(p Position) bool {
	return p.X < 0 || p.X > b.Width || p.Y < 0 || p.Y > b.Height
}

// Columns returns the x grid lines strictly inside the board, excluding the
// outermost line on each side: CellSize, 2*CellSize, ... < Width-CellSize.
func (b Bounds) Columns() []int {
	return b.lines(b.Width)
}

// Rows is the y counterpart of Columns.
func (b Bounds) Rows() []int {
	return b.lines(b.Height)
}

func (b Bounds) lines(extent int) []int {
	if b.CellSize <= 0 {
		return nil
	}
	var out []int
	for v := b.CellSize; v < extent-b.CellSize; v += b.CellSize {
		out = append(out, v)
	}
	return out
}

// GridSize returns how many cell columns and rows a head can occupy.
func (b Bounds) GridSize() (cols, rows int) {
	return b.Width/b.CellSize + 1, b.Height/b.CellSize + 1
}

// Cell converts a position to its column and row index.
func (b Bounds) Cell(p Position) (col, row int) {
	return p.X / b.CellSize, p.Y / b.CellSize
}
