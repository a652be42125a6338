package snake

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of the game state taken at the end of a tick.
type Snapshot struct {
	Tick       uint64
	RoundTicks uint64
	Variant    string
	Body       []Position // Tail first, head last
	Direction  Direction
	Fruit      Fruit
	Score      int
	HighScore  int
	Beat       bool
	Status     Status
	Collision  Collision
	Paused     bool
	Bounds     Bounds
}

// Head returns the newest body cell.
func (s Snapshot) Head() Position {
	if len(s.Body) == 0 {
		return Position{}
	}
	return s.Body[len(s.Body)-1]
}

// Snapshot returns a copy of the current state that shares no memory with g.
func (g *Game) Snapshot() Snapshot {
	var cells []Position
	if g.body != nil {
		cells = g.body.Cells()
	}
	return Snapshot{
		Tick:       g.tick,
		RoundTicks: g.roundTicks,
		Variant:    g.variant.ID,
		Body:       cells,
		Direction:  g.direction,
		Fruit:      g.fruit,
		Score:      g.score.Score,
		HighScore:  g.score.HighScore,
		Beat:       g.score.Beat,
		Status:     g.status,
		Collision:  g.collision,
		Paused:     g.paused,
		Bounds:     g.settings.bounds,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Round ticks: %d, Status: %s\n", s.Tick, s.RoundTicks, s.Status)
	fmt.Fprintf(&b, "Score: %d, High: %d, Beat: %v\n", s.Score, s.HighScore, s.Beat)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: %s\n", len(s.Body), s.Direction, s.Head())
	fmt.Fprintf(&b, "Fruit: %s present=%v, Collision: %s\n", s.Fruit.Pos, s.Fruit.Present, s.Collision)
	return b.String()
}
