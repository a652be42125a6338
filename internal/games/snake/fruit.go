package snake

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParseOverlapPolicy.
var ErrUnknownPolicy = errors.New("snake: unknown overlap policy")

// DefaultMaxAttempts bounds the resampling loop of OverlapAvoid.
const DefaultMaxAttempts = 64

// Fruit is the collectible on the board. Present implies Pos is grid-aligned
// and strictly inside the bounds.
type Fruit struct {
	Pos     Position
	Present bool
}

// CheckConsumed reports whether a head at head eats f.
func CheckConsumed(head Position, f Fruit) bool {
	return f.Present && head == f.Pos
}

// OverlapPolicy decides whether fruit may appear under the snake.
type OverlapPolicy int

const (
	// OverlapAvoid resamples until the fruit lands on a free cell.
	OverlapAvoid OverlapPolicy = iota
	// OverlapAllow keeps the first draw even if the body covers it.
	OverlapAllow
)

func (p OverlapPolicy) String() string {
	if p == OverlapAllow {
		return "allow"
	}
	return "avoid"
}

// ParseOverlapPolicy parses "avoid" or "allow", ignoring case.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avoid":
		return OverlapAvoid, nil
	case "allow":
		return OverlapAllow, nil
	}
	return OverlapAvoid, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// RandSource is the random source used for placement. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Spawner places fruit on the board.
type Spawner struct {
	rng         RandSource
	policy      OverlapPolicy
	maxAttempts int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandSource, policy OverlapPolicy, maxAttempts int) *Spawner {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Spawner{rng: rng, policy: policy, maxAttempts: maxAttempts}
}

// Policy returns the overlap policy in use.
func (s *Spawner) Policy() OverlapPolicy {
	return s.policy
}

// MaybeRespawn places f when it is not present and reports whether it did.
// Each coordinate is drawn independently and uniformly from the interior grid
// lines. Under OverlapAvoid a draw that lands on body is retried up to the
// attempt budget, then replaced by a uniform pick among free interior cells.
// If the body covers every interior cell the last draw is kept.
func (s *Spawner) MaybeRespawn(f *Fruit, bounds Bounds, body *Body) bool {
	if f.Present {
		return false
	}

	cols, rows := bounds.Columns(), bounds.Rows()
	pos := s.draw(cols, rows)

	if s.policy == OverlapAvoid && body != nil && body.Contains(pos) {
		placed := false
		for attempt := 1; attempt < s.maxAttempts; attempt++ {
			pos = s.draw(cols, rows)
			if !body.Contains(pos) {
				placed = true
				break
			}
		}
		if !placed {
			if free, ok := s.pickFree(cols, rows, body); ok {
				pos = free
			}
		}
	}

	f.Pos = pos
	f.Present = true
	return true
}

func (s *Spawner) draw(cols, rows []int) Position {
	return Position{
		X: cols[s.rng.Intn(len(cols))],
		Y: rows[s.rng.Intn(len(rows))],
	}
}

func (s *Spawner) pickFree(cols, rows []int, body *Body) (Position, bool) {
	var free []Position
	for _, y := range rows {
		for _, x := range cols {
			p := Position{X: x, Y: y}
			if !body.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
