package snake

// Collision is the outcome of checking a new head position.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionBoundary
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionBoundary:
		return "boundary"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// Detect checks newHead against the board edges and against previous, the
// body as it was before this tick's advance. Testing the pre-move body means
// the fresh head never matches itself, while moving into the cell the tail
// is about to vacate still counts as a hit.
func Detect(newHead Position, previous *Body, bounds Bounds) Collision {
	if bounds.Outside(newHead) {
		return CollisionBoundary
	}
	if previous != nil && previous.Contains(newHead) {
		return CollisionSelf
	}
	return CollisionNone
}
