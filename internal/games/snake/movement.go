package snake

// MinLength is the length every round starts with.
const MinLength = 4

// DefaultStart is the body every round starts from, tail first.
var DefaultStart = []Position{
	{X: 50, Y: 50},
	{X: 75, Y: 50},
	{X: 100, Y: 50},
	{X: 125, Y: 50},
}

// DefaultBody returns a fresh copy of the canonical starting body.
func DefaultBody() *Body {
	return NewBody(DefaultStart...)
}

// NextHead computes where the head lands after one step in dir.
func NextHead(body *Body, dir Direction, cellSize int) Position {
	return body.Head().Add(dir.Unit().Scale(cellSize))
}

// Advance moves the body one cell in dir and returns the new head.
// When grew is false the tail is dropped and the length stays the same;
// when grew is true the tail is kept and the body gains one cell.
func Advance(body *Body, dir Direction, cellSize int, grew bool) Position {
	head := NextHead(body, dir, cellSize)
	body.PushHead(head)
	if !grew {
		body.PopTail()
	}
	return head
}
