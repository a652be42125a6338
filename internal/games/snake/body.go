package snake

// Body is the ordered sequence of snake cells, oldest (tail) first and newest
// (head) last. It is a ring buffer, so appending the head and dropping the
// tail are O(1).
type Body struct {
	buf   []Position
	start int // index of the tail in buf
	n     int
}

// NewBody creates a body from cells ordered tail first.
func NewBody(cells ...Position) *Body {
	size := 8
	for size < len(cells) {
		size *= 2
	}
	b := &Body{buf: make([]Position, size)}
	for _, c := range cells {
		b.PushHead(c)
	}
	return b
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return b.n
}

// At returns the i-th cell counting from the tail. Panics when out of range.
func (b *Body) At(i int) Position {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.buf[(b.start+i)%len(b.buf)]
}

// Head returns the newest cell.
func (b *Body) Head() Position {
	return b.At(b.n - 1)
}

// Tail returns the oldest cell.
func (b *Body) Tail() Position {
	return b.At(0)
}

// PushHead appends p as the new head.
func (b *Body) PushHead(p Position) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.buf[(b.start+b.n)%len(b.buf)] = p
	b.n++
}

// PopTail removes and returns the oldest cell. Panics on an empty body.
func (b *Body) PopTail() Position {
	if b.n == 0 {
		panic("snake: pop from empty body")
	}
	p := b.buf[b.start]
	b.start = (b.start + 1) % len(b.buf)
	b.n--
	return p
}

// Contains reports whether any cell equals p.
func (b *Body) Contains(p Position) bool {
	for i := 0; i < b.n; i++ {
		if b.buf[(b.start+i)%len(b.buf)] == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the cells, tail first.
func (b *Body) Cells() []Position {
	out := make([]Position, b.n)
	for i := range out {
		out[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	return out
}

// Clone returns an independent copy.
func (b *Body) Clone() *Body {
	return NewBody(b.Cells()...)
}

func (b *Body) grow() {
	size := len(b.buf) * 2
	if size == 0 {
		size = 8
	}
	buf := make([]Position, size)
	for i := 0; i < b.n; i++ {
		buf[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	b.buf = buf
	b.start = 0
}
