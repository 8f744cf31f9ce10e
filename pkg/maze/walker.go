package maze

// Walker moves a single token through a generated maze by hand.
type Walker struct {
	grid    *Grid
	current *Cell
	done    bool
	moves   int
}

// NewWalker places a token on g's origin, marking it visited and highlighted.
func NewWalker(g *Grid) *Walker {
	o := g.Origin()
	o.visited = true
	o.highlighted = true
	return &Walker{grid: g, current: o, done: o == g.Destination()}
}

// Move steps the token through the open passage in direction d and returns
// the cell it ends up on. A closed or void passage leaves everything as it
// was and returns the current cell. Reaching the destination highlights the
// path back to the origin and freezes the walker.
func (w *Walker) Move(d Direction) *Cell {
	if w.done {
		return w.current
	}
	p := w.current.passages[d]
	if !p.open {
		return w.current
	}
	ref := p.Opposite(w.current)
	if ref.IsVoid() {
		return w.current
	}
	next := ref.Cell()
	if !next.visited {
		next.setPrev(w.current)
	}
	next.visited = true
	w.current.highlighted = false
	next.highlighted = true
	w.current = next
	w.moves++
	if next == w.grid.Destination() {
		w.grid.highlightChain(next)
		w.done = true
	}
	return next
}

// Current returns the cell under the token.
func (w *Walker) Current() *Cell { return w.current }

// Complete reports whether the destination has been reached.
func (w *Walker) Complete() bool { return w.done }

// Moves returns the number of successful moves.
func (w *Walker) Moves() int { return w.moves }

// Path returns the back-reference chain from origin to the current cell.
func (w *Walker) Path() []Pos { return w.grid.chain(w.current) }
