package maze

// CellState is a read-only snapshot of one cell.
type CellState struct {
	Pos         Pos     `json:"pos"`
	Open        [4]bool `json:"open"` // indexed by Direction
	Visited     bool    `json:"visited"`
	Highlighted bool    `json:"highlighted"`
	Distance    int     `json:"distance"`
}

// Reader is the narrow view renderers and hosts use to draw a maze.
type Reader interface {
	Width() int
	Height() int
	Origin() *Cell
	Destination() *Cell
	State(p Pos) CellState
}

var _ Reader = (*Grid)(nil)

// State returns a snapshot of the cell at p. It panics if p is outside the grid.
func (g *Grid) State(p Pos) CellState {
	c := g.At(p)
	if c == nil {
		panic("maze: position " + p.String() + " outside grid")
	}
	s := CellState{
		Pos:         c.pos,
		Visited:     c.visited,
		Highlighted: c.highlighted,
		Distance:    c.distance,
	}
	for _, d := range Directions {
		s.Open[d] = c.passages[d].open
	}
	return s
}

// Snapshot returns the state of every cell in row-major order.
func Snapshot(r Reader) []CellState {
	out := make([]CellState, 0, r.Width()*r.Height())
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			out = append(out, r.State(Pos{Col: col, Row: row}))
		}
	}
	return out
}
