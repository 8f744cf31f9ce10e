package maze

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mazewalk/pkg/errors"
)

// Grid size limits.
const (
	MaxWidth  = 100
	MaxHeight = 60
)

// Pos identifies a cell by column and row. (0, 0) is the top-left corner.
type Pos struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Col, p.Row) }

// Direction selects one of a cell's four passage slots.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in slot order.
var Directions = [4]Direction{Up, Down, Left, Right}

// searchOrder is the order in which a search expands a cell's passages.
var searchOrder = [4]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the column and row offsets of a step in direction d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// ParseDirection accepts a direction name ("up", "down", "left", "right")
// or its first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q", s)
}

// Cell is a single grid square.
type Cell struct {
	pos         Pos
	passages    [4]*Passage
	visited     bool
	highlighted bool
	prev        Pos
	hasPrev     bool
	distance    int
}

// Pos returns the cell's coordinates.
func (c *Cell) Pos() Pos { return c.pos }

// Passage returns the passage in direction d. It is never nil.
func (c *Cell) Passage(d Direction) *Passage { return c.passages[d] }

// IsOpen reports whether the passage in direction d is open.
func (c *Cell) IsOpen(d Direction) bool { return c.passages[d].open }

// Neighbor returns whatever lies across the passage in direction d, open or not.
func (c *Cell) Neighbor(d Direction) Ref { return c.passages[d].Opposite(c) }

func (c *Cell) Visited() bool     { return c.visited }
func (c *Cell) Highlighted() bool { return c.highlighted }
func (c *Cell) Distance() int     { return c.distance }

// Prev returns the cell this one was first reached from, if any.
func (c *Cell) Prev() (Pos, bool) { return c.prev, c.hasPrev }

func (c *Cell) clearMarks() {
	c.visited = false
	c.highlighted = false
	c.prev = Pos{}
	c.hasPrev = false
}

func (c *Cell) setPrev(from *Cell) {
	c.prev = from.pos
	c.hasPrev = true
}

// Ref is a reference to either a real cell or the void beyond the grid edge.
// The zero Ref is the void.
type Ref struct {
	c *Cell
}

// Void is the reference that lies beyond every boundary passage.
var Void = Ref{}

// RefTo returns a reference to c.
func RefTo(c *Cell) Ref { return Ref{c: c} }

// IsVoid reports whether r points beyond the grid.
func (r Ref) IsVoid() bool { return r.c == nil }

// Cell returns the referenced cell. It panics on the void.
func (r Ref) Cell() *Cell {
	if r.c == nil {
		panic("maze: void has no cell")
	}
	return r.c
}

// ID returns the referenced cell's position. It panics on the void.
func (r Ref) ID() Pos { return r.Cell().pos }

// Passage joins two endpoints. Its weight is fixed at construction; it starts
// closed and, once opened, stays open.
type Passage struct {
	a, b   Ref
	weight int
	open   bool
}

func newPassage(a, b Ref, weight int) *Passage {
	return &Passage{a: a, b: b, weight: weight}
}

func (p *Passage) Weight() int { return p.weight }
func (p *Passage) Open() bool  { return p.open }

// Ends returns both endpoints in construction order.
func (p *Passage) Ends() (Ref, Ref) { return p.a, p.b }

// IsVoid reports whether either endpoint is the void.
func (p *Passage) IsVoid() bool { return p.a.IsVoid() || p.b.IsVoid() }

// Opposite returns the endpoint that is not c.
func (p *Passage) Opposite(c *Cell) Ref {
	if p.a.c == c {
		return p.b
	}
	return p.a
}

// carve opens the passage. Void passages are never opened.
func (p *Passage) carve() bool {
	if p.open || p.IsVoid() {
		return false
	}
	p.open = true
	return true
}

func (p *Passage) String() string {
	end := func(r Ref) string {
		if r.IsVoid() {
			return "void"
		}
		return r.ID().String()
	}
	state := "closed"
	if p.open {
		state = "open"
	}
	return fmt.Sprintf("%s-%s w=%d %s", end(p.a), end(p.b), p.weight, state)
}

// Grid is a rectangular collection of cells.
type Grid struct {
	width, height int
	cells         []*Cell
}

// New creates a width × height grid whose passages all lead to the void.
// [BuildEdges] wires the interior passages afterwards.
func New(width, height int) (*Grid, error) {
	if err := errors.ValidateDimensions(width, height, MaxWidth, MaxHeight); err != nil {
		return nil, err
	}
	g := &Grid{width: width, height: height, cells: make([]*Cell, 0, width*height)}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := &Cell{pos: Pos{Col: col, Row: row}}
			for _, d := range Directions {
				c.passages[d] = newPassage(RefTo(c), Void, 0)
			}
			g.cells = append(g.cells, c)
		}
	}
	return g, nil
}

// MustNew is like [New] but panics on invalid dimensions.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Pos) bool {
	return p.Col >= 0 && p.Col < g.width && p.Row >= 0 && p.Row < g.height
}

// At returns the cell at p, or nil when p is outside the grid.
func (g *Grid) At(p Pos) *Cell {
	if !g.Contains(p) {
		return nil
	}
	return g.cells[p.Row*g.width+p.Col]
}

// Cell returns the cell at (col, row), or nil when outside the grid.
func (g *Grid) Cell(col, row int) *Cell { return g.At(Pos{Col: col, Row: row}) }

// Cells returns all cells in row-major order.
func (g *Grid) Cells() []*Cell { return g.cells }

func (g *Grid) Origin() *Cell      { return g.cells[0] }
func (g *Grid) Destination() *Cell { return g.cells[len(g.cells)-1] }

// OpenCount returns the number of open passages.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c.passages[Right].open {
			n++
		}
		if c.passages[Down].open {
			n++
		}
	}
	return n
}

// ClearMarks resets visited, highlighted and back-references on every cell.
// Passages and distances are left alone.
func (g *Grid) ClearMarks() {
	for _, c := range g.cells {
		c.clearMarks()
	}
}

// highlightChain highlights c and every cell on its back-reference chain.
func (g *Grid) highlightChain(c *Cell) {
	for steps := 0; c != nil && steps < len(g.cells); steps++ {
		c.highlighted = true
		if !c.hasPrev {
			return
		}
		c = g.At(c.prev)
	}
}

// chain returns the back-reference chain ending at c, starting from its root.
func (g *Grid) chain(c *Cell) []Pos {
	var path []Pos
	for steps := 0; c != nil && steps < len(g.cells); steps++ {
		path = append(path, c.pos)
		if !c.hasPrev {
			break
		}
		c = g.At(c.prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
