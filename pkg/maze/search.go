package maze

import "github.com/matzehuels/mazewalk/pkg/worklist"

// Search is a stepped traversal from an origin cell toward a target cell.
// The worklist it is given decides the order: a stack explores depth-first,
// a queue breadth-first.
type Search struct {
	grid   *Grid
	origin *Cell
	target *Cell
	work   worklist.Worklist[*Cell]
	seen   map[Pos]struct{}
	found  bool
	steps  int
}

// NewSearch starts a search over g. The worklist should be empty; origin is
// added to it.
func NewSearch(g *Grid, origin, target *Cell, work worklist.Worklist[*Cell]) *Search {
	work.Add(origin)
	return &Search{
		grid:   g,
		origin: origin,
		target: target,
		work:   work,
		seen:   map[Pos]struct{}{origin.pos: {}},
	}
}

// NewDepthFirst searches g from its origin to its destination depth-first.
func NewDepthFirst(g *Grid) *Search {
	return NewSearch(g, g.Origin(), g.Destination(), worklist.NewStack[*Cell]())
}

// NewBreadthFirst searches g from its origin to its destination breadth-first.
func NewBreadthFirst(g *Grid) *Search {
	return NewSearch(g, g.Origin(), g.Destination(), worklist.NewQueue[*Cell]())
}

// Step takes the next cell off the worklist. If it is the target, the path
// back to the origin is highlighted and the search ends. Otherwise every
// neighbor behind an open passage that has not been queued before is queued
// with the current cell as its back-reference. The cell is then marked
// visited. Step reports whether it did anything.
func (s *Search) Step() bool {
	if s.found {
		return false
	}
	cur, ok := s.work.Remove()
	if !ok {
		return false
	}
	s.steps++
	if cur == s.target {
		s.grid.highlightChain(cur)
		s.found = true
		cur.visited = true
		return true
	}
	for _, d := range searchOrder {
		p := cur.passages[d]
		if !p.open {
			continue
		}
		next := p.Opposite(cur)
		if next.IsVoid() {
			continue
		}
		n := next.Cell()
		if _, ok := s.seen[n.pos]; ok {
			continue
		}
		s.seen[n.pos] = struct{}{}
		n.setPrev(cur)
		s.work.Add(n)
	}
	cur.visited = true
	return true
}

// Complete reports whether the target was found or the worklist ran dry.
func (s *Search) Complete() bool { return s.found || s.work.Len() == 0 }

// RunToCompletion steps until complete and returns the number of steps taken.
func (s *Search) RunToCompletion() int {
	for !s.Complete() {
		s.Step()
	}
	return s.steps
}

// Found reports whether the target was reached.
func (s *Search) Found() bool { return s.found }

// Steps returns the number of cells taken off the worklist.
func (s *Search) Steps() int { return s.steps }

// Discipline reports the worklist's removal order.
func (s *Search) Discipline() worklist.Discipline { return s.work.Discipline() }

// Pending returns the number of queued cells.
func (s *Search) Pending() int { return s.work.Len() }

// Path returns the positions from origin to target, or nil before the target
// has been found.
func (s *Search) Path() []Pos {
	if !s.found {
		return nil
	}
	return s.grid.chain(s.target)
}
