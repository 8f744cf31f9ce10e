package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/worklist"
)

func visitedCells(g *maze.Grid) []maze.Pos {
	var out []maze.Pos
	for _, c := range g.Cells() {
		if c.Visited() {
			out = append(out, c.Pos())
		}
	}
	return out
}

func highlightedCells(g *maze.Grid) []maze.Pos {
	var out []maze.Pos
	for _, c := range g.Cells() {
		if c.Highlighted() {
			out = append(out, c.Pos())
		}
	}
	return out
}

var seed100Path = []maze.Pos{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}

func TestBreadthFirstRecorded(t *testing.T) {
	g := generated(t, 3, 3, 100)
	s := maze.NewBreadthFirst(g)
	assert.Equal(t, worklist.FIFO, s.Discipline())

	steps := s.RunToCompletion()
	assert.Equal(t, 5, steps)
	assert.True(t, s.Found())
	assert.True(t, s.Complete())
	assert.Equal(t, seed100Path, s.Path())
	assert.ElementsMatch(t, seed100Path, visitedCells(g))
	assert.ElementsMatch(t, seed100Path, highlightedCells(g))

	// Middle cell was queued but never taken off the worklist.
	assert.False(t, g.Cell(1, 1).Visited())
	prev, ok := g.Cell(1, 1).Prev()
	require.True(t, ok)
	assert.Equal(t, pos(1, 2), prev)
	assert.Equal(t, 1, s.Pending())
}

func TestDepthFirstRecorded(t *testing.T) {
	g := generated(t, 3, 3, 100)
	s := maze.NewDepthFirst(g)
	assert.Equal(t, worklist.LIFO, s.Discipline())

	steps := s.RunToCompletion()
	assert.Equal(t, 9, steps)
	assert.True(t, s.Found())
	assert.Len(t, visitedCells(g), 9)
	assert.Equal(t, seed100Path, s.Path())
	assert.ElementsMatch(t, seed100Path, highlightedCells(g))
}

func TestSearchStepAfterCompleteIsNoop(t *testing.T) {
	g := generated(t, 3, 3, 100)
	s := maze.NewBreadthFirst(g)
	s.RunToCompletion()
	before := maze.Snapshot(g)

	assert.False(t, s.Step())
	assert.Equal(t, 5, s.Steps())
	assert.Equal(t, before, maze.Snapshot(g))
}

func TestSearchUnreachableTargetExhausts(t *testing.T) {
	// No edges built: nothing is open, the origin is isolated.
	g := maze.MustNew(3, 3)
	s := maze.NewBreadthFirst(g)
	assert.False(t, s.Complete())

	assert.True(t, s.Step())
	assert.True(t, s.Complete())
	assert.False(t, s.Found())
	assert.Nil(t, s.Path())
	assert.False(t, s.Step())
	assert.Empty(t, highlightedCells(g))
}

func TestSearchPartiallyGenerated(t *testing.T) {
	g := maze.MustNew(3, 3)
	gen := maze.NewGenerator(g, maze.BuildEdges(g, 100, 1, 1))
	gen.Step() // opens only (2,0)-(2,1)

	s := maze.NewDepthFirst(g)
	s.RunToCompletion()
	assert.False(t, s.Found())
	assert.Equal(t, []maze.Pos{pos(0, 0)}, visitedCells(g))
}

func TestSearchSingleCell(t *testing.T) {
	g := generated(t, 1, 1, 1)
	s := maze.NewDepthFirst(g)
	assert.True(t, s.Step())
	assert.True(t, s.Found())
	assert.Equal(t, []maze.Pos{pos(0, 0)}, s.Path())
}

func TestBreadthFirstStepsEqualTreeDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := generated(t, 12, 9, seed)
		g.LabelDistances(g.Origin())
		want := g.Destination().Distance()

		s := maze.NewBreadthFirst(g)
		s.RunToCompletion()
		require.True(t, s.Found(), "seed %d", seed)
		assert.Len(t, s.Path(), want+1, "seed %d", seed)

		// Every expanded cell lies no farther than the target.
		for _, c := range g.Cells() {
			if c.Visited() {
				assert.LessOrEqual(t, c.Distance(), want, "seed %d cell %v", seed, c.Pos())
			}
		}
	}
}

func TestBothDisciplinesReachDestination(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		for _, newSearch := range []func(*maze.Grid) *maze.Search{maze.NewBreadthFirst, maze.NewDepthFirst} {
			g := generated(t, 15, 10, seed)
			s := newSearch(g)
			s.RunToCompletion()
			require.True(t, s.Found())
			path := s.Path()
			assert.Equal(t, g.Origin().Pos(), path[0])
			assert.Equal(t, g.Destination().Pos(), path[len(path)-1])
			assert.Len(t, highlightedCells(g), len(path))
		}
	}
}

func TestCustomWorklist(t *testing.T) {
	g := generated(t, 3, 3, 100)
	s := maze.NewSearch(g, g.Destination(), g.Origin(), worklist.New[*maze.Cell](worklist.FIFO))
	s.RunToCompletion()
	require.True(t, s.Found())
	assert.Equal(t, []maze.Pos{{2, 2}, {1, 2}, {0, 2}, {0, 1}, {0, 0}}, s.Path())
}
