package maze

import (
	"cmp"
	"slices"

	"github.com/matzehuels/mazewalk/pkg/unionfind"
)

// Generator carves a spanning tree out of a grid one candidate passage at a
// time (Kruskal's algorithm over a union-find forest).
type Generator struct {
	grid   *Grid
	edges  []*Passage
	cursor int
	forest *unionfind.Forest[Pos]
	opened int
}

// NewGenerator prepares to carve g using the candidate passages in edges.
// Candidates are ordered by ascending weight; ties keep their build order.
func NewGenerator(g *Grid, edges []*Passage) *Generator {
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b *Passage) int {
		return cmp.Compare(a.weight, b.weight)
	})
	forest := unionfind.New[Pos]()
	for _, c := range g.cells {
		forest.Add(c.pos)
	}
	return &Generator{grid: g, edges: sorted, forest: forest}
}

// Step examines the next candidate passage and opens it when its endpoints
// are not yet connected. It reports whether a passage was opened. Once every
// candidate has been examined Step does nothing.
func (gen *Generator) Step() bool {
	if gen.Complete() {
		return false
	}
	p := gen.edges[gen.cursor]
	gen.cursor++
	if p.IsVoid() {
		return false
	}
	if !gen.forest.Union(p.a.ID(), p.b.ID()) {
		return false
	}
	p.carve()
	gen.opened++
	return true
}

// Complete reports whether every candidate has been examined.
func (gen *Generator) Complete() bool { return gen.cursor >= len(gen.edges) }

// RunToCompletion steps until complete and returns how many passages it opened.
func (gen *Generator) RunToCompletion() int {
	n := 0
	for !gen.Complete() {
		if gen.Step() {
			n++
		}
	}
	return n
}

// Cursor returns the index of the next candidate.
func (gen *Generator) Cursor() int { return gen.cursor }

// Len returns the number of candidates.
func (gen *Generator) Len() int { return len(gen.edges) }

// Opened returns the number of passages opened so far.
func (gen *Generator) Opened() int { return gen.opened }

// Components returns the number of disconnected regions left.
func (gen *Generator) Components() int { return gen.forest.Roots() }

// Find returns the representative of the region containing p.
func (gen *Generator) Find(p Pos) Pos { return gen.forest.Find(p) }

// Edges returns the candidates in processing order.
func (gen *Generator) Edges() []*Passage { return slices.Clone(gen.edges) }
