package maze

// LabelDistances numbers every cell reachable from origin through open
// passages with its passage count from origin, and returns the heat-map
// bound for the labeling.
//
// The traversal is depth-first and never turns back through the passage it
// arrived by. Every other slot contributes a candidate bound: an open passage
// contributes the bound of the subtree behind it, a closed or void one
// contributes the current distance plus one. On a tree the result is
// therefore one more than the largest distance, which keeps the farthest cell
// strictly below the top of the color scale. Use [Grid.MaxDistance] for the
// largest distance itself.
//
// Cells that origin cannot reach are set to 0. Visited and highlighted marks
// are not touched.
func (g *Grid) LabelDistances(origin *Cell) int {
	for _, c := range g.cells {
		c.distance = 0
	}
	return label(origin, nil, 0)
}

func label(c *Cell, from *Passage, distance int) int {
	c.distance = distance
	bound := distance
	for _, d := range Directions {
		p := c.passages[d]
		if p == from {
			continue
		}
		candidate := distance + 1
		if p.open {
			if next := p.Opposite(c); !next.IsVoid() {
				candidate = label(next.Cell(), p, distance+1)
			}
		}
		bound = max(bound, candidate)
	}
	return bound
}

// MaxDistance returns the largest distance assigned by the last labeling.
func (g *Grid) MaxDistance() int {
	m := 0
	for _, c := range g.cells {
		m = max(m, c.distance)
	}
	return m
}
