package maze

import "math"

// weightRange bounds raw edge weights before bias scaling.
const weightRange = 1000

// scaleWeight multiplies a raw weight by bias, truncating toward zero and
// saturating at MaxInt32 so huge biases keep their axis last.
func scaleWeight(raw int, bias float64) int {
	w := float64(raw) * bias
	if w >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(w)
}

// BuildEdges wires the interior passages of a freshly created grid and
// returns them in build order.
//
// Cells are visited row by row. For each cell the passage to the cell above
// is built first, then the passage to the cell on the right, each drawing one
// value in [0, 1000) from the stream seeded with seed. Passages between rows
// are scaled by horizontalBias and passages within a row by verticalBias,
// truncating toward zero and saturating at MaxInt32. Boundary passages keep
// leading to the void and are not returned.
func BuildEdges(g *Grid, seed int64, verticalBias, horizontalBias float64) []*Passage {
	s := NewStream(seed)
	edges := make([]*Passage, 0, (g.width-1)*g.height+g.width*(g.height-1))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := g.Cell(col, row)
			if row > 0 {
				above := g.Cell(col, row-1)
				w := scaleWeight(s.Intn(weightRange), horizontalBias)
				p := newPassage(RefTo(c), RefTo(above), w)
				c.passages[Up] = p
				above.passages[Down] = p
				edges = append(edges, p)
			}
			if col < g.width-1 {
				right := g.Cell(col+1, row)
				w := scaleWeight(s.Intn(weightRange), verticalBias)
				p := newPassage(RefTo(c), RefTo(right), w)
				c.passages[Right] = p
				right.passages[Left] = p
				edges = append(edges, p)
			}
		}
	}
	return edges
}
