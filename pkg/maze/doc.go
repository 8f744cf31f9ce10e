// Package maze implements the grid model and the stepped algorithms that
// generate, solve and walk a rectangular maze.
//
// # Model
//
// A [Grid] holds width × height [Cell] values. Every cell has four passage
// slots (up, down, left, right). A [Passage] joins two endpoints, one of which
// may be the void: a [Ref] with no cell behind it, used for the grid boundary.
// Void passages stay closed forever.
//
// # Pipeline
//
//	g := maze.MustNew(30, 20)
//	edges := maze.BuildEdges(g, seed, 1, 1)
//	gen := maze.NewGenerator(g, edges)
//	for !gen.Complete() {
//	    gen.Step() // one passage per tick
//	}
//	search := maze.NewBreadthFirst(g)
//	for !search.Complete() {
//	    search.Step()
//	}
//
// Every algorithm exposes Step so a host loop can animate it one tick at a
// time, plus a synchronous RunToCompletion. Stepping a finished algorithm is a
// no-op.
//
// # Reading state
//
// Renderers consume a grid through [Reader], which exposes per-cell
// [CellState] snapshots and nothing that mutates the maze.
package maze
