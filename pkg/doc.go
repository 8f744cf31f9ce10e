// Package pkg provides the libraries behind mazewalk.
//
// # Overview
//
// Mazewalk carves rectangular mazes as random spanning trees and animates
// solving them, one step at a time, so every intermediate state can be drawn.
// The pkg directory is organized into three areas:
//
//  1. Algorithms: [maze], [unionfind], [worklist]
//  2. Hosting: [session], [render/text], [render/dot], [io], [cache]
//  3. Ambient: [config], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow for one maze:
//
//	seed + biases
//	     ↓
//	[maze.BuildEdges] (weighted candidate passages)
//	     ↓
//	[maze.Generator] (Kruskal over a union-find forest)
//	     ↓
//	[maze.Search] / [maze.Walker] (marks on the grid)
//	     ↓
//	[maze.Reader] → text, DOT, SVG or JSON
//
// [session.Session] bundles these stages behind commands (step, skip, dfs,
// bfs, manual, move, reset) for the terminal player and the HTTP server.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mazewalk/pkg/maze"
//	    "github.com/matzehuels/mazewalk/pkg/render/text"
//	)
//
//	g := maze.MustNew(20, 10)
//	maze.NewGenerator(g, maze.BuildEdges(g, 42, 1, 1)).RunToCompletion()
//	maze.NewBreadthFirst(g).RunToCompletion()
//	fmt.Print(text.Render(g, text.Options{CellWidth: 2}))
//
// # Determinism
//
// The same seed, size and biases always carve the same maze: edge weights
// come from [maze.Stream], a fixed 48-bit linear congruential generator, and
// candidates are sorted stably. Searches visit neighbors in a fixed order
// (left, right, up, down), so their step counts are reproducible too.
//
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/maze
// [unionfind]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/unionfind
// [worklist]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/worklist
// [session]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/session
// [render/text]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/render/text
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/render/dot
// [io]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mazewalk/pkg/buildinfo
package pkg
