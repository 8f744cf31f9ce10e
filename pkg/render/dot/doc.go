// Package dot exports a maze's carved passages as a Graphviz graph.
//
// # Overview
//
// Every cell becomes a node pinned at its grid position and every open
// passage an undirected edge, so the drawing is the spanning tree itself.
// Highlighted cells are filled, and with a heat bound every node is tinted
// by its distance on the same red/blue scale the terminal renderer uses.
//
// # Usage
//
//	src := dot.ToDOT(grid, dot.Options{HeatBound: bound})
//	svg, err := dot.RenderSVG(ctx, src)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine, which honors pinned positions.
package dot
