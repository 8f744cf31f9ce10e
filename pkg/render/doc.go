// Package render groups the maze renderers.
//
// Renderers only see a maze through [maze.Reader]; they never open passages
// or move tokens.
//
//   - [text]: terminal drawing with lipgloss colors, used by the CLI and the
//     interactive player
//   - [dot]: Graphviz DOT export of the carved passages plus in-process SVG
//     rendering
package render
