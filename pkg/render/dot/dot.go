package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/render/text"
)

// Options configures DOT export.
type Options struct {
	// HeatBound tints nodes by Distance / HeatBound when positive.
	HeatBound int

	// Labels prints each node's distance inside it.
	Labels bool
}

// NodeID returns the DOT identifier of the cell at p.
func NodeID(p maze.Pos) string { return fmt.Sprintf("c%d_%d", p.Col, p.Row) }

// ToDOT converts the open passages of r to an undirected Graphviz graph.
func ToDOT(r maze.Reader, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=square, style=filled, fillcolor=white, label=\"\", width=0.3, fixedsize=true];\n")
	buf.WriteString("  edge [penwidth=4, color=\"#444444\"];\n")
	buf.WriteString("\n")

	origin, dest := r.Origin().Pos(), r.Destination().Pos()
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			st := r.State(maze.Pos{Col: col, Row: row})
			fmt.Fprintf(&buf, "  %s [%s];\n", NodeID(st.Pos), nodeAttrs(st, origin, dest, opts))
		}
	}

	buf.WriteString("\n")
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			st := r.State(maze.Pos{Col: col, Row: row})
			if st.Open[maze.Right] {
				fmt.Fprintf(&buf, "  %s -- %s;\n", NodeID(st.Pos), NodeID(maze.Pos{Col: col + 1, Row: row}))
			}
			if st.Open[maze.Down] {
				fmt.Fprintf(&buf, "  %s -- %s;\n", NodeID(st.Pos), NodeID(maze.Pos{Col: col, Row: row + 1}))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(st maze.CellState, origin, dest maze.Pos, opts Options) string {
	// Graphviz y grows upward; flip rows so the origin stays top-left.
	attrs := fmt.Sprintf("pos=\"%d,%d!\"", st.Pos.Col, -st.Pos.Row)

	fill := ""
	switch {
	case opts.HeatBound > 0:
		r, g, b := text.HeatRGB(st.Distance, opts.HeatBound)
		fill = fmt.Sprintf("#%02x%02x%02x", r, g, b)
	case st.Highlighted:
		fill = "#ffd75f"
	case st.Visited:
		fill = "#5fafaf"
	}
	if fill != "" {
		attrs += fmt.Sprintf(", fillcolor=%q", fill)
	}
	if st.Pos == origin || st.Pos == dest {
		attrs += ", shape=doublecircle"
	}
	if opts.Labels {
		attrs += fmt.Sprintf(", label=%q, fixedsize=false", strconv.Itoa(st.Distance))
	}
	return attrs
}

// RenderSVG lays out a DOT graph with neato and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// svgTTL bounds how long a rendered SVG stays cached.
const svgTTL = 24 * time.Hour

// CachedSVG is [RenderSVG] backed by c, keyed by the DOT source. Cache
// failures fall through to a fresh render.
func CachedSVG(ctx context.Context, c cache.Cache, dot string) ([]byte, error) {
	key := cache.Key("svg", dot)
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, nil
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	_ = c.Set(ctx, key, svg, svgTTL)
	return svg, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root element so the SVG scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
