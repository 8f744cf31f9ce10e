package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

func carved(t *testing.T) *maze.Grid {
	t.Helper()
	g := maze.MustNew(3, 3)
	maze.NewGenerator(g, maze.BuildEdges(g, 100, 1, 1)).RunToCompletion()
	return g
}

func TestToDOTEdges(t *testing.T) {
	out := ToDOT(carved(t), Options{})

	if !strings.HasPrefix(out, "graph maze {") {
		t.Fatalf("unexpected header: %q", out[:20])
	}
	if got := strings.Count(out, " -- "); got != 8 {
		t.Errorf("edge count = %d, want 8", got)
	}
	for _, want := range []string{
		"c0_0 -- c0_1;",
		"c1_0 -- c2_0;",
		"c1_2 -- c2_2;",
		`c2_1 [pos="2,-1!"]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT missing %q", want)
		}
	}
	// Rejected candidates never show up.
	if strings.Contains(out, "c0_0 -- c1_0;") {
		t.Error("DOT contains closed passage c0_0 -- c1_0")
	}
	if got := strings.Count(out, "doublecircle"); got != 2 {
		t.Errorf("doublecircle count = %d, want 2", got)
	}
}

func TestToDOTMarks(t *testing.T) {
	g := carved(t)
	maze.NewBreadthFirst(g).RunToCompletion()
	out := ToDOT(g, Options{})
	if got := strings.Count(out, `fillcolor="#ffd75f"`); got != 5 {
		t.Errorf("highlighted nodes = %d, want 5", got)
	}

	bound := g.LabelDistances(g.Origin())
	out = ToDOT(g, Options{HeatBound: bound, Labels: true})
	if !strings.Contains(out, `fillcolor="#0000ff"`) {
		t.Error("origin should be pure blue")
	}
	if !strings.Contains(out, `label="7"`) {
		t.Error("farthest cell label missing")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %q, want %q", out, want)
	}
	if string(normalizeViewBox([]byte("<svg>"))) != "<svg>" {
		t.Error("svg without viewBox should be returned unchanged")
	}
}

func TestCachedSVGHit(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(4)
	src := ToDOT(carved(t), Options{})
	if err := c.Set(ctx, cache.Key("svg", src), []byte("<svg>cached</svg>"), 0); err != nil {
		t.Fatal(err)
	}

	out, err := CachedSVG(ctx, c, src)
	if err != nil {
		t.Fatalf("CachedSVG() error = %v", err)
	}
	if string(out) != "<svg>cached</svg>" {
		t.Errorf("CachedSVG() = %q, want the cached drawing", out)
	}
}
