package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/errors"
	mazeio "github.com/matzehuels/mazewalk/pkg/io"
	"github.com/matzehuels/mazewalk/pkg/render/dot"
	"github.com/matzehuels/mazewalk/pkg/render/text"
	"github.com/matzehuels/mazewalk/pkg/session"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	maze      mazeFlags
	solve     string // "", "bfs" or "dfs"
	heat      string // off, origin or destination
	format    string // text, dot, svg or json
	output    string // file path; stdout when empty
	cellWidth int
	stats     bool
	noCache   bool
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{format: formatText, heat: "off"}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and print it",
		Long: `Carve a maze from a seed and print it as text, Graphviz DOT, SVG, or a
JSON document for other tools.

With --solve the maze is solved by depth-first (dfs) or breadth-first (bfs)
search and the path is highlighted. With --heat every cell is tinted by its
distance from the origin or the destination.`,
		Example: `  mazewalk generate -W 40 -H 20 --seed 100
  mazewalk generate --solve bfs --heat origin
  mazewalk generate --format svg -o maze.svg
  mazewalk generate --solve dfs -f json -o maze.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			sopts, err := opts.maze.options(cmd, cfg.Maze)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("cell-width") {
				opts.cellWidth = cfg.Play.CellWidth
			}
			return c.runGenerate(cmd.Context(), cmd, sopts, opts)
		},
	}

	opts.maze.register(cmd)
	cmd.Flags().StringVar(&opts.solve, "solve", "", "solve with dfs or bfs")
	cmd.Flags().StringVar(&opts.heat, "heat", opts.heat, "heat map source: off, origin, destination")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, dot, svg, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", 2, "text columns per cell")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print a summary table to stderr")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always re-run the Graphviz layout for svg")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, cmd *cobra.Command, sopts session.Options, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	heat, err := session.ParseHeatSource(opts.heat)
	if err != nil {
		return err
	}
	switch opts.format {
	case formatText, formatDOT, formatSVG, formatJSON:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text, dot, svg or json)", opts.format)
	}

	sess, err := session.New(sopts, session.WithContext(ctx))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	sess.Skip()
	prog.done("maze carved", "seed", sess.Seed(), "passages", sess.Stats().Opened)

	if err := solve(sess, opts.solve); err != nil {
		return err
	}
	bound := sess.HeatMap(heat)

	svgs := cache.NewNullCache()
	if opts.format == formatSVG {
		svgs = c.svgCache(ctx, opts.noCache)
	}
	defer svgs.Close()
	out, err := renderMaze(ctx, svgs, sess, opts.format, opts.cellWidth, bound)
	if err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(opts.output, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess(cmd.ErrOrStderr(), "Wrote %s maze", opts.format)
		printFile(cmd.ErrOrStderr(), opts.output)
	}

	if opts.stats {
		fmt.Fprintln(cmd.ErrOrStderr(), statsTable(sess.Stats()))
	}
	return nil
}

// solve runs the named search to completion. An empty name does nothing.
func solve(sess *session.Session, name string) error {
	switch strings.ToLower(name) {
	case "":
		return nil
	case "dfs", "depth-first":
		sess.StartDepthFirst()
	case "bfs", "breadth-first":
		sess.StartBreadthFirst()
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown solver %q (want dfs or bfs)", name)
	}
	sess.Skip()
	return nil
}

// openSVGCache opens the per-user file cache, falling back to no caching.
func openSVGCache(ctx context.Context, disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cache.DefaultDir()
	if err == nil {
		var c *cache.FileCache
		if c, err = cache.NewFileCache(dir); err == nil {
			return c
		}
	}
	loggerFromContext(ctx).Debug("svg cache disabled", "err", err)
	return cache.NewNullCache()
}

func renderMaze(ctx context.Context, svgs cache.Cache, sess *session.Session, format string, cellWidth, bound int) ([]byte, error) {
	switch format {
	case formatJSON:
		var buf bytes.Buffer
		if err := mazeio.WriteJSON(mazeio.FromSession(sess, true), &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		return buf.Bytes(), nil
	case formatDOT:
		return []byte(dot.ToDOT(sess.Grid(), dot.Options{HeatBound: bound})), nil
	case formatSVG:
		svg, err := dot.CachedSVG(ctx, svgs, dot.ToDOT(sess.Grid(), dot.Options{HeatBound: bound}))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	default:
		return []byte(text.Render(sess.Grid(), text.Options{CellWidth: cellWidth, HeatBound: bound})), nil
	}
}
