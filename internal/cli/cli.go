// Package cli implements the mazewalk command-line interface.
//
// # Commands
//
//   - generate: carve a maze and print it, optionally solved or heat-mapped,
//     as text, Graphviz DOT or SVG
//   - play: animate generation and solving in the terminal and walk the maze
//     by hand
//   - serve: expose a session over HTTP
//
// # Configuration
//
// Settings come from mazewalk.toml (or --config) and are overridden by flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Session and
// search events are logged through observability hooks.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/buildinfo"
	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/config"
	"github.com/matzehuels/mazewalk/pkg/observability"
	"github.com/matzehuels/mazewalk/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "mazewalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	svgCache   func(ctx context.Context, disabled bool) cache.Cache
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), svgCache: openSVGCache}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mazewalk carves mazes and animates solving them",
		Long:         `Mazewalk generates rectangular mazes as random spanning trees and animates depth-first search, breadth-first search, or your own walk through them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.NewLogHooks(c.Logger).Install()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads --config, or mazewalk.toml from the working directory.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	return config.LoadDefault()
}

// mazeFlags are the construction parameters shared by every command.
type mazeFlags struct {
	width  int
	height int
	hbias  float64
	vbias  float64
	seed   int64
}

func (f *mazeFlags) register(cmd *cobra.Command) {
	d := config.Defaults().Maze
	cmd.Flags().IntVarP(&f.width, "width", "W", d.Width, "maze width in cells (max 100)")
	cmd.Flags().IntVarP(&f.height, "height", "H", d.Height, "maze height in cells (max 60)")
	cmd.Flags().Float64Var(&f.hbias, "hbias", d.HorizontalBias, "weight scale for passages between rows")
	cmd.Flags().Float64Var(&f.vbias, "vbias", d.VerticalBias, "weight scale for passages within a row")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (random when omitted)")
}

// options merges the config file with the flags the user actually set.
func (f *mazeFlags) options(cmd *cobra.Command, cfg config.Maze) (session.Options, error) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("hbias") {
		cfg.HorizontalBias = f.hbias
	}
	if flags.Changed("vbias") {
		cfg.VerticalBias = f.vbias
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		HorizontalBias: cfg.HorizontalBias,
		VerticalBias:   cfg.VerticalBias,
		Seed:           cfg.Seed,
	}, nil
}
