package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/internal/server"
	"github.com/matzehuels/mazewalk/pkg/session"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags mazeFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a maze session over HTTP",
		Long: `Serve one maze session over a JSON HTTP API. Clients step the generator,
start searches, walk the maze and fetch drawings. POST /maze/reset replaces the
session with a fresh seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg.Maze)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ctx := cmd.Context()
			sess, err := session.New(opts, session.WithContext(ctx))
			if err != nil {
				return err
			}
			printInfo(cmd.ErrOrStderr(), "Serving %d×%d maze (seed %d) on %s", opts.Width, opts.Height, sess.Seed(), cfg.Server.Addr)

			err = server.New(sess, loggerFromContext(ctx)).ListenAndServe(ctx, cfg.Server)
			if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
