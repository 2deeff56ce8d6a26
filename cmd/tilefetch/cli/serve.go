package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-loader/app"
	"github.com/0xalexb/hjarta-loader/server"
)

// stopTimeout bounds graceful shutdown once the command context ends.
const stopTimeout = 10 * time.Second

type serveFlags struct {
	address string
	dir     string
}

func newServeCommand(global *globalFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of assets over HTTP",
		Long: `Serve exposes a directory over HTTP so loaders can fetch its files.
Responses are gzip-compressed when the client accepts it and carry an
X-Request-ID header.

Examples:
  tilefetch serve --dir ./tiles --addr :8080
  tilefetch get --root http://localhost:8080/ tileset.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.address, "addr", server.DefaultAddress, "Listen address")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", server.DefaultDir, "Directory to serve")

	return cmd
}

func runServe(ctx context.Context, global *globalFlags, flags *serveFlags) error {
	application := app.NewApp(
		app.WithLogLevel(global.logLevel),
		app.WithLogFormat(global.logFormat),
		app.WithAssetServer("assets", server.WithAddress(flags.address), server.WithDir(flags.dir)),
	)

	err := application.Start(ctx)
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()

	return application.Stop(stopCtx)
}
