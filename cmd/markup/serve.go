package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/preview"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port     int
		host     string
		dir      string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview tree documents in the browser",
		Long: `Serve a directory of tree documents as rendered HTML.

"/" renders index.yaml, "/docs/intro" renders docs/intro.yaml. Browsers
reload when a document changes.

Examples:
  markup serve
  markup serve --port=8080 --dir=pages
  markup serve --host=0.0.0.0 --no-reload`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if port > 0 {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			docs := cfg.ServeDir()
			if dir != "" {
				docs = dir
			}
			if info, err := os.Stat(docs); err != nil || !info.IsDir() {
				return argsError("%s is not a directory", docs)
			}

			options := preview.Options{
				Dir:        docs,
				Addr:       cfg.ServeAddress(),
				Renderer:   a.renderer(-1),
				LiveReload: !noReload,
				Logger:     a.logger,
			}
			if cfg.Metrics.Enabled {
				options.Gatherer = a.registry
			}
			server := preview.NewServer(options)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			success(out, "Serving %s on http://%s", docs, cfg.ServeAddress())
			if cfg.Metrics.Enabled {
				info(out, "Metrics on http://%s/metrics", cfg.ServeAddress())
			}
			if noReload {
				warn(out, "Live reload disabled")
			}

			return server.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from markup.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from markup.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of tree documents (default from markup.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}
