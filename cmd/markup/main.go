package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by all subcommands. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *render.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Build and render HTML element trees",
		Long: `markup renders HTML element trees described as YAML or JSON documents.

Commands:
  render    Render a tree document to HTML
  serve     Preview a directory of tree documents with live reload
  publish   Render tree documents into a directory or an S3 bucket
  version   Print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to markup.json (default: nearest markup.json upwards)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from markup.json)")

	rootCmd.AddCommand(
		renderCmd(a),
		serveCmd(a),
		publishCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger and metrics.
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := a.cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	a.registry = prometheus.NewRegistry()
	if a.cfg.Metrics.Enabled {
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		a.metrics = render.NewMetrics(
			render.WithNamespace(a.cfg.Metrics.Namespace),
			render.WithRegistry(a.registry),
		)
	}
	return nil
}

// renderer builds a guarded renderer from the render config. maxDepth
// overrides the configured limit when non-negative.
func (a *app) renderer(maxDepth int) *render.Renderer {
	if maxDepth < 0 {
		maxDepth = a.cfg.Render.MaxDepth
	}
	return render.NewRenderer(render.RendererConfig{
		MaxDepth:     maxDepth,
		DetectCycles: a.cfg.Render.DetectCycles,
		Logger:       a.logger,
		Metrics:      a.metrics,
	})
}

// argsError reports a command called with invalid arguments.
func argsError(format string, args ...any) *errors.MarkupError {
	return errors.New("M050").WithDetail(fmt.Sprintf(format, args...))
}

// exactArgs is cobra.ExactArgs with a coded error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return argsError("%s expects %d argument(s), got %d", cmd.CommandPath(), n, len(args)).
				WithSuggestion("Usage: " + cmd.UseLine())
		}
		return nil
	}
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// docName strips directories and the extension from a tree document path.
func docName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
