package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-slice-mcp/internal/config"
	"github.com/ironsheep/image-slice-mcp/internal/server"
	"github.com/ironsheep/image-slice-mcp/internal/slicing"
)

// options holds the resolved configuration shared by all subcommands.
type options struct {
	cfg config.Config

	logLevel  string
	outputDir string
	workers   int
	maxPixels int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "image-slice-mcp",
		Short: "Slice images into grids of tiles packed as a ZIP archive",
		Long: `image-slice-mcp cuts an image into a rows x cols grid, optionally after a
centered square crop and per-edge margins, and saves every tile in one ZIP.

With no subcommand it runs as an MCP server over stdin/stdout.

Environment variables:
  IMAGE_SLICE_LOG_LEVEL    debug, info, warn or error
  IMAGE_SLICE_OUTPUT_DIR   default archive directory
  IMAGE_SLICE_WORKERS      concurrent cell encoders
  IMAGE_SLICE_MAX_PIXELS   largest allowed tile surface
  IMAGE_SLICE_PRODUCT      archive filename prefix`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory archives are written to")
	flags.IntVar(&opts.workers, "workers", 0, "number of cells encoded concurrently")
	flags.IntVar(&opts.maxPixels, "max-pixels", 0, "largest allowed tile surface in pixels")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.AddCommand(newServeCmd(opts), newSliceCmd(opts), newVersionCmd())
	return cmd
}

// load reads the environment, applies flags that were set and configures
// logging. Logs always go to stderr; stdout carries MCP traffic.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = o.outputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("max-pixels") {
		cfg.MaxSurfacePixels = o.maxPixels
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	slicing.SetLogger(logger)

	o.cfg = cfg
	return nil
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdin/stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("starting server",
		"version", Version, "built", BuildTime, "commit", GitCommit,
		"output_dir", opts.cfg.OutputDir, "workers", opts.cfg.Workers,
		"webp", slicing.WebPBackend)

	return server.New(opts.cfg, slog.Default()).Run(ctx)
}
