// Package config holds runtime settings for the slicing server and CLI.
//
// Settings come from defaults, then environment variables, then command-line
// flags. Nothing is persisted.
package config

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/ironsheep/image-slice-mcp/internal/imaging"
	"github.com/ironsheep/image-slice-mcp/internal/slicing"
)

// Environment variable names.
const (
	EnvLogLevel  = "IMAGE_SLICE_LOG_LEVEL"
	EnvOutputDir = "IMAGE_SLICE_OUTPUT_DIR"
	EnvWorkers   = "IMAGE_SLICE_WORKERS"
	EnvMaxPixels = "IMAGE_SLICE_MAX_PIXELS"
	EnvProduct   = "IMAGE_SLICE_PRODUCT"
)

// Config is the resolved runtime configuration.
type Config struct {
	// OutputDir is where archives are saved when a request names none.
	OutputDir string

	// Workers bounds concurrent cell encoding.
	Workers int

	// MaxSurfacePixels bounds the area of one cell surface.
	MaxSurfacePixels int

	// ProductName prefixes archive filenames.
	ProductName string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:        ".",
		Workers:          runtime.NumCPU(),
		MaxSurfacePixels: imaging.DefaultMaxSurfacePixels,
		ProductName:      slicing.DefaultProductName,
		LogLevel:         "warn",
	}
}

// FromEnv overlays environment variables read through getenv onto the
// defaults. Unset or empty variables keep the default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv(EnvProduct); v != "" {
		cfg.ProductName = v
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v := getenv(EnvMaxPixels); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvMaxPixels, err)
		}
		cfg.MaxSurfacePixels = n
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxSurfacePixels < 1 {
		return fmt.Errorf("max surface pixels must be at least 1, got %d", c.MaxSurfacePixels)
	}
	if c.ProductName == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlicingOptions converts the configuration into packager options.
func (c Config) SlicingOptions() slicing.Options {
	return slicing.Options{
		Workers:          c.Workers,
		MaxSurfacePixels: c.MaxSurfacePixels,
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
