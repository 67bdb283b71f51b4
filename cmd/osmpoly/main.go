// osmpoly extracts administrative boundaries from an OSM file and writes one
// .poly (and optionally .geojson) file per boundary.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/beetlebugorg/osmpoly/internal/logger"
	"github.com/beetlebugorg/osmpoly/internal/output"
	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.L().Warn("failed to load .env", "error", err)
	}

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.L().Error("osmpoly failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := RunOptionsFromArgs(args, stderr)
	if err != nil {
		return err
	}

	log := newLogger(opts, stderr)

	extractOpts := opts.extractOptions()
	extractOpts.Logger = log

	start := time.Now()
	polygons, err := osmpoly.NewExtractor(extractOpts).Extract(ctx, opts.Input)
	if err != nil {
		return err
	}
	log.Info("extraction finished",
		"input", opts.Input,
		"polygons", len(polygons),
		"elapsed", time.Since(start).Round(time.Millisecond))

	count, err := output.Write(opts.Output, polygons, output.Config{
		Overwrite: opts.overwriteMode(),
		GeoJSON:   opts.GeoJSON,
		Prompt:    stdin,
		PromptOut: stdout,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	log.Info("done", "files", count, "folder", opts.Output)
	return nil
}

func newLogger(opts *RunOptions, w io.Writer) *slog.Logger {
	level := opts.LogLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	format := opts.LogFormat
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	return logger.New(w, level, format)
}
