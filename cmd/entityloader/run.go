package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/config"
	"github.com/c360studio/entityloader/progress"
	"github.com/c360studio/entityloader/registry"
	"github.com/c360studio/entityloader/remap"
)

func run(ctx context.Context, opts options, logOut io.Writer) error {
	// Configure logging
	level := slog.LevelInfo
	switch strings.ToLower(opts.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Input errors are reported before the registry is contacted.
	if opts.input == "" {
		return inputError(fmt.Errorf("an input file is required (-i)"))
	}
	format, err := resolveFormat(opts.serialization, opts.input, logger)
	if err != nil {
		return inputError(err)
	}

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		return inputError(fmt.Errorf("load config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return inputError(err)
	}
	baseURL, _ := cfg.RegistryURL()
	documentFormat, _ := codec.ParseFormat(cfg.Registry.DocumentFormat)
	source, _ := remap.ParseRewriteSource(cfg.Concepts.RewriteSource)

	g, err := remap.Load(opts.input, format)
	if err != nil {
		return err
	}
	logger.Info("Loaded input", "path", opts.input, "serialization", format, "statements", g.Len())

	metricsRegistry := metric.NewMetricsRegistry()
	metrics, err := remap.NewMetrics(metricsRegistry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if cfg.Metrics.File != "" {
		defer writeMetrics(cfg.Metrics.File, metricsRegistry.PrometheusRegistry(), logger)
	}

	reporter := progress.Multi{progress.NewLogReporter(logger)}
	if cfg.Progress.NATSURL != "" {
		conn, err := progress.Connect(cfg.Progress.NATSURL)
		if err != nil {
			// Progress is informational; the run proceeds without it.
			logger.Warn("Progress publishing disabled", "url", cfg.Progress.NATSURL, "error", err)
		} else {
			defer func() {
				if err := conn.Drain(); err != nil {
					logger.Warn("Failed to drain NATS connection", "error", err)
				}
			}()
			reporter = append(reporter, progress.NewNATSReporter(conn, cfg.Progress.Subject))
		}
	}

	client := registry.NewClient(baseURL, cfg.Registry.APIKey,
		registry.WithTimeout(cfg.Registry.Timeout),
		registry.WithRetryConfig(cfg.Registry.Retry),
		registry.WithLogger(logger))

	pipeline := remap.New(client,
		remap.WithConceptClass(cfg.Concepts.Class),
		remap.WithDocumentFormat(documentFormat),
		remap.WithEndpoint(baseURL.String()),
		remap.WithRewritePolicy(cfg.RewritePolicy()),
		remap.WithRewriteSource(source),
		remap.WithReporter(reporter),
		remap.WithLogger(logger),
		remap.WithMetrics(metrics))

	report, err := pipeline.Run(ctx, g)
	if err != nil {
		return err
	}
	logger.Info("Entities loaded",
		"concepts", len(report.Concepts),
		"updated", report.Updated,
		"registry", baseURL.String())
	return nil
}

// resolveFormat picks the input serialization from the -s label, falling back
// to the file extension.
func resolveFormat(label, path string, logger *slog.Logger) (codec.Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	if label == "" {
		format, err := codec.FormatFromPath(path)
		if err != nil {
			return "", fmt.Errorf("the serialization of the input file could not be recognized from the extension %s", ext)
		}
		return format, nil
	}

	format, err := codec.ParseFormat(label)
	if err == nil {
		return format, nil
	}
	format, extErr := codec.FormatFromPath(path)
	if extErr != nil {
		return "", fmt.Errorf("the provided serialization %s was not recognized and the serialization could not be determined from the file extension %s", label, ext)
	}
	logger.Warn("Unrecognized serialization, using file extension", "serialization", label, "detected", format)
	return format, nil
}

func loadConfig(opts options, logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.NewLoader(logger).Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	// Command-line flags take precedence
	cfg.Merge(&config.Config{
		Registry: config.RegistryConfig{
			URL:    opts.url,
			APIKey: opts.apiKey,
		},
		Progress: config.ProgressConfig{
			NATSURL: opts.natsURL,
		},
		Metrics: config.MetricsConfig{
			File: opts.metricsFile,
		},
	})
	return cfg, nil
}

func writeMetrics(path string, gatherer prometheus.Gatherer, logger *slog.Logger) {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		logger.Warn("Failed to write metrics", "path", path, "error", err)
		return
	}
	logger.Debug("Wrote metrics", "path", path)
}

func inputError(err error) error {
	var re *remap.Error
	if errors.As(err, &re) {
		return err
	}
	return &remap.Error{Kind: remap.InputError, Stage: remap.StageLoaded, Err: err}
}
