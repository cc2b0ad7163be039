// Package main provides the taxonorm binary entry point.
// Taxonorm normalizes occupational taxonomy datasets into canonical
// entity tables and optionally publishes them to a knowledge graph.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/spf13/cobra"

	"github.com/c360studio/taxonorm/config"
	"github.com/c360studio/taxonorm/graph"
	"github.com/c360studio/taxonorm/pipeline"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "taxonorm"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	sourceDir  string
	outDir     string
	logLevel   string
	graphURL   string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "taxonorm",
		Short: "Occupational taxonomy normalizer",
		Long: `Taxonorm ingests tab-separated taxonomy datasets and normalizes
them into canonical entity tables keyed by stable identifiers.

Occupation titles go through a deterministic expansion engine that
derives identifiers, sibling expansions, and domain concepts. Other
standards datasets are copied through a table-driven rename pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(&f)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&f.sourceDir, "source", "", "Source dataset directory (overrides config)")
	cmd.PersistentFlags().StringVar(&f.outDir, "out", "", "Output directory (overrides config)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&f.graphURL, "graph-url", "", "NATS URL for graph publishing (enables publishing)")

	cmd.AddCommand(&cobra.Command{
		Use:   "convert",
		Short: "Run one normalization pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(&f)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Run continuously, re-normalizing when sources change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(&f)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func runConvert(f *flags) error {
	logger := setupLogger(f.logLevel)

	cfg, err := loadConfig(f, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()

	pub, closeGraph, err := setupGraph(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGraph()

	_, err = pipeline.Run(ctx, cfg, logger, pub)
	return err
}

func runWatch(f *flags) error {
	logger := setupLogger(f.logLevel)

	cfg, err := loadConfig(f, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pub, closeGraph, err := setupGraph(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGraph()

	// Initial pass before watching. Failures are logged, not fatal:
	// the next source change gets another chance.
	if _, err := pipeline.Run(ctx, cfg, logger, pub); err != nil {
		logger.Error("Initial run failed", "error", err)
	}

	w, err := pipeline.NewWatcher(cfg.Source.Dir, cfg.Watch.DebounceDelay, logger, func(ctx context.Context) {
		if _, err := pipeline.Run(ctx, cfg, logger, pub); err != nil {
			logger.Error("Run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Shutting down")
		return nil
	}
	return err
}

// setupLogger configures structured logging on stderr.
func setupLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig loads layered configuration and applies flag overrides.
func loadConfig(f *flags, logger *slog.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
	} else {
		cfg, err = config.NewLoader(logger).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if f.sourceDir != "" {
		cfg.Source.Dir = f.sourceDir
	}
	if f.outDir != "" {
		cfg.Output.Dir = f.outDir
	}
	if f.graphURL != "" {
		cfg.Graph.Enabled = true
		cfg.Graph.URL = f.graphURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupGraph connects to NATS when publishing is enabled. The returned
// close function is safe to call unconditionally.
func setupGraph(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*graph.Publisher, func(), error) {
	if !cfg.Graph.Enabled {
		return nil, func() {}, nil
	}

	client, err := connectToNATS(ctx, cfg.Graph.URL, logger)
	if err != nil {
		return nil, func() {}, err
	}

	return graph.NewPublisher(client, cfg.Graph.Subject), func() { client.Close(ctx) }, nil
}

// connectToNATS creates and connects the NATS client.
func connectToNATS(ctx context.Context, url string, logger *slog.Logger) (*natsclient.Client, error) {
	logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	logger.Info("Connected to NATS", "url", url)
	return client, nil
}
