package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/client"
	"github.com/BaSui01/fusionbrain-go/config"
	"github.com/BaSui01/fusionbrain-go/internal/metrics"
	"github.com/BaSui01/fusionbrain-go/internal/telemetry"
	"github.com/BaSui01/fusionbrain-go/internal/tlsutil"
)

const shutdownTimeout = 5 * time.Second

// app carries the state shared by every subcommand. Flags are bound to its
// fields; the remaining fields are filled by open.
type app struct {
	out io.Writer

	configPath string
	envFile    string
	logLevel   string
	jsonOutput bool

	cfg       *config.Config
	logger    *zap.Logger
	client    *client.Client
	metrics   *metrics.Collector
	telemetry *telemetry.Providers
}

// =============================================================================
// 🌳 命令树
// =============================================================================

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "fusionbrain",
		Short:         "FusionBrain text-to-image client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (YAML)")
	flags.StringVar(&a.envFile, "env-file", "", "Path to a .env file (default: ./.env when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "Override log level: debug, info, warn, error")
	flags.BoolVar(&a.jsonOutput, "json", false, "Print results as JSON")

	root.AddCommand(
		newCheckCommand(a),
		newGenerateCommand(a),
		newStatusCommand(a),
		newModelsCommand(a),
		newStylesCommand(a),
		newCatalogCommand(a),
		newVersionCommand(out),
	)
	return root
}

// run wraps a subcommand body with the app lifecycle.
func (a *app) run(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(); err != nil {
			return err
		}
		defer a.close()
		return fn(cmd.Context(), args)
	}
}

// =============================================================================
// 🚀 初始化与关闭
// =============================================================================

// open loads .env and config, then builds the logger, telemetry, metrics
// collector and API client.
func (a *app) open() (err error) {
	if err := a.loadEnvFile(); err != nil {
		return err
	}

	loader := config.NewLoader()
	if a.configPath != "" {
		loader = loader.WithConfigPath(a.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	a.logger = initLogger(cfg.Log)
	defer func() {
		if err != nil {
			a.close()
		}
	}()
	a.logger.Debug("fusionbrain starting",
		zap.String("version", Version),
		zap.String("endpoint", cfg.API.Endpoint),
	)

	a.telemetry, err = telemetry.Init(cfg.Telemetry, Version, a.logger)
	if err != nil {
		a.logger.Warn("failed to initialize telemetry", zap.Error(err))
	}
	a.metrics = metrics.NewCollector(cfg.Metrics.Namespace, a.logger)

	httpClient, err := a.httpClient()
	if err != nil {
		return err
	}
	opts := append([]client.Option{
		client.WithHTTPClient(httpClient),
		client.WithObserver(a.metrics),
	}, a.telemetry.ClientOptions()...)

	a.client, err = client.New(cfg.API.ClientConfig(), a.logger, opts...)
	return err
}

// loadEnvFile applies an explicit --env-file, or ./.env when it exists.
// Variables already set in the process environment win.
func (a *app) loadEnvFile() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", a.envFile, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func (a *app) httpClient() (*http.Client, error) {
	if a.cfg.API.CAFile == "" {
		return tlsutil.SecureHTTPClient(a.cfg.API.Timeout), nil
	}
	pool, err := tlsutil.LoadCertPool(a.cfg.API.CAFile)
	if err != nil {
		return nil, err
	}
	return tlsutil.SecureHTTPClient(a.cfg.API.Timeout, tlsutil.WithRootCAs(pool)), nil
}

// close exports metrics and flushes telemetry. Failures are logged only; the
// command result has already been decided.
func (a *app) close() {
	if path := a.cfg.Metrics.TextfilePath; path != "" && a.metrics != nil {
		if err := a.metrics.WriteTextfile(path); err != nil {
			a.logger.Warn("failed to write metrics textfile", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.telemetry.Shutdown(ctx); err != nil {
		a.logger.Warn("telemetry shutdown failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}
