// Package cli provides common binary initialization utilities.
// This package consolidates repeated initialization patterns across
// cmd/beanboard and cmd/beanboard-report.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"beanboard/internal/config"
	"beanboard/internal/core"
	applog "beanboard/internal/log"
	"beanboard/internal/normalize"
	"beanboard/internal/report"
	"beanboard/internal/source"
	"beanboard/internal/source/csvfile"
	"beanboard/internal/source/sqlite"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed",
			applog.NewFields().WithComponent(applog.ComponentApp).WithError(err).ToSlice()...)
		os.Exit(1)
	}
	return cfg
}

// NewLoader selects the configured input backend.
func NewLoader(logger *slog.Logger, cfg *config.Config) source.Loader {
	switch cfg.DataSource {
	case "sqlite":
		src, err := sqlite.New(cfg.SQLitePath, cfg.SQLiteTable)
		if err != nil {
			logger.Error("Failed to initialize SQLite source", "error", err, "path", cfg.SQLitePath)
			os.Exit(1)
		}
		logger.Info("Initialized SQLite source", applog.FieldBackend, cfg.DataSource, applog.FieldPath, cfg.SQLitePath)
		return src
	default:
		logger.Info("Initialized CSV source", applog.FieldBackend, cfg.DataSource, applog.FieldPath, cfg.CSVPath)
		return csvfile.New(cfg.CSVPath)
	}
}

// LoadRecords runs the load and normalize stages of the pipeline.
func LoadRecords(ctx context.Context, loader source.Loader) ([]core.Transaction, error) {
	raw, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	records, err := normalize.Records(raw)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Normalized transaction records",
		applog.NewFields().
			WithComponent(applog.ComponentNormalize).
			WithOperation(applog.OpNormalize).
			WithRows(len(records)).ToSlice()...)
	return records, nil
}

// ReportConfig loads the YAML report definition when configured, otherwise
// the embedded defaults with the configured preview size.
func ReportConfig(cfg *config.Config) (report.Config, error) {
	if cfg.ReportConfigPath != "" {
		return report.LoadConfig(cfg.ReportConfigPath)
	}
	rc := report.DefaultConfig()
	rc.PreviewRows = cfg.PreviewRows
	return rc, nil
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when shutdown is complete.
func GracefulShutdown(logger *slog.Logger, timeout time.Duration, cleanup func(context.Context)) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received",
			applog.FieldComponent, applog.ComponentApp,
			applog.FieldOperation, applog.OpShutdown,
			"signal", sig.String(),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup(shutdownCtx)
		}
		cancel()
		close(done)
	}()

	return ctx, done
}
