package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"beanboard/internal/cli"
	apphttp "beanboard/internal/http"
	applog "beanboard/internal/log"
	"beanboard/internal/report"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	loader := cli.NewLoader(logger, cfg)

	records, err := cli.LoadRecords(ctx, loader)
	if err != nil {
		logger.Error("Pipeline failed before rendering", "error", err)
		os.Exit(1)
	}

	reportCfg, err := cli.ReportConfig(cfg)
	if err != nil {
		logger.Error("Failed to load report definition", "error", err)
		os.Exit(1)
	}

	rep, err := report.Build(ctx, records, reportCfg)
	if err != nil {
		logger.Error("Report assembly failed", "error", err)
		os.Exit(1)
	}

	srv, err := apphttp.NewServer(":"+cfg.Port, rep)
	if err != nil {
		logger.Error("Failed to initialize dashboard server", "error", err)
		os.Exit(1)
	}

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	shutdownCtx, done := cli.GracefulShutdown(logger, 30*time.Second, func(ctx context.Context) {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	logger.Info("Starting beanboard server",
		applog.FieldComponent, applog.ComponentApp,
		applog.FieldOperation, applog.OpStartup,
		applog.FieldPort, cfg.Port,
		applog.FieldBackend, cfg.DataSource,
		applog.FieldRows, rep.Transactions,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-shutdownCtx.Done()
	<-done
	slog.Info("Server stopped gracefully")
}
