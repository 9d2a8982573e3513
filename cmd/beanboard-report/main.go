// One-shot variant of the dashboard: runs the full load, normalize and
// aggregate cycle once and writes the report to stdout as aligned text.
package main

import (
	"context"
	"os"

	"beanboard/internal/cli"
	applog "beanboard/internal/log"
	"beanboard/internal/report"
	"beanboard/internal/term"
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

	logger.Info("Rendering report",
		applog.FieldComponent, applog.ComponentTerm,
		applog.FieldOperation, applog.OpRender,
		applog.FieldRows, rep.Transactions,
	)
	if err := term.Render(os.Stdout, rep); err != nil {
		logger.Error("Report rendering failed", "error", err)
		os.Exit(1)
	}
}
