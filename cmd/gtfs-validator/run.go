package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	gtfsvalidator "github.com/theoremus-urban-solutions/gtfs-validator"
	"github.com/theoremus-urban-solutions/gtfs-validator/config"
	"github.com/theoremus-urban-solutions/gtfs-validator/formatter"
	"github.com/theoremus-urban-solutions/gtfs-validator/metrics"
	"github.com/theoremus-urban-solutions/gtfs-validator/sink/sqlite"
)

func run(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) error {
	vc := cfg.Validator
	if err := os.MkdirAll(vc.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	reg := prometheus.NewRegistry()
	v := gtfsvalidator.New(gtfsvalidator.Options{
		Exclude:  vc.Exclude,
		Parallel: vc.Parallel,
		Logger:   logger,
		Metrics:  metrics.New(reg),
	})
	var report *gtfsvalidator.Report
	var err error
	if vc.URL != "" {
		dest := vc.Input
		if dest == "" {
			dest = filepath.Join(vc.Output, "input.zip")
		}
		logger.Info("downloading feed", zap.String("url", vc.URL), zap.String("dest", dest))
		report, err = v.RunURL(ctx, vc.URL, dest)
	} else {
		report, err = v.Run(ctx, vc.Input)
	}
	if err != nil {
		return err
	}

	exporter := formatter.New(vc.Proto)
	out := filepath.Join(vc.Output, "results."+exporter.Extension())
	if err := writeResults(out, exporter, report); err != nil {
		return err
	}
	logger.Info("results written", zap.String("path", out), zap.Int("notices", len(report.Notices)))

	if vc.ResultsDB != "" {
		if err := saveRun(ctx, vc.ResultsDB, report); err != nil {
			return err
		}
		logger.Info("run recorded", zap.String("db", vc.ResultsDB), zap.String("run_id", report.RunID))
	}
	if vc.MetricsFile != "" {
		if err := metrics.WriteTextfile(vc.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func writeResults(path string, exporter formatter.Exporter, report *gtfsvalidator.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	if err := exporter.Export(f, report.Notices); err != nil {
		f.Close()
		return fmt.Errorf("export results: %w", err)
	}
	return f.Close()
}

func saveRun(ctx context.Context, path string, report *gtfsvalidator.Report) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(ctx, sqlite.Run{
		ID:        report.RunID,
		Input:     report.Input,
		StartedAt: report.StartedAt,
		Errors:    report.Errors,
		Warnings:  report.Warnings,
	}, report.Notices)
}
