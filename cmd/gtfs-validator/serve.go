package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	gtfsvalidator "github.com/theoremus-urban-solutions/gtfs-validator"
	"github.com/theoremus-urban-solutions/gtfs-validator/config"
	"github.com/theoremus-urban-solutions/gtfs-validator/metrics"
	"github.com/theoremus-urban-solutions/gtfs-validator/server"
)

func serve(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s := server.New(fmt.Sprintf(":%d", cfg.Server.Port), gtfsvalidator.Options{
		Exclude:  cfg.Validator.Exclude,
		Parallel: cfg.Validator.Parallel,
		Logger:   logger,
		Metrics:  metrics.New(reg),
	}, reg)
	return s.ListenAndServe(ctx)
}
