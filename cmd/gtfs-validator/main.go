package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-validator/config"
	"github.com/theoremus-urban-solutions/gtfs-validator/internal"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      config.AppConfig
		cfg        config.AppConfig
		logger     *zap.Logger
	)

	root := &cobra.Command{
		Use:   "gtfs-validator",
		Short: "Validate a GTFS schedule feed",
		Long: `gtfs-validator checks a GTFS schedule feed, given as a zip archive,
a directory or a URL, and writes every problem found as a notice to
<output>/results.json (or results.pb with --proto).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			mergeFlags(cmd, &cfg, flags)
			if err := config.Validate(cfg); err != nil {
				return err
			}
			logger, err = internal.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Validator.Input == "" && cfg.Validator.URL == "" {
				return fmt.Errorf("one of --input or --url is required")
			}
			return run(cmd.Context(), cfg, logger)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to config.yml (default: search config.yml, ./config/config.yml)")
	pf.StringVar(&flags.Logging.Level, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.Logging.Format, "log-format", "console", "Log format: console or json")
	pf.StringSliceVarP(&flags.Validator.Exclude, "exclude", "x", nil, "Files to exclude from validation, e.g. shapes.txt")
	pf.IntVar(&flags.Validator.Parallel, "parallel", config.DefaultParallel, "Number of tables loaded concurrently")

	f := root.Flags()
	f.StringVarP(&flags.Validator.Input, "input", "i", "", "GTFS zip archive or directory; with --url, where to store the download")
	f.StringVarP(&flags.Validator.URL, "url", "u", "", "URL of a zipped GTFS feed to download and validate")
	f.StringVarP(&flags.Validator.Output, "output", "o", config.DefaultOutput, "Directory for the results file")
	f.BoolVar(&flags.Validator.Proto, "proto", false, "Export results as protobuf instead of JSON")
	f.StringVar(&flags.Validator.ResultsDB, "results-db", "", "SQLite database to record the run in")
	f.StringVar(&flags.Validator.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg, logger)
		},
	}
	serveCmd.Flags().IntVarP(&flags.Server.Port, "port", "p", config.DefaultPort, "HTTP port")
	root.AddCommand(serveCmd)

	return root
}

// mergeFlags copies the flags set on the command line over the file config.
func mergeFlags(cmd *cobra.Command, dst *config.AppConfig, flags config.AppConfig) {
	changed := cmd.Flags().Changed
	if changed("input") {
		dst.Validator.Input = flags.Validator.Input
	}
	if changed("url") {
		dst.Validator.URL = flags.Validator.URL
	}
	if changed("output") {
		dst.Validator.Output = flags.Validator.Output
	}
	if changed("exclude") {
		dst.Validator.Exclude = flags.Validator.Exclude
	}
	if changed("proto") {
		dst.Validator.Proto = flags.Validator.Proto
	}
	if changed("parallel") {
		dst.Validator.Parallel = flags.Validator.Parallel
	}
	if changed("results-db") {
		dst.Validator.ResultsDB = flags.Validator.ResultsDB
	}
	if changed("metrics-file") {
		dst.Validator.MetricsFile = flags.Validator.MetricsFile
	}
	if changed("port") {
		dst.Server.Port = flags.Server.Port
	}
	if changed("log-level") {
		dst.Logging.Level = flags.Logging.Level
	}
	if changed("log-format") {
		dst.Logging.Format = flags.Logging.Format
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
