package gtfsvalidator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/metrics"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
	"github.com/theoremus-urban-solutions/gtfs-validator/parser"
	"github.com/theoremus-urban-solutions/gtfs-validator/repository"
	"github.com/theoremus-urban-solutions/gtfs-validator/rules"
	"github.com/theoremus-urban-solutions/gtfs-validator/sink"
	"github.com/theoremus-urban-solutions/gtfs-validator/usecase"
)

// Options configures a Validator. The zero value is usable.
type Options struct {
	// Exclude names files left out of validation, e.g. "shapes.txt".
	Exclude []string
	// Parallel bounds how many tables load at once; 0 means one per table.
	Parallel int
	Logger   *zap.Logger
	Metrics  *metrics.Collector
	// Rules replaces rules.Default() when non-nil.
	Rules []rules.Rule
	// HTTPClient fetches feeds for RunURL; nil means http.DefaultClient.
	HTTPClient *http.Client
}

// Validator runs validations. It holds no per-run state and may be reused.
type Validator struct {
	opts Options
	log  *zap.Logger
}

func New(opts Options) *Validator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Rules == nil {
		opts.Rules = rules.Default()
	}
	return &Validator{opts: opts, log: log}
}

// Report is the outcome of one run.
type Report struct {
	RunID     string
	Input     string
	StartedAt time.Time
	Duration  time.Duration
	Notices   []notice.Notice
	// Entities counts stored entities per file.
	Entities map[string]int
	Errors   int
	Warnings int
	// Feed is nil when the input could not be opened.
	Feed *repository.Feed
}

// run holds the per-run sinks shared by Run and RunURL.
type run struct {
	report  *Report
	results *sink.ResultRepository
	summary *sink.Summary
	sink    notice.Sink
	log     *zap.Logger
}

func (v *Validator) begin(input string) *run {
	runID := uuid.NewString()
	r := &run{
		report:  &Report{RunID: runID, Input: input, StartedAt: time.Now()},
		results: sink.NewResultRepository(),
		summary: sink.NewSummary(),
		log:     v.log.With(zap.String("run_id", runID), zap.String("input", input)),
	}
	r.sink = sink.Tee(r.results, r.summary)
	if v.opts.Metrics != nil {
		v.opts.Metrics.RunsTotal.Inc()
		r.sink = v.opts.Metrics.Sink(r.sink)
	}
	return r
}

func (r *run) finish() *Report {
	r.report.Notices = r.results.Notices()
	r.report.Errors, r.report.Warnings = r.results.Counts()
	r.report.Duration = time.Since(r.report.StartedAt)
	r.summary.Log(r.log)
	r.log.Info("validation finished",
		zap.Int("errors", r.report.Errors),
		zap.Int("warnings", r.report.Warnings),
		zap.Duration("duration", r.report.Duration))
	return r.report
}

// Run validates the feed at path, a zip archive or a directory. Problems
// with the feed's content are reported as notices; an error is returned
// only when the feed cannot be read or ctx is cancelled.
func (v *Validator) Run(ctx context.Context, path string) (*Report, error) {
	r := v.begin(path)

	src, err := parser.Open(path)
	if errors.Is(err, parser.ErrCannotUnzip) {
		r.log.Warn("input is not a readable archive", zap.Error(err))
		r.sink.AddNotice(notice.NewCannotUnzipInputArchive(filepath.Base(path)))
		return r.finish(), nil
	}
	if err != nil {
		return nil, err
	}
	defer src.Close()

	src.CheckFiles(parser.Tables, v.opts.Exclude, r.sink)

	feed := repository.NewFeed()
	if err := v.loadTables(ctx, src, feed, r.sink, r.log); err != nil {
		return nil, err
	}

	for _, rule := range v.opts.Rules {
		if v.excludesAny(rule.Requires()) {
			r.log.Debug("skipping rule", zap.String("rule", rule.Name()))
			continue
		}
		rule.Validate(feed, r.sink)
	}

	r.report.Feed = feed
	r.report.Entities = feed.Counts()
	return r.finish(), nil
}

// RunURL downloads the zipped feed at url into dest and validates it. A feed
// that cannot be fetched yields a report holding a single download notice.
func (v *Validator) RunURL(ctx context.Context, url, dest string) (*Report, error) {
	err := parser.Download(ctx, v.opts.HTTPClient, url, dest)
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if errors.Is(err, parser.ErrDownload) {
		r := v.begin(url)
		r.log.Warn("feed download failed", zap.Error(err))
		r.sink.AddNotice(notice.NewCannotDownloadArchive(url))
		return r.finish(), nil
	}
	if err != nil {
		return nil, err
	}
	return v.Run(ctx, dest)
}

func (v *Validator) excludesAny(files []string) bool {
	for _, f := range files {
		if slices.Contains(v.opts.Exclude, f) {
			return true
		}
	}
	return false
}

// loadTables reads the tables concurrently. Each table buffers its notices,
// which are forwarded to s in table order once all tables are done.
func (v *Validator) loadTables(ctx context.Context, src *parser.Source, feed *repository.Feed, s notice.Sink, log *zap.Logger) error {
	var tables []parser.Table
	for _, t := range parser.Tables {
		if src.Has(t.Name) && !slices.Contains(v.opts.Exclude, t.Name) {
			tables = append(tables, t)
		}
	}
	buffers := make([]*sink.ResultRepository, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	if v.opts.Parallel > 0 {
		g.SetLimit(v.opts.Parallel)
	}
	for i, t := range tables {
		buffers[i] = sink.NewResultRepository()
		buf := buffers[i]
		g.Go(func() error {
			return v.loadTable(gctx, src, t, feed, buf, log)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load feed: %w", err)
	}
	for _, buf := range buffers {
		for _, n := range buf.Notices() {
			s.AddNotice(n)
		}
	}
	return nil
}

func (v *Validator) loadTable(ctx context.Context, src *parser.Source, t parser.Table, feed *repository.Feed, s notice.Sink, log *zap.Logger) error {
	start := time.Now()
	execute := processor(t.Name, feed, s)
	counts := map[usecase.Outcome]int{}

	n, err := src.ReadTable(ctx, t, s, func(row *parser.Row) {
		outcome := execute(row)
		counts[outcome]++
		if v.opts.Metrics != nil {
			v.opts.Metrics.ObserveRecord(t.Name, outcome)
		}
	})
	if err != nil {
		return err
	}
	if v.opts.Metrics != nil {
		v.opts.Metrics.ObserveTable(t.Name, time.Since(start))
	}
	log.Debug("table loaded",
		zap.String("table", t.Name),
		zap.Int("rows", n),
		zap.Int("stored", counts[usecase.OutcomeStored]),
		zap.Int("invalid", counts[usecase.OutcomeInvalid]),
		zap.Int("duplicate", counts[usecase.OutcomeDuplicate]),
		zap.Duration("took", time.Since(start)))
	return nil
}

// processor returns the Execute function of the processor for a file.
func processor(name string, feed *repository.Feed, s notice.Sink) func(usecase.ParsedEntity) usecase.Outcome {
	switch name {
	case gtfs.AgencyFile:
		return usecase.NewProcessParsedAgency(s, feed, gtfs.NewAgencyBuilder()).Execute
	case gtfs.RouteFile:
		return usecase.NewProcessParsedRoute(s, feed, gtfs.NewRouteBuilder()).Execute
	case gtfs.ShapeFile:
		return usecase.NewProcessParsedShapePoint(s, feed, gtfs.NewShapePointBuilder()).Execute
	case gtfs.AttributionFile:
		return usecase.NewProcessParsedAttribution(s, feed, gtfs.NewAttributionBuilder()).Execute
	case gtfs.TranslationFile:
		return usecase.NewProcessParsedTranslation(s, feed, gtfs.NewTranslationBuilder()).Execute
	}
	panic("gtfsvalidator: no processor for " + name)
}
