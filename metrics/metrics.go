// Package metrics exposes Prometheus counters for validation runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
	"github.com/theoremus-urban-solutions/gtfs-validator/usecase"
)

const namespace = "gtfs_validator"

// Collector groups the metrics of the validator. Register it on a dedicated
// registry when several validators share a process.
type Collector struct {
	// NoticesTotal counts emitted notices by code and severity
	NoticesTotal *prometheus.CounterVec
	// RecordsTotal counts processed rows by table and outcome
	RecordsTotal *prometheus.CounterVec
	// TableDuration measures how long loading one table takes
	TableDuration *prometheus.HistogramVec
	RunsTotal     prometheus.Counter
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		NoticesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notices_total",
				Help:      "Total number of notices emitted",
			},
			[]string{"code", "severity"},
		),
		RecordsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_total",
				Help:      "Total number of records processed",
			},
			[]string{"table", "outcome"},
		),
		TableDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "table_duration_seconds",
				Help:      "Time spent loading a table",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"table"},
		),
		RunsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of validation runs",
			},
		),
	}
}

// Sink wraps next so every notice passing through is counted.
func (c *Collector) Sink(next notice.Sink) notice.Sink {
	return countingSink{c: c, next: next}
}

type countingSink struct {
	c    *Collector
	next notice.Sink
}

func (s countingSink) AddNotice(n notice.Notice) {
	s.c.NoticesTotal.WithLabelValues(n.Code(), string(n.Severity())).Inc()
	s.next.AddNotice(n)
}

func (c *Collector) ObserveRecord(table string, outcome usecase.Outcome) {
	c.RecordsTotal.WithLabelValues(table, outcome.String()).Inc()
}

func (c *Collector) ObserveTable(table string, d time.Duration) {
	c.TableDuration.WithLabelValues(table).Observe(d.Seconds())
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
