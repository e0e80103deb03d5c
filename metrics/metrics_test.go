package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
	"github.com/theoremus-urban-solutions/gtfs-validator/sink"
	"github.com/theoremus-urban-solutions/gtfs-validator/usecase"
)

func TestCollector_Sink(t *testing.T) {
	c := New(prometheus.NewRegistry())
	results := sink.NewResultRepository()
	s := c.Sink(results)

	s.AddNotice(notice.NewMissingRequiredFile("agency.txt"))
	s.AddNotice(notice.NewMissingRequiredFile("routes.txt"))
	s.AddNotice(notice.NewExtraFileFound("notes.txt"))

	assert.Len(t, results.Notices(), 3)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.NoticesTotal.WithLabelValues(notice.CodeMissingRequiredFile, "ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.NoticesTotal.WithLabelValues(notice.CodeExtraFileFound, "WARNING")))
}

func TestCollector_Records(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.ObserveRecord("agency.txt", usecase.OutcomeStored)
	c.ObserveRecord("agency.txt", usecase.OutcomeDuplicate)
	c.ObserveRecord("agency.txt", usecase.OutcomeStored)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.RecordsTotal.WithLabelValues("agency.txt", "stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RecordsTotal.WithLabelValues("agency.txt", "duplicate")))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.RunsTotal.Inc()
	c.ObserveTable("shapes.txt", 20*time.Millisecond)

	path := filepath.Join(t.TempDir(), "validator.prom")
	require.NoError(t, WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "gtfs_validator_runs_total 1"))
	assert.Equal(t, 1, testutil.CollectAndCount(c.TableDuration))
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
