package gtfsvalidator

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/metrics"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	agencyTxt = "agency_id,agency_name,agency_url,agency_timezone\n" +
		"A1,Metro,https://metro.example.com,America/Toronto\n"
	routesTxt = "route_id,agency_id,route_short_name,route_long_name,route_type\n" +
		"R1,A1,10,Crosstown,3\n" +
		"R2,A1,20,Lakeshore,3\n"
	shapesTxt = "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
		"S1,45.0,-73.0,1\n" +
		"S1,45.1,-73.1,0\n"
)

func writeFeed(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func codes(notices []notice.Notice) []string {
	var out []string
	for _, n := range notices {
		out = append(out, n.Code())
	}
	return out
}

func TestRun_ValidFeed(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"agency.txt": agencyTxt,
		"routes.txt": routesTxt,
		"shapes.txt": shapesTxt,
	})

	report, err := New(Options{Logger: zaptest.NewLogger(t)}).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Empty(t, report.Notices)
	assert.Zero(t, report.Errors)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, map[string]int{
		gtfs.AgencyFile:      1,
		gtfs.RouteFile:       2,
		gtfs.ShapeFile:       2,
		gtfs.AttributionFile: 0,
		gtfs.TranslationFile: 0,
	}, report.Entities)

	pts := report.Feed.ShapePoints("S1")
	require.Len(t, pts, 2)
	assert.Equal(t, 0, pts[0].ShapePtSequence())
}

func TestRun_NoticesInTableOrder(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"agency.txt": agencyTxt + "A1,Metro again,https://metro.example.com,UTC\n",
		"routes.txt": routesTxt + "R3,A9,30,,3\n",
		"shapes.txt": shapesTxt + "S1,120.0,-73.0,2\n",
		"extra.txt":  "x\n",
	})

	for _, parallel := range []int{0, 1, 4} {
		report, err := New(Options{Parallel: parallel}).Run(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, []string{
			notice.CodeExtraFileFound,
			notice.CodeDuplicatedEntity,
			notice.CodeFloatFieldValueOutOfRange,
			notice.CodeUnknownReference,
		}, codes(report.Notices), "parallel=%d", parallel)
		assert.Equal(t, 3, report.Errors)
		assert.Equal(t, 1, report.Warnings)
	}
}

func TestRun_Exclusions(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"agency.txt": agencyTxt,
		"shapes.txt": shapesTxt + "S1,120.0,-73.0,2\n",
	})

	report, err := New(Options{Exclude: []string{gtfs.RouteFile, gtfs.ShapeFile}}).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Empty(t, report.Notices)
	assert.Equal(t, 0, report.Entities[gtfs.ShapeFile])
}

func TestRun_MissingRequiredFile(t *testing.T) {
	dir := writeFeed(t, map[string]string{"agency.txt": agencyTxt})

	report, err := New(Options{}).Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{notice.CodeMissingRequiredFile}, codes(report.Notices))
	assert.Equal(t, gtfs.RouteFile, report.Notices[0].Filename())
}

func TestRun_CannotUnzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(p, []byte("garbage"), 0o644))

	report, err := New(Options{}).Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{notice.CodeCannotUnzipInputArchive}, codes(report.Notices))
	assert.Equal(t, "feed.zip", report.Notices[0].Filename())
	assert.Nil(t, report.Feed)
}

func TestRun_Errors(t *testing.T) {
	_, err := New(Options{}).Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := writeFeed(t, map[string]string{"agency.txt": agencyTxt, "routes.txt": routesTxt})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(Options{}).Run(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Metrics(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"agency.txt": agencyTxt,
		"routes.txt": routesTxt + "R1,A1,10,Crosstown,3\n",
	})
	m := metrics.New(prometheus.NewRegistry())

	_, err := New(Options{Metrics: m}).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues(gtfs.RouteFile, "stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues(gtfs.RouteFile, "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NoticesTotal.WithLabelValues(notice.CodeDuplicatedEntity, "ERROR")))
}

func TestRun_Translations(t *testing.T) {
	dir := writeFeed(t, map[string]string{
		"agency.txt": agencyTxt,
		"routes.txt": routesTxt,
		"translations.txt": "table_name,field_name,language,translation,record_id,field_value\n" +
			"routes,route_long_name,fr,Traversier,R1,\n" +
			"routes,route_long_name,fr,Traversier encore,R1,\n" +
			"stops,stop_name,fr,Gare,,Central\n",
	})

	report, err := New(Options{}).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{notice.CodeDuplicatedEntity}, codes(report.Notices))
	assert.Equal(t, "R1", report.Notices[0].EntityID())
	assert.Equal(t, 2, report.Entities[gtfs.TranslationFile])
}

func zipFeed(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRunURL(t *testing.T) {
	archive := zipFeed(t, map[string]string{"agency.txt": agencyTxt, "routes.txt": routesTxt})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feed.zip" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(archive)
	}))
	defer srv.Close()
	v := New(Options{HTTPClient: srv.Client()})

	t.Run("downloaded", func(t *testing.T) {
		report, err := v.RunURL(context.Background(), srv.URL+"/feed.zip", filepath.Join(t.TempDir(), "feed.zip"))
		require.NoError(t, err)
		assert.Empty(t, report.Notices)
		assert.Equal(t, 2, report.Entities[gtfs.RouteFile])
	})

	t.Run("not found", func(t *testing.T) {
		url := srv.URL + "/missing.zip"
		report, err := v.RunURL(context.Background(), url, filepath.Join(t.TempDir(), "feed.zip"))
		require.NoError(t, err)
		assert.Equal(t, []string{notice.CodeCannotDownloadArchive}, codes(report.Notices))
		assert.Equal(t, url, report.Notices[0].Filename())
		assert.Equal(t, 1, report.Errors)
		assert.Nil(t, report.Feed)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := v.RunURL(ctx, srv.URL+"/feed.zip", filepath.Join(t.TempDir(), "feed.zip"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
