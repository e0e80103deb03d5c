package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-validator/formatter"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
	"github.com/theoremus-urban-solutions/gtfs-validator/sink/sqlite"
)

func writeFeed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"agency.txt": "agency_name,agency_url,agency_timezone\nMetro,https://metro.example.com,UTC\n",
		"routes.txt": "route_id,route_short_name,route_type\nR1,10,3\nR2,,3\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRootCmd_WritesJSONAndRecordsRun(t *testing.T) {
	feed := writeFeed(t)
	out := filepath.Join(t.TempDir(), "out")
	db := filepath.Join(t.TempDir(), "results.db")
	prom := filepath.Join(t.TempDir(), "validator.prom")

	require.NoError(t, execute(t, "-i", feed, "-o", out, "--results-db", db,
		"--metrics-file", prom, "--log-level", "error", "--config", writeConfig(t, "")))

	b, err := os.ReadFile(filepath.Join(out, "results.json"))
	require.NoError(t, err)
	var doc struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, notice.CodeMissingShortAndLongNameForRoute, doc.Results[0]["code"])

	store, err := sqlite.Open(context.Background(), db)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Errors)

	metricsText, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(metricsText), "gtfs_validator_runs_total 1"))
}

func TestRootCmd_ProtoAndExclusionFromConfig(t *testing.T) {
	feed := writeFeed(t)
	out := filepath.Join(t.TempDir(), "out")
	cfg := writeConfig(t, "validator:\n  proto: true\n  exclude: [routes.txt]\nlogging:\n  level: error\n")

	require.NoError(t, execute(t, "--config", cfg, "-i", feed, "-o", out))

	b, err := os.ReadFile(filepath.Join(out, "results.pb"))
	require.NoError(t, err)
	doc, err := formatter.DecodeProto(b)
	require.NoError(t, err)
	assert.Empty(t, doc["results"])
}

func TestRootCmd_RequiresInput(t *testing.T) {
	err := execute(t, "--config", writeConfig(t, ""), "--log-level", "error")
	assert.ErrorContains(t, err, "--input")
}

func TestRootCmd_InvalidFlagValue(t *testing.T) {
	err := execute(t, "--config", writeConfig(t, ""), "-i", writeFeed(t), "--log-level", "loud")
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestServeCmd_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "--port", "0", "--config", writeConfig(t, ""), "--log-level", "error"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.NoError(t, cmd.ExecuteContext(ctx))
}
