package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "full file",
			content: `validator:
  input: feed.zip
  output: out
  exclude: [shapes.txt]
  proto: true
  parallel: 2
  resultsDB: results.db
server:
  port: 8080
logging:
  level: debug
  format: json
`,
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, "feed.zip", cfg.Validator.Input)
				assert.Equal(t, "out", cfg.Validator.Output)
				assert.Equal(t, []string{"shapes.txt"}, cfg.Validator.Exclude)
				assert.True(t, cfg.Validator.Proto)
				assert.Equal(t, 2, cfg.Validator.Parallel)
				assert.Equal(t, "results.db", cfg.Validator.ResultsDB)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:    "defaults applied",
			content: "validator:\n  input: feed\n",
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, DefaultOutput, cfg.Validator.Output)
				assert.Equal(t, DefaultParallel, cfg.Validator.Parallel)
				assert.Equal(t, DefaultPort, cfg.Server.Port)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "console", cfg.Logging.Format)
			},
		},
		{name: "bad level", content: "logging:\n  level: loud\n", wantErr: true},
		{name: "bad exclusion", content: "validator:\n  exclude: [shapes.csv]\n", wantErr: true},
		{name: "bad url", content: "validator:\n  url: ftp://example.com/feed.zip\n", wantErr: true},
		{name: "negative parallel", content: "validator:\n  parallel: -1\n", wantErr: true},
		{name: "port out of range", content: "server:\n  port: 70000\n", wantErr: true},
		{name: "not yaml", content: "validator: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Validator.Output)
	assert.Equal(t, DefaultParallel, cfg.Validator.Parallel)
}
