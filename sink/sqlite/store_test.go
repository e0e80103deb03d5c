package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

func TestStore_SaveAndReadBack(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "results.db")
	s, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	notices := []notice.Notice{
		notice.NewFloatFieldValueOutOfRange("shapes.txt", "shape_pt_lat", "S1", -90, 90, 120),
		notice.NewExtraFileFound("notes.txt"),
	}
	require.NoError(t, s.SaveRun(ctx, Run{ID: "run-1", Input: "feed.zip", StartedAt: started, Errors: 1, Warnings: 1}, notices))
	require.NoError(t, s.SaveRun(ctx, Run{ID: "run-2", Input: "feed.zip", StartedAt: started.Add(time.Hour)}, nil))

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, started, runs[1].StartedAt)
	assert.Equal(t, 1, runs[1].Errors)

	got, err := s.Notices(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, notice.CodeFloatFieldValueOutOfRange, got[0].Code)
	assert.Equal(t, notice.SeverityError, got[0].Severity)
	assert.Equal(t, "S1", got[0].EntityID)
	assert.Equal(t, "shape_pt_lat", got[0].Payload[notice.KeyFieldName])
	assert.Equal(t, 120.0, got[0].Payload[notice.KeyActualValue])
	assert.Equal(t, notice.SeverityWarning, got[1].Severity)

	empty, err := s.Notices(ctx, "run-2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_DuplicateRunIDRollsBack(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	run := Run{ID: "run-1", Input: "feed.zip", StartedAt: time.Now()}
	require.NoError(t, s.SaveRun(ctx, run, []notice.Notice{notice.NewExtraFileFound("a.txt")}))
	assert.Error(t, s.SaveRun(ctx, run, []notice.Notice{notice.NewExtraFileFound("b.txt")}))

	got, err := s.Notices(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a.txt", got[0].Filename)
}
