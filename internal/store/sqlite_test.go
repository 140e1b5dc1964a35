package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrNetsudo/NetAssets/internal/classify"
	"github.com/MrNetsudo/NetAssets/internal/geo"
	"github.com/MrNetsudo/NetAssets/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "netassets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "node-list.xlsx", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)
	assert.Equal(t, 3, run.Devices)

	require.NoError(t, s.CompleteRun(ctx, run.ID, model.RunStatusComplete, 2, 1))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, 2, got.Validated)
	assert.Equal(t, 1, got.Rejected)
	assert.False(t, got.FinishedAt.IsZero())
}

func TestSQLiteStore_GetRun_NotFound(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetRun(context.Background(), "nonexistent")
	assert.Error(t, err)
}

func TestSQLiteStore_CompleteRun_NotFound(t *testing.T) {
	s := newTestSQLite(t)

	err := s.CompleteRun(context.Background(), "nonexistent", model.RunStatusComplete, 0, 0)
	assert.Error(t, err)
}

func TestSQLiteStore_ListRuns_StatusFilter(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	a, err := s.CreateRun(ctx, "a.xlsx", 1)
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "b.xlsx", 2)
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, a.ID, model.RunStatusComplete, 1, 0))

	complete, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, a.ID, complete[0].ID)

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := s.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteStore_SaveAndListResults(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "node-list.xlsx", 2)
	require.NoError(t, err)

	results := []classify.Result{
		{
			Device: model.DeviceRecord{SheetName: "Texas", DeviceName: "txcrsw01"},
			Location: geo.ValidatedLocation{
				State: "Texas", StateCode: "TX", Country: "United States",
				WorldRegion: geo.RegionUS, Confidence: 98, Validated: true,
			},
		},
		{
			Device:   model.DeviceRecord{DeviceName: "unknown-device"},
			Location: geo.Rejected(),
		},
	}

	require.NoError(t, s.SaveResults(ctx, run.ID, results))

	got, err := s.ListResults(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "txcrsw01", got[0].Device.DeviceName)
	assert.Equal(t, "Texas", got[0].Location.State)
	assert.True(t, got[0].Location.Validated)
	assert.False(t, got[1].Location.Validated)
}

func TestSQLiteStore_ListResults_Empty(t *testing.T) {
	s := newTestSQLite(t)

	got, err := s.ListResults(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, got)
}
