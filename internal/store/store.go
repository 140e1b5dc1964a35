// Package store persists analysis runs and their per-device verdicts behind
// a driver-agnostic interface with SQLite and Postgres backends.
package store

import (
	"context"

	"github.com/MrNetsudo/NetAssets/internal/classify"
	"github.com/MrNetsudo/NetAssets/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for analysis runs.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, source string, devices int) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, status model.RunStatus, validated, rejected int) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Per-device verdicts
	SaveResults(ctx context.Context, runID string, results []classify.Result) error
	ListResults(ctx context.Context, runID string) ([]classify.Result, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
