// Package store persists run history: one row per dataset run with its
// outcome and summary statistics.
package store

import (
	"context"

	"github.com/sells-group/bizgen/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Kind   model.RunKind   `json:"kind,omitempty"`
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
}

// Store defines the run-history persistence interface.
type Store interface {
	CreateRun(ctx context.Context, kind model.RunKind, seed uint64) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, stats model.BatchStats, csvPath, jsonPath string) error
	FailRun(ctx context.Context, runID string, runErr error) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
