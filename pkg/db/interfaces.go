package db

import "context"

// RunStore defines the interface for storing and listing scheduling runs
type RunStore interface {
	InsertRun(ctx context.Context, run *Run, assignments []Assignment, warnings []Warning) error
	GetRuns(ctx context.Context) ([]Run, error)
}

// RunReader defines the read side used to inspect stored runs
type RunReader interface {
	GetRuns(ctx context.Context) ([]Run, error)
	GetAssignments(ctx context.Context, runID string) ([]Assignment, error)
	GetWarnings(ctx context.Context, runID string) ([]Warning, error)
}

// Database defines the interface for all database operations.
// Both postgres.DB and sqlite.DB implement this interface.
type Database interface {
	RunStore
	RunReader
	Close() error
}
