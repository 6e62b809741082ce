package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/db"
)

// RunSummary pairs a stored run with the number of warnings it produced
type RunSummary struct {
	Run          db.Run
	WarningCount int
}

const maxConcurrentWarningQueries = 10

// ErrRunNotFound is returned by ShowRun when no stored run has the given ID
var ErrRunNotFound = errors.New("run not found")

// ViewRuns lists stored runs, newest first, with their warning counts
func ViewRuns(ctx context.Context, store db.RunReader, logger *zap.Logger) ([]RunSummary, error) {
	logger.Debug("Fetching stored runs")

	runs, err := store.GetRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch runs: %w", err)
	}

	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i].Run = r
	}

	// Count warnings in parallel with semaphore
	errs := make([]error, len(runs))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentWarningQueries)

	for i := range runs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			warnings, err := store.GetWarnings(ctx, runs[i].ID)
			if err != nil {
				errs[i] = fmt.Errorf("failed to fetch warnings for run %s: %w", runs[i].ID, err)
				return
			}
			summaries[i].WarningCount = len(warnings)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("ViewRuns completed", zap.Int("runs", len(summaries)))

	return summaries, nil
}

// StoredRun is a run rebuilt from its stored assignments and warnings
type StoredRun struct {
	Run    db.Run
	Result *scheduler.Result
}

// ShowRun loads a stored run by ID and rebuilds its schedule for rendering
func ShowRun(ctx context.Context, store db.RunReader, logger *zap.Logger, runID string) (*StoredRun, error) {
	runs, err := store.GetRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch runs: %w", err)
	}

	var found *db.Run
	for i := range runs {
		if runs[i].ID == runID {
			found = &runs[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	assignments, err := store.GetAssignments(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	warnings, err := store.GetWarnings(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warnings: %w", err)
	}

	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}

	logger.Debug("Loaded stored run",
		zap.String("run_id", runID),
		zap.Int("assignments", len(assignments)),
		zap.Int("warnings", len(warnings)))

	return &StoredRun{
		Run: *found,
		Result: &scheduler.Result{
			Schedule: db.ScheduleFromAssignments(assignments),
			Warnings: messages,
		},
	}, nil
}
