package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/internal/config"
	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/db"
	"github.com/jakechorley/shift-scheduler/pkg/input"
)

// now is replaced in tests
var now = time.Now

// ScheduleResult represents the outcome of generating a weekly schedule
type ScheduleResult struct {
	Run       *db.Run
	Result    *scheduler.Result
	Persisted bool
}

// GenerateSchedule runs the scheduler over doc and stores the run.
// The doc's config overrides are applied on top of cfg's scheduler defaults.
// Nothing is stored when dryRun is set or store is nil.
func GenerateSchedule(
	ctx context.Context,
	store db.RunStore,
	logger *zap.Logger,
	cfg *config.Config,
	doc *input.Document,
	dryRun bool,
) (*ScheduleResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no input document", scheduler.ErrInvalidInput)
	}

	schedCfg := doc.Apply(cfg.SchedulerConfig())

	logger.Debug("Generating schedule",
		zap.Int("employees", len(doc.Employees)),
		zap.Int("min_per_shift", schedCfg.MinPerShift),
		zap.Int("max_per_shift", schedCfg.MaxPerShift),
		zap.Int("max_days_per_employee", schedCfg.MaxDaysPerEmployee),
		zap.Int64("seed", schedCfg.RandomSeed))

	result, err := scheduler.Run(doc.Employees, doc.RawPreferences(), schedCfg)
	if err != nil {
		var infeasible *scheduler.InfeasibleError
		if errors.As(err, &infeasible) {
			logger.Warn("Configuration is infeasible",
				zap.Int("required", infeasible.Required),
				zap.Int("supply", infeasible.Supply),
				zap.Int("suggested_employees", infeasible.SuggestedEmployees))
		}
		return nil, err
	}

	logger.Info("Schedule generated",
		zap.Int("employees", len(result.Employees)),
		zap.Int("warnings", len(result.Warnings)))

	createdAt := now().UTC()
	weekStart, err := NextWeekStart(cfg.WeekStartRule, createdAt)
	if err != nil {
		return nil, err
	}

	run := &db.Run{
		ID:                 uuid.New().String(),
		WeekStart:          weekStart.Format("2006-01-02"),
		CreatedAt:          createdAt.Format(time.RFC3339),
		Seed:               schedCfg.RandomSeed,
		MinPerShift:        schedCfg.MinPerShift,
		MaxPerShift:        schedCfg.MaxPerShift,
		MaxDaysPerEmployee: schedCfg.MaxDaysPerEmployee,
		EmployeeCount:      len(result.Employees),
	}

	if dryRun || store == nil {
		logger.Debug("Skipping persistence", zap.Bool("dry_run", dryRun), zap.Bool("has_store", store != nil))
		return &ScheduleResult{Run: run, Result: result}, nil
	}

	assignments := db.AssignmentsFromSchedule(run.ID, result.Schedule)
	warnings := db.WarningsFromResult(run.ID, result.Warnings)

	logger.Debug("Storing run",
		zap.String("run_id", run.ID),
		zap.String("week_start", run.WeekStart),
		zap.Int("assignments", len(assignments)))

	if err := store.InsertRun(ctx, run, assignments, warnings); err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	logger.Info("Run stored", zap.String("run_id", run.ID), zap.String("week_start", run.WeekStart))

	return &ScheduleResult{Run: run, Result: result, Persisted: true}, nil
}

// NextWeekStart returns the first occurrence of rule strictly after the day containing from.
// Occurrences are computed at midnight UTC.
func NextWeekStart(rule string, from time.Time) (time.Time, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse week start rule: %w", err)
	}

	from = from.UTC()
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	r.DTStart(day)

	next := r.After(day, false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("week start rule %q has no occurrence after %s", rule, day.Format("2006-01-02"))
	}

	return next, nil
}
