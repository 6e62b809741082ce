package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/internal/config"
	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/db"
	"github.com/jakechorley/shift-scheduler/pkg/input"
)

// mockRunStore implements db.Database for testing
type mockRunStore struct {
	runs        []db.Run
	assignments map[string][]db.Assignment
	warnings    map[string][]db.Warning
	insertErr   error
	getRunsErr  error
	warningsErr error
}

func newMockRunStore() *mockRunStore {
	return &mockRunStore{
		assignments: make(map[string][]db.Assignment),
		warnings:    make(map[string][]db.Warning),
	}
}

func (m *mockRunStore) InsertRun(ctx context.Context, run *db.Run, assignments []db.Assignment, warnings []db.Warning) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.runs = append(m.runs, *run)
	m.assignments[run.ID] = assignments
	m.warnings[run.ID] = warnings
	return nil
}

func (m *mockRunStore) GetRuns(ctx context.Context) ([]db.Run, error) {
	if m.getRunsErr != nil {
		return nil, m.getRunsErr
	}
	return m.runs, nil
}

func (m *mockRunStore) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	return m.assignments[runID], nil
}

func (m *mockRunStore) GetWarnings(ctx context.Context, runID string) ([]db.Warning, error) {
	if m.warningsErr != nil {
		return nil, m.warningsErr
	}
	return m.warnings[runID], nil
}

func (m *mockRunStore) Close() error {
	return nil
}

// fixNow pins the service clock for the duration of a test
func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = original })
}

func TestGenerateSchedule_StoresRun(t *testing.T) {
	// Wednesday
	fixNow(t, time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC))

	store := newMockRunStore()
	cfg := config.Default()
	doc := input.FromExample()

	result, err := GenerateSchedule(context.Background(), store, zap.NewNop(), cfg, doc, false)
	require.NoError(t, err)

	assert.True(t, result.Persisted)
	require.Len(t, store.runs, 1)

	run := store.runs[0]
	assert.Equal(t, result.Run.ID, run.ID)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "2025-01-13", run.WeekStart)
	assert.Equal(t, "2025-01-08T15:30:00Z", run.CreatedAt)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, 2, run.MinPerShift)
	assert.Equal(t, 4, run.MaxPerShift)
	assert.Equal(t, 5, run.MaxDaysPerEmployee)
	assert.Equal(t, 10, run.EmployeeCount)

	// Stored rows rebuild the same schedule
	assert.Equal(t, result.Result.Schedule, db.ScheduleFromAssignments(store.assignments[run.ID]))
	assert.Len(t, store.warnings[run.ID], len(result.Result.Warnings))
}

func TestGenerateSchedule_DocumentOverridesConfig(t *testing.T) {
	fixNow(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))

	store := newMockRunStore()
	doc := input.FromExample()
	seed := int64(7)
	maxDays := 6
	doc.Config = &input.ConfigOverrides{RandomSeed: &seed, MaxDaysPerEmployee: &maxDays}

	result, err := GenerateSchedule(context.Background(), store, zap.NewNop(), config.Default(), doc, false)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.Run.Seed)
	assert.Equal(t, 6, result.Run.MaxDaysPerEmployee)
	assert.Equal(t, 2, result.Run.MinPerShift)
}

func TestGenerateSchedule_DryRunDoesNotStore(t *testing.T) {
	store := newMockRunStore()

	result, err := GenerateSchedule(context.Background(), store, zap.NewNop(), config.Default(), input.FromExample(), true)
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.NotNil(t, result.Result)
	assert.Empty(t, store.runs)
}

func TestGenerateSchedule_NilStore(t *testing.T) {
	result, err := GenerateSchedule(context.Background(), nil, zap.NewNop(), config.Default(), input.FromExample(), false)
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.NotNil(t, result.Run)
}

func TestGenerateSchedule_Infeasible(t *testing.T) {
	store := newMockRunStore()
	doc := &input.Document{Employees: []string{"Alice"}}

	_, err := GenerateSchedule(context.Background(), store, zap.NewNop(), config.Default(), doc, false)
	require.Error(t, err)

	assert.True(t, errors.Is(err, scheduler.ErrInfeasibleConfig))
	assert.Empty(t, store.runs)
}

func TestGenerateSchedule_EmptyRoster(t *testing.T) {
	_, err := GenerateSchedule(context.Background(), nil, zap.NewNop(), config.Default(), &input.Document{}, false)
	require.Error(t, err)

	assert.True(t, errors.Is(err, scheduler.ErrInvalidInput))
}

func TestGenerateSchedule_NilDocument(t *testing.T) {
	_, err := GenerateSchedule(context.Background(), nil, zap.NewNop(), config.Default(), nil, false)
	require.Error(t, err)

	assert.True(t, errors.Is(err, scheduler.ErrInvalidInput))
}

func TestGenerateSchedule_InsertError(t *testing.T) {
	store := newMockRunStore()
	store.insertErr = errors.New("connection refused")

	_, err := GenerateSchedule(context.Background(), store, zap.NewNop(), config.Default(), input.FromExample(), false)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "failed to insert run")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNextWeekStart_Midweek(t *testing.T) {
	next, err := NextWeekStart("FREQ=WEEKLY;BYDAY=MO", time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), next)
}

func TestNextWeekStart_OnRuleDaySkipsToNextWeek(t *testing.T) {
	// 2025-01-06 is a Monday
	next, err := NextWeekStart("FREQ=WEEKLY;BYDAY=MO", time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2025-01-13", next.Format("2006-01-02"))
}

func TestNextWeekStart_SundayRule(t *testing.T) {
	next, err := NextWeekStart("FREQ=WEEKLY;BYDAY=SU", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2025-01-12", next.Format("2006-01-02"))
}

func TestNextWeekStart_InvalidRule(t *testing.T) {
	_, err := NextWeekStart("NOT_A_RULE", time.Now())
	require.Error(t, err)

	assert.Contains(t, err.Error(), "failed to parse week start rule")
}
