package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	migrator "github.com/jakechorley/shift-scheduler/migrator/sqlite"
	"github.com/jakechorley/shift-scheduler/pkg/db"
)

// DB provides database operations using SQLite
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the SQLite database at path and applies migrations
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases consistent across queries
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrator.Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// InsertRun stores a run with its assignments and warnings in one transaction
func (d *DB) InsertRun(ctx context.Context, run *db.Run, assignments []db.Assignment, warnings []db.Warning) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO schedule_run (id, week_start, created_at, seed, min_per_shift, max_per_shift, max_days_per_employee, employee_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.WeekStart, run.CreatedAt, run.Seed, run.MinPerShift, run.MaxPerShift, run.MaxDaysPerEmployee, run.EmployeeCount)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_assignment (run_id, day, shift, employee)
			VALUES (?, ?, ?, ?)
		`, a.RunID, a.Day, a.Shift, a.Employee)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	for _, w := range warnings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_warning (run_id, seq, message)
			VALUES (?, ?, ?)
		`, w.RunID, w.Seq, w.Message)
		if err != nil {
			return fmt.Errorf("failed to insert warning: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRuns retrieves all runs, newest first
func (d *DB) GetRuns(ctx context.Context) ([]db.Run, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT id, week_start, created_at, seed, min_per_shift, max_per_shift, max_days_per_employee, employee_count
		FROM schedule_run
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []db.Run
	for rows.Next() {
		var r db.Run
		if err := rows.Scan(&r.ID, &r.WeekStart, &r.CreatedAt, &r.Seed, &r.MinPerShift, &r.MaxPerShift, &r.MaxDaysPerEmployee, &r.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// GetAssignments retrieves the assignments of a run in insertion order
func (d *DB) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT run_id, day, shift, employee
		FROM schedule_assignment
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.RunID, &a.Day, &a.Shift, &a.Employee); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// GetWarnings retrieves the warnings of a run in emission order
func (d *DB) GetWarnings(ctx context.Context, runID string) ([]db.Warning, error) {
	rows, err := d.conn.QueryContext(ctx, `
		SELECT run_id, seq, message
		FROM schedule_warning
		WHERE run_id = ?
		ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query warnings: %w", err)
	}
	defer rows.Close()

	var warnings []db.Warning
	for rows.Next() {
		var w db.Warning
		if err := rows.Scan(&w.RunID, &w.Seq, &w.Message); err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		warnings = append(warnings, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating warnings: %w", err)
	}

	return warnings, nil
}
