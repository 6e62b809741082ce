package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Tables lists the tables the run-storage schema creates
var Tables = []string{"schedule_run", "schedule_assignment", "schedule_warning"}

// Migrate applies the embedded run-storage schema to a SQLite database.
// Applied versions are tracked by darwin, so calling it again is a no-op.
func Migrate(db *sql.DB) error {
	if err := sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(migrationFiles, "sql"); err != nil {
		return fmt.Errorf("failed to apply run-storage migrations: %w", err)
	}
	return nil
}
