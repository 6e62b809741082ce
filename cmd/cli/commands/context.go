package commands

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/internal/config"
	"github.com/jakechorley/shift-scheduler/pkg/db"
)

// AppContext holds the application dependencies shared across all commands.
// Database is nil when no store is configured.
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
	Out      io.Writer
}

// runStore returns the database as a RunStore, or a nil interface when none is configured
func (app *AppContext) runStore() db.RunStore {
	if app.Database == nil {
		return nil
	}
	return app.Database
}
