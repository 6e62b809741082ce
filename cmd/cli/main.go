package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/cmd/cli/commands"
	"github.com/jakechorley/shift-scheduler/internal/config"
	"github.com/jakechorley/shift-scheduler/pkg/db"
	"github.com/jakechorley/shift-scheduler/pkg/postgres"
	"github.com/jakechorley/shift-scheduler/pkg/sqlite"
	"github.com/jakechorley/shift-scheduler/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{Ctx: context.Background(), Out: os.Stdout}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Weekly Shift Scheduler CLI - Build staff rotas from shift preferences",
		Long: `A CLI tool that assigns employees to morning, afternoon and evening shifts
across a week, honouring ranked preferences, staffing limits and a cap on days worked.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				if err := app.Database.Close(); err != nil {
					app.Logger.Warn("Failed to close database", zap.Error(err))
				}
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects shift_scheduler.<env>.yaml and the log file prefix)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show info logs on the console")

	// Add all commands
	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.ExampleCmd(app))
	rootCmd.AddCommand(commands.RunsCmd(app))
	rootCmd.AddCommand(commands.ShowCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("week_start_rule", app.Cfg.WeekStartRule),
		zap.Int("min_per_shift", app.Cfg.Scheduler.MinPerShift),
		zap.Int("max_per_shift", app.Cfg.Scheduler.MaxPerShift),
		zap.Int("max_days_per_employee", app.Cfg.Scheduler.MaxDaysPerEmployee))

	app.Database, err = openDatabase(app.Ctx, app.Cfg, app.Logger)
	if err != nil {
		return err
	}

	return nil
}

// openDatabase picks PostgreSQL when DatabaseURL is set, else SQLite when
// SQLitePath is set, else no store at all
func openDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Database, error) {
	switch {
	case cfg.DatabaseURL != "":
		logger.Info("Connecting to PostgreSQL")
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		logger.Info("Database initialized successfully")
		return store, nil

	case cfg.SQLitePath != "":
		logger.Info("Opening SQLite database", zap.String("path", cfg.SQLitePath))
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		logger.Info("Database initialized successfully")
		return store, nil

	default:
		logger.Info("No database configured, runs will not be stored")
		return nil, nil
	}
}
