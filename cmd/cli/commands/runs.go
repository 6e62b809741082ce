package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/core/services"
)

var errNoDatabase = errors.New("no database configured: set DATABASE_URL or SQLITE_PATH")

// RunsCmd creates the runs command
func RunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List stored scheduling runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Database == nil {
				return errNoDatabase
			}

			summaries, err := services.ViewRuns(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			app.Logger.Info("Runs fetched successfully", zap.Int("count", len(summaries)))

			if len(summaries) == 0 {
				fmt.Fprintln(app.Out, "No stored runs.")
				return nil
			}

			fmt.Fprintf(app.Out, "\nFound %d runs:\n\n", len(summaries))
			fmt.Fprintf(app.Out, "%-36s  %-10s  %-20s  %6s  %-9s  %8s\n", "ID", "WEEK", "CREATED", "SEED", "MIN/MAX", "WARNINGS")
			for _, s := range summaries {
				fmt.Fprintf(app.Out, "%-36s  %-10s  %-20s  %6d  %-9s  %8d\n",
					s.Run.ID,
					s.Run.WeekStart,
					s.Run.CreatedAt,
					s.Run.Seed,
					fmt.Sprintf("%d/%d", s.Run.MinPerShift, s.Run.MaxPerShift),
					s.WarningCount,
				)
			}

			return nil
		},
	}
}

// ShowCmd creates the show command
func ShowCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run_id>",
		Short: "Print a stored run's schedule and warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Database == nil {
				return errNoDatabase
			}

			stored, err := services.ShowRun(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Run %s (week of %s, seed %d)\n", stored.Run.ID, stored.Run.WeekStart, stored.Run.Seed)

			return scheduler.Render(app.Out, stored.Result)
		},
	}
}
