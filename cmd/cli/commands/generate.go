package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/core/services"
	"github.com/jakechorley/shift-scheduler/pkg/input"
)

// overrideFlags holds the constraint flags shared by generate and example
type overrideFlags struct {
	seed    int64
	min     int
	max     int
	maxDays int
}

func (f *overrideFlags) register(flags *pflag.FlagSet) {
	flags.Int64Var(&f.seed, "seed", scheduler.DefaultRandomSeed, "Random seed for the backfill shuffle")
	flags.IntVar(&f.min, "min", scheduler.DefaultMinPerShift, "Minimum employees per shift")
	flags.IntVar(&f.max, "max", scheduler.DefaultMaxPerShift, "Maximum employees per shift (0 = unbounded)")
	flags.IntVar(&f.maxDays, "max-days", scheduler.DefaultMaxDaysPerEmployee, "Maximum days each employee may work")
}

// apply copies every flag the user set onto the document's overrides.
// Flags take precedence over values in the input file.
func (f *overrideFlags) apply(flags *pflag.FlagSet, doc *input.Document) {
	if doc.Config == nil {
		doc.Config = &input.ConfigOverrides{}
	}
	if flags.Changed("seed") {
		seed := f.seed
		doc.Config.RandomSeed = &seed
	}
	if flags.Changed("min") {
		v := f.min
		doc.Config.MinPerShift = &v
	}
	if flags.Changed("max") {
		v := f.max
		doc.Config.MaxPerShift = &v
	}
	if flags.Changed("max-days") {
		v := f.maxDays
		doc.Config.MaxDaysPerEmployee = &v
	}
}

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	var overrides overrideFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate <input.yaml>",
		Short: "Generate a weekly schedule from an input file",
		Long: `Generate a weekly schedule from a YAML or JSON input file containing the
employee roster, per-day shift preferences and optional constraint overrides.

The run is stored when a database is configured, unless --dry-run is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := input.LoadFile(args[0])
			if err != nil {
				return err
			}

			overrides.apply(cmd.Flags(), doc)
			if err := doc.Validate(); err != nil {
				return err
			}

			app.Logger.Info("generate command", zap.String("input", args[0]), zap.Bool("dry_run", dryRun))

			return runSchedule(app, doc, dryRun)
		},
	}

	overrides.register(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the schedule without storing it")

	return cmd
}

// runSchedule generates, prints and reports where the run went
func runSchedule(app *AppContext, doc *input.Document, dryRun bool) error {
	result, err := services.GenerateSchedule(app.Ctx, app.runStore(), app.Logger, app.Cfg, doc, dryRun)
	if err != nil {
		return err
	}

	if err := scheduler.Render(app.Out, result.Result); err != nil {
		return fmt.Errorf("failed to render schedule: %w", err)
	}

	if result.Persisted {
		fmt.Fprintf(app.Out, "\nStored run %s (week of %s)\n", result.Run.ID, result.Run.WeekStart)
	}

	return nil
}
