package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/shift-scheduler/pkg/input"
)

// exampleDocument builds the demo document with the demo's own constraints
func exampleDocument() *input.Document {
	doc := input.FromExample()
	cfg := scheduler.ExampleConfig()
	doc.Config = &input.ConfigOverrides{
		MinPerShift:        &cfg.MinPerShift,
		MaxPerShift:        &cfg.MaxPerShift,
		MaxDaysPerEmployee: &cfg.MaxDaysPerEmployee,
		RandomSeed:         &cfg.RandomSeed,
	}
	return doc
}

// ExampleCmd creates the example command
func ExampleCmd(app *AppContext) *cobra.Command {
	var overrides overrideFlags

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Run the built-in 10-employee example week (never stored)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := exampleDocument()
			overrides.apply(cmd.Flags(), doc)
			if err := doc.Validate(); err != nil {
				return err
			}

			app.Logger.Info("example command", zap.Int64("seed", *doc.Config.RandomSeed))

			return runSchedule(app, doc, true)
		},
	}

	overrides.register(cmd.Flags())

	return cmd
}
