package options

import (
	"github.com/spf13/cobra"
)

// HabitOptions captures the cue/anchor design flags for adding a habit.
type HabitOptions struct {
	Anchor    string
	Frequency string
	Metric    string
	Goal      string
}

// AddHabitArgs wires habit-related flags on the provided command.
func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVar(&o.Anchor, "anchor", "",
		`Existing routine the habit attaches to, example: --anchor="after morning coffee".`)
	cmd.Flags().StringVar(&o.Frequency, "frequency", "",
		"How often the habit runs, example: daily.")
	cmd.Flags().StringVar(&o.Metric, "metric", "",
		"What counts as success.")
	cmd.Flags().StringVar(&o.Goal, "goal", "",
		"Title of the goal this habit supports.")
}
