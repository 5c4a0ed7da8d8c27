// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// GoalOptions captures the SMART detail flags for adding a goal.
type GoalOptions struct {
	Specific   string
	Measurable string
	Achievable string
	Relevant   string
	TimeBound  string
	Horizon    string
	Category   string
}

// AddGoalArgs wires goal-related flags on the provided command.
func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVar(&o.Specific, "specific", "",
		"What exactly will be accomplished.")
	cmd.Flags().StringVar(&o.Measurable, "measurable", "",
		"How progress will be measured.")
	cmd.Flags().StringVar(&o.Achievable, "achievable", "",
		"Why this is realistic.")
	cmd.Flags().StringVar(&o.Relevant, "relevant", "",
		"Why this matters now.")
	cmd.Flags().StringVar(&o.TimeBound, "by", "",
		"Deadline or time bound.")
	cmd.Flags().StringVar(&o.Horizon, "horizon", "",
		`Planning horizon, one of "Today", "This Week", "This Month", "Long Term".`)
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Life category the goal belongs to.")
}
