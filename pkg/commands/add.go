package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/commands/options"
	"tableflip.dev/actionmenu/pkg/runner/capture"
	"tableflip.dev/actionmenu/pkg/runner/goal"
	"tableflip.dev/actionmenu/pkg/runner/habit"
	"tableflip.dev/actionmenu/pkg/runner/weekly"
	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add goals, habits, weekly actions, categories, or captures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoal(cmd)
	addHabit(cmd)
	addAction(cmd)
	addCategory(cmd)
	addCaptureItem(cmd)

	topLevel.AddCommand(cmd)
}

func addGoal(topLevel *cobra.Command) {
	o := &options.GoalOptions{}
	title := ""
	showID := false

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Add a SMART goal",
		Example: `
actionmenu add goal launch the newsletter --measurable "100 subscribers" --horizon "This Month" -c Creative
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a goal title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			horizon, err := state.ParseHorizon(o.Horizon)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := goal.Add{
				Input: app.GoalInput{
					Title:      title,
					Specific:   o.Specific,
					Measurable: o.Measurable,
					Achievable: o.Achievable,
					Relevant:   o.Relevant,
					TimeBound:  o.TimeBound,
					Horizon:    horizon,
					Category:   o.Category,
				},
				ShowID:      showID,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGoalArgs(cmd, o)
	cmd.Flags().BoolVar(&showID, "id", false, "Show goal ids.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return state.Categories(), cobra.ShellCompDirectiveNoFileComp
	})

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addHabit(topLevel *cobra.Command) {
	o := &options.HabitOptions{}
	name := ""
	showID := false

	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Add a habit plan",
		Example: `
actionmenu add habit write 200 words --anchor "after morning coffee" --frequency daily --goal "launch the newsletter"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := habit.Add{
				Input: app.HabitInput{
					Name:          name,
					Anchor:        o.Anchor,
					Frequency:     o.Frequency,
					SuccessMetric: o.Metric,
					LinkedGoal:    o.Goal,
				},
				ShowID:      showID,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, o)
	cmd.Flags().BoolVar(&showID, "id", false, "Show habit ids.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAction(topLevel *cobra.Command) {
	bucket := "Today"
	motivation := ""
	action := ""

	cmd := &cobra.Command{
		Use:   "action",
		Short: "Add an action to a weekly bucket",
		Example: `
actionmenu add action email the venue --bucket "This Week" --motivation "locks the date"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an action")
			}
			action = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := weekly.Add{
				Bucket:      bucket,
				Action:      action,
				Motivation:  motivation,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "Today",
		`Weekly bucket, one of "Today", "This Week", "This Month".`)
	cmd.Flags().StringVar(&motivation, "motivation", "",
		"Why this action matters; kept as part of the label.")

	_ = cmd.RegisterFlagCompletionFunc("bucket", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return state.DefaultWeeklyBuckets(), cobra.ShellCompDirectiveNoFileComp
	})

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCategory(topLevel *cobra.Command) {
	label := ""

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Register a custom deep-work category",
		Example: `
actionmenu add category Writing
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a category label")
			}
			label = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := weekly.AddCategory{
				Label:       label,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCaptureItem(topLevel *cobra.Command) {
	text := ""

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Drop a thought into the quick-capture inbox",
		Example: `
actionmenu add capture look up standing desk reviews
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires capture text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := capture.Add{
				Text:        text,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
