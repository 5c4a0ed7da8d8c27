package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/commands/options"
	"tableflip.dev/actionmenu/pkg/runner/track"
	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
	"tableflip.dev/actionmenu/pkg/timeutil"
)

func addTrack(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track deep-work blocks and capture how they felt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTrackStart(cmd)
	addTrackStop(cmd)
	addTrackLog(cmd)
	addTrackFlow(cmd)
	addTrackSkip(cmd)

	topLevel.AddCommand(cmd)
}

func addTrackStart(topLevel *cobra.Command) {
	o := &options.TrackOptions{}
	activity := ""

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the deep-work timer",
		Example: `
actionmenu track start draft chapter two -c Creative --flow 4 --emotion excited
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an activity")
			}
			activity = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := track.Start{
				Activity:      activity,
				Category:      o.Category,
				FlowBefore:    o.Flow,
				EmotionBefore: o.Emotion,
				Persistence:   p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTrackArgs(cmd, o)
	registerEmotionCompletion(cmd)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTrackStop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and log the block",
		Example: `
actionmenu track stop
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := track.Stop{
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTrackLog(topLevel *cobra.Command) {
	o := &options.TrackOptions{}
	forStr := ""
	activity := ""

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a block after the fact",
		Example: `
actionmenu track log reviewed pull requests --for 90m -c Working
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an activity")
			}
			activity = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			d, _, err := timeutil.ParseDuration(forStr)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := track.Log{
				Activity:      activity,
				Category:      o.Category,
				Duration:      d,
				FlowBefore:    o.Flow,
				EmotionBefore: o.Emotion,
				Persistence:   p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTrackArgs(cmd, o)
	cmd.Flags().StringVar(&forStr, "for", "",
		`How long the block ran, example: --for 1h30m.`)
	_ = cmd.MarkFlagRequired("for")
	registerEmotionCompletion(cmd)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTrackFlow(topLevel *cobra.Command) {
	flow := 0
	emotion := ""
	message := ""
	motivation := ""

	cmd := &cobra.Command{
		Use:   "flow <token>",
		Short: "Answer the flow capture for a stopped block",
		Example: `
actionmenu track flow 1a2b3c... --flow 4 --emotion calm --message "found a rhythm"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a capture token")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := track.Flow{
				Token:        args[0],
				FlowAfter:    flow,
				EmotionAfter: emotion,
				Message:      message,
				Motivation:   motivation,
				Persistence:  p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&flow, "flow", 3, "Flow rating after the block, 1 to 5.")
	cmd.Flags().StringVar(&emotion, "emotion", "", "Emotion after the block.")
	cmd.Flags().StringVar(&message, "message", "", "A short note on how the block went.")
	cmd.Flags().StringVar(&motivation, "motivation", "", "What pulled you through it.")
	registerEmotionCompletion(cmd)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTrackSkip(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "skip <token>",
		Short: "Dismiss a flow capture without answering",
		Example: `
actionmenu track skip 1a2b3c...
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a capture token")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := track.Skip{
				Token:       args[0],
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func registerEmotionCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("emotion", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return state.Emotions(), cobra.ShellCompDirectiveNoFileComp
	})
}
