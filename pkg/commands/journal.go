package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/app"
	"tableflip.dev/actionmenu/pkg/runner/journal"
	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write journal entries and mine them for next actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addJournalSave(cmd)
	addJournalSuggest(cmd)
	addJournalPromote(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalSave(topLevel *cobra.Command) {
	text := ""

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a journal entry",
		Example: `
actionmenu journal save Today I want to finish the draft. I should email the reviewers.
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires entry text")
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

			r := journal.Save{
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

func addJournalSuggest(topLevel *cobra.Command) {
	text := ""

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Preview suggestions for entry text without saving",
		Example: `
actionmenu journal suggest I want to run a marathon. Every day I will stretch.
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires entry text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r := journal.Suggest{
				Text: text,
			}
			err := r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addJournalPromote(topLevel *cobra.Command) {
	kindStr := ""
	text := ""
	to := ""

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Send a suggestion to Today, a draft, or quick capture",
		Example: `
actionmenu journal promote --kind action --text "email the reviewers" --to today
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := state.ParseKind(kindStr)
			if err != nil {
				return output.HandleError(err)
			}
			target, err := app.ParsePromoteTarget(to)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := journal.Promote{
				Kind:        kind,
				Text:        text,
				Target:      target,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&kindStr, "kind", "", `Suggestion kind, one of "goal", "habit", "action", "blockage".`)
	cmd.Flags().StringVar(&text, "text", "", "The suggestion sentence.")
	cmd.Flags().StringVar(&to, "to", "", `Destination, one of "today", "goal-draft", "habit-draft", "quick-capture".`)
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("to")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
