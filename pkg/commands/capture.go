package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/runner/capture"
	"tableflip.dev/actionmenu/pkg/state"
	"tableflip.dev/actionmenu/pkg/store"
)

func addCapture(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Triage the quick-capture inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCaptureStatus(cmd)
	addCaptureEdit(cmd)
	addCaptureDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addCaptureStatus(topLevel *cobra.Command) {
	to := ""

	cmd := &cobra.Command{
		Use:   "status <id>...",
		Short: "Move captured items to a new status",
		Example: `
actionmenu capture status 1a2b3c... 4d5e6f... --to Today
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires at least one item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			status, err := state.ParseCaptureStatus(to)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := capture.Status{
				IDs:         args,
				Status:      status,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&to, "to", "",
		`Target status, one of "Inbox", "Today", "Later", "Archived".`)
	_ = cmd.MarkFlagRequired("to")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCaptureEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Rewrite a captured item",
		Example: `
actionmenu capture edit 1a2b3c... research standing desks under $400
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires an item id and new text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := capture.Edit{
				ID:          args[0],
				Text:        strings.Join(args[1:], " "),
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCaptureDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete captured items",
		Example: `
actionmenu capture delete 1a2b3c...
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires at least one item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := capture.Delete{
				IDs:         args,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
