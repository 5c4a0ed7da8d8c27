package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/runner/weekly"
	"tableflip.dev/actionmenu/pkg/store"
)

func addFocus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show up to three Today actions to focus on",
		Example: `
actionmenu focus
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := weekly.Focus{
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
