package commands

import (
	"context"
	"os"
	"os/signal"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/runner/get"
	"tableflip.dev/actionmenu/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	showID := false

	cmd := &cobra.Command{
		Use:       "watch [section]",
		Short:     "Re-render a section whenever the state changes on disk",
		ValidArgs: getSections,
		Example: `
actionmenu watch weekly
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			r := get.Get{
				Section:     section,
				ShowID:      showID,
				Persistence: p,
			}
			if err := r.Do(ctx); err != nil {
				return output.HandleError(err)
			}

			events, err := p.Watch(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-events:
					if !ok {
						return nil
					}
					if err := r.Do(ctx); err != nil {
						return output.HandleError(err)
					}
				}
			}
		},
	}

	cmd.Flags().BoolVar(&showID, "id", false, "Show record ids.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
