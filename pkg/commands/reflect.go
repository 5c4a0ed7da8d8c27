package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/runner/reflect"
	"tableflip.dev/actionmenu/pkg/store"
)

func addReflect(topLevel *cobra.Command) {
	var values, milestones, energy string

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Record your north-star intentions",
		Example: `
actionmenu reflect --values "craft, health" --milestones "ship v1" --energy "mornings"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Open(nil)
			if err != nil {
				return err
			}

			r := reflect.Commit{
				Values:      values,
				Milestones:  milestones,
				Energy:      energy,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "What matters most right now.")
	cmd.Flags().StringVar(&milestones, "milestones", "", "Milestones you are steering toward.")
	cmd.Flags().StringVar(&energy, "energy", "", "When and where your energy is best.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
