package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/actionmenu/pkg/runner/get"
	"tableflip.dev/actionmenu/pkg/store"
)

var getSections = []string{
	get.SectionReflections,
	get.SectionGoals,
	get.SectionHabits,
	get.SectionWeekly,
	get.SectionEntries,
	get.SectionEffort,
	get.SectionFlow,
	get.SectionJournal,
	get.SectionCapture,
}

func addGet(topLevel *cobra.Command) {
	showID := false

	cmd := &cobra.Command{
		Use:       "get [section]",
		Short:     "Display a section of your plan, or all of it",
		ValidArgs: getSections,
		Example: `
actionmenu get
actionmenu get goals
actionmenu get effort
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

			r := get.Get{
				Section:     section,
				ShowID:      showID,
				Persistence: p,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showID, "id", false, "Show record ids.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
