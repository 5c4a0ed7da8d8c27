package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "actionmenu",
		Short: base.Wrap80("Personal planning on the command line: intentions, goals, habits, deep-work tracking, and a journal that suggests next actions."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addReflect(topLevel)
	addAdd(topLevel)
	addFocus(topLevel)
	addTrack(topLevel)
	addJournal(topLevel)
	addCapture(topLevel)
	addGet(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}
