package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Browse calendars, events, and reminders in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addEvents(topLevel)
	addReminders(topLevel)
	addCalendars(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}
