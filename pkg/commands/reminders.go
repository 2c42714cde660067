package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/reminders"
	"tableflip.dev/agenda/pkg/store"
)

func addReminders(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "list incomplete reminders",
		Example: `
agenda reminders
agenda reminders --on 2026-9-14
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}

			var on *time.Time
			if oo.OnString != "" {
				t, err := oo.GetOn()
				if err != nil {
					return err
				}
				on = &t
			}

			r := reminders.Reminders{
				ShowID: io.ShowID,
				On:     on,
				Source: s,
			}
			return r.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	addToggle(cmd)
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "toggle a reminder's completion state",
		Args:  cobra.ExactArgs(1),
		Example: `
agenda reminders toggle 171dff69-f8b9-9dca-0000-000000000000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := reminders.Toggle{ID: args[0], Source: s}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
