package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/events"
	"tableflip.dev/agenda/pkg/store"
)

func addEvents(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	week := false
	month := false

	cmd := &cobra.Command{
		Use:   "events",
		Short: "list events for a day, week, or month",
		Example: `
agenda events
agenda events --on 2026-9-14
agenda events --week
agenda events --month --on 10/1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}

			scope := events.ScopeDay
			switch {
			case month:
				scope = events.ScopeMonth
			case week:
				scope = events.ScopeWeek
			}

			r := events.Events{
				ShowID: io.ShowID,
				Scope:  scope,
				On:     on,
				Source: s,
			}
			return r.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&week, "week", false, "List the whole week around the date.")
	cmd.Flags().BoolVar(&month, "month", false, "List the whole month around the date.")

	topLevel.AddCommand(cmd)
}
