package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

func addCalendars(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "list known calendars",
		Example: `
agenda calendars
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}

			pp := printers.New()
			pp.ShowID = io.ShowID
			fmt.Println("")
			infos := s.Calendars(context.Background())
			pp.TitleWithCount("Calendars", len(infos))
			pp.Calendars(infos...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
