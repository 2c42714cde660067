package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/importer"
	"tableflip.dev/agenda/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	calendarTitle := ""
	color := ""
	window := 365

	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "import events from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		Example: `
agenda import holidays.ics
agenda import work.ics --calendar Work --color "#4682b4"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := importer.Importer{
				Path:          args[0],
				CalendarTitle: calendarTitle,
				Color:         color,
				WindowDays:    window,
				Persistence:   s,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&calendarTitle, "calendar", "c", "",
		"Calendar to import into. Defaults to the file's calendar name.")
	cmd.Flags().StringVar(&color, "color", "",
		"Hex color for a newly created calendar.")
	cmd.Flags().IntVar(&window, "window", 365,
		"Days around today to expand recurring events into.")

	topLevel.AddCommand(cmd)
}
