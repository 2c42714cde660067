package options

import (
	"github.com/spf13/cobra"
)

// IDOptions toggles item identifiers in list output.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show item IDs in the output.")
}
