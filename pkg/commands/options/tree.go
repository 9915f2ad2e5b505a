package options

import (
	"github.com/spf13/cobra"
)

// TreeOptions shape the sample session printed by `diary tree`.
type TreeOptions struct {
	Days     int
	Boxes    int
	Table    bool
	Calendar bool
}

func AddTreeArgs(cmd *cobra.Command, o *TreeOptions) {
	cmd.Flags().IntVar(&o.Days, "days", 7,
		"Number of consecutive days, ending today, that get an entry.")
	cmd.Flags().IntVar(&o.Boxes, "boxes", 0,
		"Extra entries added on each day.")
	cmd.Flags().BoolVar(&o.Table, "table", false,
		"Print a flat table instead of the tree.")
	cmd.Flags().BoolVar(&o.Calendar, "calendar", false,
		"Also print the calendar of the current month.")
}
