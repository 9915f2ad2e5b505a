package options

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/entry"
)

const layoutShort = "1/2"

// TodayOptions overrides the day the session starts on.
type TodayOptions struct {
	TodayString string
}

func AddTodayArgs(cmd *cobra.Command, o *TodayOptions) {
	cmd.Flags().StringVar(&o.TodayString, "today", "",
		`Start the session on another day, example: --today="2024-02-28" or --today="2/28".`)
}

// GetToday parses the flag. ok is false when the flag is unset. The short
// form keeps the year of now.
func (o *TodayOptions) GetToday(now time.Time) (d entry.Date, ok bool, err error) {
	if o.TodayString == "" {
		return entry.Date{}, false, nil
	}
	if d, err := entry.ParseDate(o.TodayString); err == nil {
		return d, true, nil
	}
	t, err := time.Parse(layoutShort, o.TodayString)
	if err != nil {
		return entry.Date{}, false, errors.Errorf("invalid --today %q, want YYYY-MM-DD or M/D", o.TodayString)
	}
	return entry.NewDate(now.Year(), t.Month(), t.Day()), true, nil
}
