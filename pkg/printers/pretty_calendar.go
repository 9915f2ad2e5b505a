package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing month, highlighting days that have
// entries and underlining today.
func (pp *PrettyPrint) Calendar(month, today entry.Date, entries ...entry.Entry) {
	count := make([]int, DaysIn(month))
	for _, e := range entries {
		if e.Date.SameMonth(month) {
			count[e.Date.Day-1]++
		}
	}
	todayDay := 0
	if today.SameMonth(month) {
		todayDay = today.Day
	}
	pp.PrintMonthCount(month, count, todayDay)
}

// PrintMonthCount prints a month grid. Days with a non-zero count are bold.
func (pp *PrettyPrint) PrintMonthCount(month entry.Date, count []int, today int) {
	w := pp.out()
	d := StartDay(month)

	tf := pp.style(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", month.Month, month.Year)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := pp.style(color.Faint, color.FgWhite)
	l2 := pp.style(color.Bold, color.FgHiWhite)
	l3 := pp.style(color.Bold, color.Underline, color.FgHiGreen)

	days := DaysIn(month)
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if i+1 == today {
			printer = l3
		}
		_, _ = printer.Fprintf(w, "%2d", i+1)

		d++
		if d > time.Saturday || i == days-1 {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		} else {
			_, _ = fmt.Fprint(w, " ")
		}
	}
	_, _ = fmt.Fprint(w, "\n")
}

func DaysIn(month entry.Date) int {
	return time.Date(month.Year, month.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(month entry.Date) time.Weekday {
	return entry.NewDate(month.Year, month.Month, 1).Weekday()
}
