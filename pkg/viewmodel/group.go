// Package viewmodel turns the flat entry collection into the year / month
// hierarchy the views render.
package viewmodel

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/diary/pkg/entry"
)

// Grouping is the display hierarchy, newest year first.
type Grouping []YearGroup

// YearGroup holds the months of one year that have entries, newest first.
type YearGroup struct {
	Year   int
	Label  string
	Months []MonthGroup
}

// MonthGroup holds the entries of one month ordered by date descending.
type MonthGroup struct {
	Month   time.Month
	Label   string
	Entries []entry.Entry
}

// YearLabel formats a year key ("2024").
func YearLabel(year int) string {
	return fmt.Sprintf("%04d", year)
}

// MonthLabel formats a month key ("01").
func MonthLabel(m time.Month) string {
	return fmt.Sprintf("%02d", int(m))
}

// Group builds the hierarchy. The input slice is left untouched and
// entries sharing a date keep their input order.
func Group(entries []entry.Entry) Grouping {
	if len(entries) == 0 {
		return Grouping{}
	}
	sorted := make([]entry.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	var out Grouping
	for _, e := range sorted {
		if n := len(out); n == 0 || out[n-1].Year != e.Date.Year {
			out = append(out, YearGroup{Year: e.Date.Year, Label: YearLabel(e.Date.Year)})
		}
		yg := &out[len(out)-1]
		if n := len(yg.Months); n == 0 || yg.Months[n-1].Month != e.Date.Month {
			yg.Months = append(yg.Months, MonthGroup{Month: e.Date.Month, Label: MonthLabel(e.Date.Month)})
		}
		mg := &yg.Months[len(yg.Months)-1]
		mg.Entries = append(mg.Entries, e)
	}
	return out
}

// Lookup returns the entries stored under a year and month label pair.
func (g Grouping) Lookup(yearLabel, monthLabel string) ([]entry.Entry, bool) {
	for _, yg := range g {
		if yg.Label != yearLabel {
			continue
		}
		for _, mg := range yg.Months {
			if mg.Label == monthLabel {
				return mg.Entries, true
			}
		}
		return nil, false
	}
	return nil, false
}

// Year returns the group for a year.
func (g Grouping) Year(year int) (YearGroup, bool) {
	for _, yg := range g {
		if yg.Year == year {
			return yg, true
		}
	}
	return YearGroup{}, false
}

// Flatten lists every grouped entry in display order.
func (g Grouping) Flatten() []entry.Entry {
	var out []entry.Entry
	for _, yg := range g {
		for _, mg := range yg.Months {
			out = append(out, mg.Entries...)
		}
	}
	return out
}

// Latest returns the most recent entry of the group.
func (yg YearGroup) Latest() (entry.Entry, bool) {
	if len(yg.Months) == 0 {
		return entry.Entry{}, false
	}
	return yg.Months[0].Latest()
}

// Latest returns the most recent entry of the month.
func (mg MonthGroup) Latest() (entry.Entry, bool) {
	if len(mg.Entries) == 0 {
		return entry.Entry{}, false
	}
	return mg.Entries[0], true
}

// Count returns the number of entries in the year.
func (yg YearGroup) Count() int {
	n := 0
	for _, mg := range yg.Months {
		n += len(mg.Entries)
	}
	return n
}
