package viewmodel

import (
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
)

// RowKind identifies what a sidebar row represents.
type RowKind int

const (
	RowYear RowKind = iota
	RowMonth
	RowEntry
)

func (k RowKind) String() string {
	switch k {
	case RowYear:
		return "year"
	case RowMonth:
		return "month"
	default:
		return "entry"
	}
}

// Row is one line of the sidebar tree.
type Row struct {
	Kind  RowKind
	Key   string
	Depth int

	Year  int
	Month time.Month
	Entry entry.Entry

	Open        bool
	Highlighted bool
}

// Selection is the part of the store state that drives highlighting.
type Selection struct {
	Date  entry.Date
	Level journal.Level
}

// YearKey is the fold key of a year row.
func YearKey(year int) string {
	return YearLabel(year)
}

// MonthKey is the fold key of a month row.
func MonthKey(year int, m time.Month) string {
	return YearLabel(year) + "-" + MonthLabel(m)
}

// Fold tracks which year and month rows are expanded.
type Fold struct {
	open map[string]bool
}

// NewFold returns a fold state with the year and month of today expanded.
func NewFold(today entry.Date) *Fold {
	f := &Fold{open: map[string]bool{}}
	f.open[YearKey(today.Year)] = true
	f.open[MonthKey(today.Year, today.Month)] = true
	return f
}

// IsOpen reports whether the row with key is expanded.
func (f *Fold) IsOpen(key string) bool {
	if f == nil {
		return false
	}
	return f.open[key]
}

// Toggle flips the expansion of key and returns the new state.
func (f *Fold) Toggle(key string) bool {
	if f.open == nil {
		f.open = map[string]bool{}
	}
	f.open[key] = !f.open[key]
	return f.open[key]
}

// Expand opens key.
func (f *Fold) Expand(key string) {
	if f.open == nil {
		f.open = map[string]bool{}
	}
	f.open[key] = true
}

// Reveal expands the year and month containing d.
func (f *Fold) Reveal(d entry.Date) {
	f.Expand(YearKey(d.Year))
	f.Expand(MonthKey(d.Year, d.Month))
}

// Rows flattens the grouping into sidebar rows. Children of collapsed rows
// are omitted.
func Rows(g Grouping, fold *Fold, sel Selection) []Row {
	var rows []Row
	for _, yg := range g {
		yk := YearKey(yg.Year)
		yOpen := fold.IsOpen(yk)
		rows = append(rows, Row{
			Kind:        RowYear,
			Key:         yk,
			Year:        yg.Year,
			Open:        yOpen,
			Highlighted: sel.Level == journal.LevelYear && sel.Date.Year == yg.Year,
		})
		if !yOpen {
			continue
		}
		for _, mg := range yg.Months {
			mk := MonthKey(yg.Year, mg.Month)
			mOpen := fold.IsOpen(mk)
			rows = append(rows, Row{
				Kind:  RowMonth,
				Key:   mk,
				Depth: 1,
				Year:  yg.Year,
				Month: mg.Month,
				Open:  mOpen,
				Highlighted: sel.Level == journal.LevelMonth &&
					sel.Date.Year == yg.Year && sel.Date.Month == mg.Month,
			})
			if !mOpen {
				continue
			}
			for _, e := range mg.Entries {
				rows = append(rows, Row{
					Kind:        RowEntry,
					Key:         e.ID,
					Depth:       2,
					Year:        yg.Year,
					Month:       mg.Month,
					Entry:       e,
					Highlighted: sel.Level == journal.LevelDate && e.Date.Equal(sel.Date),
				})
			}
		}
	}
	return rows
}

// IndexOfKey returns the position of the row with key, or -1.
func IndexOfKey(rows []Row, key string) int {
	for i, r := range rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}
