// Package calendar renders the month grid shown under the sidebar tree.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/diary/pkg/entry"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
	ShowHeader    bool
}

// Header is the weekday line, Sunday first.
const Header = "Su Mo Tu We Th Fr Sa"

// Width is the rendered width of a calendar line.
const Width = len(Header)

// Render produces a multi-line calendar for the month containing month.
func Render(month entry.Date, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := entry.NewDate(month.Year, month.Month, 1)
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowTitle {
		title := fmt.Sprintf("%s %d", month.Month.String(), month.Year)
		lines = append(lines, opts.TitleStyle.Render(center(title, Width)))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

// Days builds the per-day flags for the month of month.
func Days(month entry.Date, entryDates []entry.Date, today, selected entry.Date) []Day {
	n := DaysIn(month)
	out := make([]Day, n)
	for i := range out {
		out[i].Day = i + 1
	}
	for _, d := range entryDates {
		if d.SameMonth(month) {
			out[d.Day-1].HasEntry = true
		}
	}
	if today.SameMonth(month) {
		out[today.Day-1].IsToday = true
	}
	if selected.SameMonth(month) {
		out[selected.Day-1].IsSelected = true
	}
	return out
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

// DaysIn returns the number of days in the month of d.
func DaysIn(d entry.Date) int {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	title := lipgloss.NewStyle().Bold(true)
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	entryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	return Options{
		TitleStyle:    title,
		HeaderStyle:   header,
		EmptyStyle:    empty,
		EntryStyle:    entryStyle,
		TodayStyle:    today,
		SelectedStyle: selected,
		ShowTitle:     true,
		ShowHeader:    true,
	}
}
