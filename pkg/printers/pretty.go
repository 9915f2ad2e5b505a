// Package printers renders the diary for plain terminal output.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/viewmodel"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Color enables ANSI styling. Callers usually set it from isatty.
	Color bool
}

const idWidth = len("00000000-0000-0000-0000-000000000000  ")

var spacing = strings.Repeat(" ", idWidth)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)
	w := pp.out()

	_, _ = t.Fprint(w, title)
	_, _ = c.Fprintf(w, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(w, " entry")
	default:
		_, _ = c.Fprintln(w, " entries")
	}
}

// Tree prints years, months and entries newest first.
func (pp *PrettyPrint) Tree(g viewmodel.Grouping) {
	w := pp.out()
	if len(g) == 0 {
		f := pp.style(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	month := pp.style(color.FgHiWhite)
	for _, yg := range g {
		pp.TitleWithCount(yg.Label, yg.Count())
		for _, mg := range yg.Months {
			_, _ = month.Fprintf(w, "  %s %s\n", mg.Label, mg.Month)
			pp.Entries(mg.Entries...)
		}
		pp.NewLine()
	}
}

// Entries prints one line per entry, indented under a month heading.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	w := pp.out()
	t := pp.style()
	y := pp.style(color.FgHiYellow, color.Italic, color.Faint)
	f := pp.style(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(w, e.ID)
			if pad := idWidth - len(e.ID); pad > 0 {
				_, _ = y.Fprint(w, strings.Repeat(" ", pad))
			} else {
				_, _ = y.Fprint(w, " ")
			}
		}
		_, _ = t.Fprintf(w, "    %s", e.Label())
		if snippet := firstLine(e.Content); snippet != "" {
			_, _ = f.Fprintf(w, "  %s", snippet)
		}
		_, _ = t.Fprintln(w, "")
	}
}

// Table prints the entries as aligned columns.
func (pp *PrettyPrint) Table(entries ...entry.Entry) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Title"), bold.Sprint("Updated"))
	for _, e := range entries {
		tbl.AddRow(e.ID, e.Date.String(), e.Title, e.UpdatedAt.Format("2006-01-02 15:04"))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " …"
	}
	return s
}
