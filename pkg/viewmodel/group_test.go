package viewmodel

import (
	"testing"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
)

func mk(id, date string) entry.Entry {
	return entry.Entry{ID: id, Date: entry.MustDate(date)}
}

func ids(entries []entry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGroupHierarchy(t *testing.T) {
	input := []entry.Entry{
		mk("a", "2023-12-31"),
		mk("b", "2024-01-15"),
		mk("c", "2024-03-02"),
		mk("d", "2024-01-20"),
		mk("e", "2024-01-15"),
	}
	g := Group(input)

	if len(g) != 2 {
		t.Fatalf("expected 2 years, got %d", len(g))
	}
	if g[0].Year != 2024 || g[1].Year != 2023 {
		t.Fatalf("years not descending: %d, %d", g[0].Year, g[1].Year)
	}
	if g[0].Label != "2024" {
		t.Fatalf("unexpected year label %q", g[0].Label)
	}
	if len(g[0].Months) != 2 || g[0].Months[0].Month != time.March || g[0].Months[1].Month != time.January {
		t.Fatalf("months not descending: %+v", g[0].Months)
	}
	jan, ok := g.Lookup("2024", "01")
	if !ok {
		t.Fatalf("expected 2024/01 group")
	}
	if got, want := ids(jan), []string{"d", "b", "e"}; !equalIDs(got, want) {
		t.Fatalf("january order = %v, want %v", got, want)
	}
	if _, ok := g.Lookup("2024", "02"); ok {
		t.Fatalf("february should not exist")
	}
	if _, ok := g.Lookup("2022", "01"); ok {
		t.Fatalf("2022 should not exist")
	}
	if got := input[0].ID; got != "a" {
		t.Fatalf("input reordered, first id %q", got)
	}
}

func TestGroupEmpty(t *testing.T) {
	g := Group(nil)
	if len(g) != 0 {
		t.Fatalf("expected empty grouping, got %d", len(g))
	}
	if len(g.Flatten()) != 0 {
		t.Fatalf("expected no entries")
	}
}

func TestGroupYearHelpers(t *testing.T) {
	g := Group([]entry.Entry{mk("a", "2024-02-01"), mk("b", "2024-05-09"), mk("c", "2024-05-01")})
	yg, ok := g.Year(2024)
	if !ok {
		t.Fatalf("expected 2024")
	}
	if yg.Count() != 3 {
		t.Fatalf("count = %d", yg.Count())
	}
	latest, ok := yg.Latest()
	if !ok || latest.ID != "b" {
		t.Fatalf("latest = %v %v", latest.ID, ok)
	}
	if _, ok := g.Year(1999); ok {
		t.Fatalf("unexpected year")
	}
}

func TestRowsFoldAndHighlight(t *testing.T) {
	g := Group([]entry.Entry{
		mk("a", "2024-01-15"),
		mk("b", "2024-01-15"),
		mk("c", "2024-02-01"),
		mk("d", "2023-06-01"),
	})
	fold := NewFold(entry.MustDate("2024-01-10"))

	rows := Rows(g, fold, Selection{Date: entry.MustDate("2024-01-15"), Level: journal.LevelDate})
	// 2024, 02 (closed), 01 (open), a, b, 2023 (closed)
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d: %+v", len(rows), rows)
	}
	kinds := []RowKind{RowYear, RowMonth, RowMonth, RowEntry, RowEntry, RowYear}
	for i, k := range kinds {
		if rows[i].Kind != k {
			t.Fatalf("row %d kind = %v, want %v", i, rows[i].Kind, k)
		}
	}
	if !rows[3].Highlighted || !rows[4].Highlighted {
		t.Fatalf("entries on the selected day should be highlighted")
	}
	if rows[0].Highlighted || rows[2].Highlighted {
		t.Fatalf("year and month rows should not be highlighted at date level")
	}

	rows = Rows(g, fold, Selection{Date: entry.MustDate("2024-01-15"), Level: journal.LevelMonth})
	if !rows[2].Highlighted || rows[1].Highlighted || rows[3].Highlighted {
		t.Fatalf("only 2024-01 should be highlighted at month level: %+v", rows)
	}

	rows = Rows(g, fold, Selection{Date: entry.MustDate("2023-06-01"), Level: journal.LevelYear})
	if !rows[5].Highlighted || rows[0].Highlighted {
		t.Fatalf("only 2023 should be highlighted at year level")
	}

	fold.Toggle(YearKey(2024))
	rows = Rows(g, fold, Selection{Level: journal.LevelDate})
	if len(rows) != 2 {
		t.Fatalf("collapsed years should hide children, got %d rows", len(rows))
	}
	if i := IndexOfKey(rows, YearKey(2023)); i != 1 {
		t.Fatalf("index of 2023 = %d", i)
	}
}

func TestFoldReveal(t *testing.T) {
	fold := NewFold(entry.MustDate("2024-01-01"))
	d := entry.MustDate("2022-07-04")
	if fold.IsOpen(MonthKey(2022, time.July)) {
		t.Fatalf("unexpected open month")
	}
	fold.Reveal(d)
	if !fold.IsOpen(YearKey(2022)) || !fold.IsOpen(MonthKey(2022, time.July)) {
		t.Fatalf("reveal should expand year and month")
	}
	if fold.Toggle(YearKey(2022)) {
		t.Fatalf("toggle should close")
	}
}
