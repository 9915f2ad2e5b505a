package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/viewmodel"
)

func sample() []entry.Entry {
	at := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	return []entry.Entry{
		{ID: "a", Date: entry.MustDate("2024-03-05"), Title: "Spring", Content: "warm\nsunny", CreatedAt: at, UpdatedAt: at},
		{ID: "b", Date: entry.MustDate("2024-02-29"), CreatedAt: at, UpdatedAt: at},
		{ID: "c", Date: entry.MustDate("2023-12-31"), CreatedAt: at, UpdatedAt: at},
	}
}

func TestTreeOutput(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Tree(viewmodel.Group(sample()))

	out := buf.String()
	for _, want := range []string{"2024 - 2 entries", "2023 - 1 entry", "03 March", "5 Spring  warm …", "02 February"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "2024") > strings.Index(out, "2023") {
		t.Fatalf("years should be newest first:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes without color:\n%q", out)
	}
}

func TestTreeEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Tree(nil)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}
}

func TestTreeShowID(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	pp.Entries(sample()[0])
	if !strings.HasPrefix(buf.String(), "a ") {
		t.Fatalf("expected id prefix, got %q", buf.String())
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Table(sample()...)
	out := buf.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "2023-12-31") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestCalendar(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Calendar(entry.MustDate("2024-02-01"), entry.MustDate("2024-03-05"), sample()...)
	out := buf.String()
	if !strings.Contains(out, "February 2024") {
		t.Fatalf("expected month title:\n%s", out)
	}
	if !strings.Contains(out, "29") || strings.Contains(out, "30") {
		t.Fatalf("expected 29 days in February 2024:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// February 1st 2024 is a Thursday: four blank cells then "1".
	if !strings.HasPrefix(lines[1], strings.Repeat("   ", 4)+" 1") {
		t.Fatalf("unexpected first week %q", lines[1])
	}
}

func TestDaysIn(t *testing.T) {
	tests := map[string]int{
		"2024-02-10": 29,
		"2023-02-10": 28,
		"2024-12-01": 31,
		"2024-04-30": 30,
	}
	for in, want := range tests {
		if got := DaysIn(entry.MustDate(in)); got != want {
			t.Errorf("DaysIn(%s) = %d, want %d", in, got, want)
		}
	}
}
