package tree

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/diary/pkg/entry"
)

var fixed = time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixed }

func TestDemo(t *testing.T) {
	got := Demo(entry.MustDate("2024-03-02"), 3, 1, fixed)
	if len(got) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(got))
	}
	if !got[0].Date.Equal(entry.MustDate("2024-02-29")) {
		t.Fatalf("expected first day 2024-02-29, got %s", got[0].Date)
	}
	if !got[5].Date.Equal(entry.MustDate("2024-03-02")) {
		t.Fatalf("expected last day 2024-03-02, got %s", got[5].Date)
	}
	if got[1].Content != "box 1" {
		t.Fatalf("expected box content, got %q", got[1].Content)
	}
}

func TestDemoClampsArguments(t *testing.T) {
	got := Demo(entry.MustDate("2024-03-02"), 0, -4, fixed)
	if len(got) != 1 {
		t.Fatalf("expected a single entry, got %d", len(got))
	}
}

func TestTreePretty(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tree{Today: entry.MustDate("2024-03-02"), Days: 3, Out: &buf, Clock: clock}
	if err := tr.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "03 March") || !strings.Contains(out, "02 February") {
		t.Fatalf("expected both months:\n%s", out)
	}
	if strings.Index(out, "March") > strings.Index(out, "February") {
		t.Fatalf("months should be newest first:\n%s", out)
	}
}

func TestTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tree{Today: entry.MustDate("2024-01-01"), Days: 2, JSON: true, Out: &buf, Clock: clock}
	if err := tr.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	var got struct {
		Count int `json:"count"`
		Years []struct {
			Label string `json:"label"`
		} `json:"years"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if got.Count != 2 || len(got.Years) != 2 || got.Years[0].Label != "2024" {
		t.Fatalf("unexpected tree %+v", got)
	}
}

func TestTreeTableAndCalendar(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tree{Today: entry.MustDate("2024-03-02"), Days: 1, Table: true, Calendar: true, Out: &buf, Clock: clock}
	if err := tr.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "2024-03-02") || !strings.Contains(out, "March 2024") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
