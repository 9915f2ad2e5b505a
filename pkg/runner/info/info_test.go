package info

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/diary/pkg/entry"
)

type stubConfig struct {
	today entry.Date
}

func (s stubConfig) Today() (entry.Date, bool)     { return s.today, !s.today.IsZero() }
func (s stubConfig) LogFile() string               { return "" }
func (s stubConfig) LogLevel() string              { return "debug" }
func (s stubConfig) NoticeDuration() time.Duration { return 2 * time.Second }
func (s stubConfig) Source() string                { return "/tmp/.diary.yaml" }

func TestInfoText(t *testing.T) {
	var buf bytes.Buffer
	n := &Info{Config: stubConfig{}, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"/tmp/.diary.yaml", "debug", "2s", "(none)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	n := &Info{Config: stubConfig{today: entry.MustDate("2024-05-06")}, Out: &buf, JSON: true}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Today != "2024-05-06" || got.LogLevel != "debug" {
		t.Fatalf("unexpected summary %+v", got)
	}
}
