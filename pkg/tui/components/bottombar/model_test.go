package bottombar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/tui/theme"
)

func TestViewSegments(t *testing.T) {
	m := New(theme.Default().Footer)
	m.SetMode(ModeEditor)
	m.SetHelp("tab browse")
	m.ShowNotice(app.Notice{Kind: app.NoticeSuccess, Message: "Added a new box"}, time.Now().Add(time.Minute))

	got := ansi.Strip(m.View())
	want := "EDIT │ tab browse │ Added a new box"
	if !strings.Contains(got, want) {
		t.Fatalf("expected %q in %q", want, got)
	}
}

func TestExpire(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	m := New(theme.Default().Footer)
	if m.Expire(now) {
		t.Fatalf("nothing to expire")
	}
	m.ShowNotice(app.Notice{Kind: app.NoticeError, Message: "That date already exists"}, now.Add(time.Second))
	if m.Expire(now) {
		t.Fatalf("notice expired early")
	}
	if !m.Expire(now.Add(time.Second)) {
		t.Fatalf("expected notice to expire at its deadline")
	}
	if !m.Notice().IsZero() {
		t.Fatalf("expected notice cleared")
	}
}

func TestViewTruncates(t *testing.T) {
	m := New(theme.Default().Footer)
	m.SetHelp(strings.Repeat("x", 80))
	m.SetWidth(20)
	if w := ansi.StringWidth(m.View()); w > 20 {
		t.Fatalf("expected at most 20 columns, got %d", w)
	}
	if ModeSidebar.String() != "BROWSE" || ModeConfirm.String() != "CONFIRM" || ModeHelp.String() != "HELP" {
		t.Fatalf("unexpected mode names")
	}
}
