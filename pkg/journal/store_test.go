package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"

	"tableflip.dev/diary/pkg/entry"
)

// stepClock returns a clock that advances by one second per call.
func stepClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func counterIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(t *testing.T, today string, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithClock(stepClock(time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC))),
		WithIDGenerator(counterIDs("id")),
		WithToday(entry.MustDate(today)),
	}
	return New(append(base, opts...)...)
}

func TestNewSeedsOneEntryForToday(t *testing.T) {
	s := newTestStore(t, "2024-01-01")
	if s.Len() != 1 {
		t.Fatalf("expected one seed entry, got %d", s.Len())
	}
	seed := s.Entries()[0]
	if !seed.Date.Equal(entry.MustDate("2024-01-01")) {
		t.Fatalf("seed dated %s", seed.Date)
	}
	if seed.Title != "" || seed.Content != "" {
		t.Fatalf("seed should be empty: %+v", seed)
	}
	if !seed.CreatedAt.Equal(seed.UpdatedAt) {
		t.Fatalf("seed timestamps differ")
	}
	if s.SelectedLevel() != LevelDate {
		t.Fatalf("expected default level date, got %s", s.SelectedLevel())
	}
	if !s.SelectedDate().Equal(seed.Date) {
		t.Fatalf("selection should start on today")
	}
}

func TestEditContentAndTitle(t *testing.T) {
	s := newTestStore(t, "2024-01-01")
	id := s.Entries()[0].ID
	before := s.Entries()[0].UpdatedAt

	got, err := s.EditContent(id, "x")
	if err != nil {
		t.Fatalf("edit content: %v", err)
	}
	if got.Content != "x" {
		t.Fatalf("content not applied: %+v", got)
	}
	if got.UpdatedAt.Before(before) {
		t.Fatalf("updatedAt moved backwards")
	}
	if e, _ := s.Entry(id); e.Content != "x" {
		t.Fatalf("store not updated: %+v", e)
	}

	got, err = s.EditTitle(id, "Morning")
	if err != nil {
		t.Fatalf("edit title: %v", err)
	}
	if got.Title != "Morning" || got.Content != "x" {
		t.Fatalf("unexpected entry after title edit: %+v", got)
	}
	if !got.CreatedAt.Equal(s.Entries()[0].CreatedAt) {
		t.Fatalf("createdAt must not change")
	}
}

func TestEditUnknownIDIsNotFound(t *testing.T) {
	s := newTestStore(t, "2024-01-01")
	before := s.Snapshot()
	if _, err := s.EditContent("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.EditTitle("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if after := s.Snapshot(); after.Entries[0] != before.Entries[0] {
		t.Fatalf("store changed on not-found edit")
	}
}

func TestUpdatedAtNeverMovesBackwards(t *testing.T) {
	times := []time.Time{
		time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 11, 0, 0, 0, time.UTC),
	}
	i := 0
	clock := func() time.Time {
		ts := times[i]
		if i < len(times)-1 {
			i++
		}
		return ts
	}
	s := New(WithClock(clock), WithIDGenerator(counterIDs("id")))
	id := s.Entries()[0].ID
	e, err := s.EditContent(id, "later")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !e.UpdatedAt.Equal(times[0]) {
		t.Fatalf("expected updatedAt to stay at %v, got %v", times[0], e.UpdatedAt)
	}
}

func TestAddEntryAtNextGranularityDate(t *testing.T) {
	s := newTestStore(t, "2024-01-01")
	e, err := s.AddEntryAtNextGranularity()
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !e.Date.Equal(entry.MustDate("2024-01-02")) {
		t.Fatalf("expected 2024-01-02, got %s", e.Date)
	}
	if !s.SelectedDate().Equal(e.Date) {
		t.Fatalf("selection should move to %s, got %s", e.Date, s.SelectedDate())
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
	if s.SelectedLevel() != LevelDate {
		t.Fatalf("level changed to %s", s.SelectedLevel())
	}
	if !e.CreatedAt.Equal(e.UpdatedAt) {
		t.Fatalf("new entry timestamps differ")
	}
}

func TestAddEntryAtNextGranularityDuplicateDate(t *testing.T) {
	s := newTestStore(t, "2024-01-01", WithSeed(
		entry.Entry{ID: "a", Date: entry.MustDate("2024-01-01")},
		entry.Entry{ID: "b", Date: entry.MustDate("2024-01-02")},
	))
	before := s.Snapshot()
	_, err := s.AddEntryAtNextGranularity()
	if !errors.Is(err, ErrDuplicatePeriod) {
		t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
	}
	if s.Len() != len(before.Entries) {
		t.Fatalf("collection size changed: %d -> %d", len(before.Entries), s.Len())
	}
	if !s.SelectedDate().Equal(before.SelectedDate) {
		t.Fatalf("selection moved on failure")
	}
}

func TestAddEntryAtNextGranularityMonth(t *testing.T) {
	s := newTestStore(t, "2024-01-15")
	if err := s.SetSelectedLevel(LevelMonth); err != nil {
		t.Fatalf("set level: %v", err)
	}
	e, err := s.AddEntryAtNextGranularity()
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !e.Date.Equal(entry.MustDate("2024-02-01")) {
		t.Fatalf("expected 2024-02-01, got %s", e.Date)
	}
	if s.SelectedLevel() != LevelMonth {
		t.Fatalf("level changed to %s", s.SelectedLevel())
	}
}

func TestAddEntryAtNextGranularityDuplicateMonth(t *testing.T) {
	s := newTestStore(t, "2024-01-15", WithSeed(
		entry.Entry{ID: "jan", Date: entry.MustDate("2024-01-15")},
		entry.Entry{ID: "feb", Date: entry.MustDate("2024-02-20")},
	))
	if err := s.SetSelectedLevel(LevelMonth); err != nil {
		t.Fatalf("set level: %v", err)
	}
	before := s.Len()
	_, err := s.AddEntryAtNextGranularity()
	if !errors.Is(err, ErrDuplicatePeriod) {
		t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
	}
	if Reason(err) != "duplicate_period" {
		t.Fatalf("unexpected reason %q", Reason(err))
	}
	if s.Len() != before {
		t.Fatalf("collection changed")
	}
}

func TestAddEntryAtNextGranularityYear(t *testing.T) {
	s := newTestStore(t, "2024-07-04", WithSeed(
		entry.Entry{ID: "now", Date: entry.MustDate("2024-07-04")},
		entry.Entry{ID: "next", Date: entry.MustDate("2025-01-01")},
	))
	if err := s.SetSelectedLevel(LevelYear); err != nil {
		t.Fatalf("set level: %v", err)
	}
	e, err := s.AddEntryAtNextGranularity()
	if err != nil {
		t.Fatalf("year level never reports duplicates, got %v", err)
	}
	if !e.Date.Equal(entry.MustDate("2025-01-01")) {
		t.Fatalf("expected 2025-01-01, got %s", e.Date)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
}

func TestAddBoxKeepsSelection(t *testing.T) {
	s := newTestStore(t, "2024-03-05")
	if err := s.SetSelectedLevel(LevelMonth); err != nil {
		t.Fatalf("set level: %v", err)
	}
	box := s.AddBoxForSelectedDate()
	if !box.Date.Equal(entry.MustDate("2024-03-05")) {
		t.Fatalf("box dated %s", box.Date)
	}
	if box.ID == s.Entries()[0].ID {
		t.Fatalf("box must have its own id")
	}
	if s.SelectedLevel() != LevelMonth || !s.SelectedDate().Equal(entry.MustDate("2024-03-05")) {
		t.Fatalf("selection changed")
	}
	if got := len(s.EntriesForSelectedDate()); got != 2 {
		t.Fatalf("expected 2 entries on the day, got %d", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	day := entry.MustDate("2024-03-05")
	s := newTestStore(t, "2024-03-05", WithSeed(
		entry.Entry{ID: "a", Date: day},
		entry.Entry{ID: "b", Date: day},
	))

	if err := s.DeleteEntry(day, "a"); err != nil {
		t.Fatalf("delete a: %v", err)
	}
	left := s.EntriesOn(day)
	if len(left) != 1 || left[0].ID != "b" {
		t.Fatalf("expected only b left, got %+v", left)
	}

	err := s.DeleteEntry(day, "b")
	if !errors.Is(err, ErrLastEntryForPeriod) {
		t.Fatalf("expected ErrLastEntryForPeriod, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("last entry was removed")
	}
}

func TestDeleteEntryNotFound(t *testing.T) {
	day := entry.MustDate("2024-03-05")
	other := entry.MustDate("2024-03-06")
	s := newTestStore(t, "2024-03-05", WithSeed(
		entry.Entry{ID: "a", Date: day},
		entry.Entry{ID: "b", Date: day},
		entry.Entry{ID: "c", Date: other},
	))
	if err := s.DeleteEntry(day, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// c exists but not on day; it is the only entry of its own day.
	if err := s.DeleteEntry(day, "c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for entry on another day, got %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("collection changed: %d", s.Len())
	}
}

func TestEntriesForSelectedDateNewestFirst(t *testing.T) {
	s := newTestStore(t, "2024-03-05")
	first := s.Entries()[0]
	second := s.AddBoxForSelectedDate()
	third := s.AddBoxForSelectedDate()
	if _, err := s.AddEntryAtNextGranularity(); err != nil {
		t.Fatalf("add next: %v", err)
	}
	s.SetSelectedDate(entry.MustDate("2024-03-05"))

	got := s.EntriesForSelectedDate()
	want := []string{third.ID, second.ID, first.ID}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestEntriesForSelectedDateTieKeepsNewestAppendFirst(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	s := New(
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(counterIDs("id")),
	)
	box := s.AddBoxForSelectedDate()
	got := s.EntriesForSelectedDate()
	if got[0].ID != box.ID {
		t.Fatalf("expected the box appended last to come first, got %s", got[0].ID)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore(t, "2024-01-01")
	snap := s.Snapshot()
	snap.Entries[0].Title = "mutated"
	if s.Entries()[0].Title != "" {
		t.Fatalf("snapshot aliases store state")
	}
}

func TestSetSelectedLevelRejectsUnknown(t *testing.T) {
	s := newTestStore(t, "2024-01-01")
	if err := s.SetSelectedLevel(Level("week")); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if s.SelectedLevel() != LevelDate {
		t.Fatalf("level changed on invalid input")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":      LevelDate,
		"date":  LevelDate,
		"Day":   LevelDate,
		"MONTH": LevelMonth,
		" year": LevelYear,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseLevel("week"); err == nil {
		t.Fatalf("expected error for week")
	}
}

func TestSeedRegeneratesDuplicateIDs(t *testing.T) {
	s := newTestStore(t, "2024-01-01", WithSeed(
		entry.Entry{ID: "a", Date: entry.MustDate("2024-01-01")},
		entry.Entry{ID: "a", Date: entry.MustDate("2024-01-01")},
		entry.Entry{Date: entry.MustDate("2024-01-02")},
	))
	seen := map[string]bool{}
	for _, e := range s.Entries() {
		if e.ID == "" || seen[e.ID] {
			t.Fatalf("duplicate or empty id %q", e.ID)
		}
		seen[e.ID] = true
		if e.CreatedAt.IsZero() {
			t.Fatalf("seed entry %s missing createdAt", e.ID)
		}
	}
}

func TestReason(t *testing.T) {
	if Reason(nil) != "" {
		t.Fatalf("nil should have no reason")
	}
	if Reason(errors.Wrap(ErrNotFound, "x")) != "not_found" {
		t.Fatalf("wrapped not found not recognised")
	}
	if Reason(errors.New("boom")) != "unknown" {
		t.Fatalf("foreign error should be unknown")
	}
}
