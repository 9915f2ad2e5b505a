// Package entry defines the diary entry record and calendar day helpers.
package entry

import (
	"fmt"
	"time"
)

// Entry is one diary record tied to a calendar day. Several entries may
// share a Date; each has its own ID.
type Entry struct {
	ID        string    `json:"id"`
	Date      Date      `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New builds an empty entry for the given day.
func New(id string, date Date, now time.Time) Entry {
	return Entry{
		ID:        id,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Edited reports whether the entry changed after it was created.
func (e Entry) Edited() bool {
	return !e.UpdatedAt.Equal(e.CreatedAt)
}

// Label is the short text used in lists: day number plus the title when set.
func (e Entry) Label() string {
	if e.Title == "" {
		return fmt.Sprintf("%d", e.Date.Day)
	}
	return fmt.Sprintf("%d %s", e.Date.Day, e.Title)
}

func (e Entry) String() string {
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s %s", e.Date, title)
}

// FormatTime renders a timestamp the way entries are exchanged with clients.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses an RFC3339 timestamp.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
