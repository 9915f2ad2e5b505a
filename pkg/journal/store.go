// Package journal holds the in-memory diary: the ordered entry collection
// plus the current selection, mutated only through named operations.
//
// The Store is not safe for concurrent use. Callers that share one across
// goroutines serialise access themselves (see pkg/app).
package journal

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tableflip.dev/diary/pkg/entry"
)

// Store owns the entry collection and the selection state.
type Store struct {
	entries []entry.Entry

	selectedDate  entry.Date
	selectedLevel Level

	now   func() time.Time
	newID func() string
}

// Snapshot is an immutable copy of the store state handed to views.
type Snapshot struct {
	Entries       []entry.Entry `json:"entries"`
	SelectedDate  entry.Date    `json:"selectedDate"`
	SelectedLevel Level         `json:"selectedLevel"`
}

// Option customises New.
type Option func(*storeOptions)

type storeOptions struct {
	now   func() time.Time
	newID func() string
	today *entry.Date
	seed  []entry.Entry
}

// WithClock sets the time source used for timestamps and for "today".
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator sets the function producing entry identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(o *storeOptions) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// WithToday overrides the day used for the seed entry and initial selection.
func WithToday(d entry.Date) Option {
	return func(o *storeOptions) {
		if !d.IsZero() {
			o.today = &d
		}
	}
}

// WithSeed replaces the default seed entry with the given entries. Missing
// or duplicated IDs are regenerated, missing timestamps are set to now.
func WithSeed(entries ...entry.Entry) Option {
	return func(o *storeOptions) {
		o.seed = append(o.seed, entries...)
	}
}

// New creates a store holding one empty entry dated today, selected at
// LevelDate.
func New(opts ...Option) *Store {
	o := &storeOptions{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}

	now := o.now()
	today := entry.DateOf(now)
	if o.today != nil {
		today = *o.today
	}

	s := &Store{
		selectedDate:  today,
		selectedLevel: LevelDate,
		now:           o.now,
		newID:         o.newID,
	}

	if len(o.seed) == 0 {
		s.entries = append(s.entries, entry.New(s.uniqueID(), today, now))
		return s
	}
	for _, e := range o.seed {
		if e.ID == "" || s.has(e.ID) {
			e.ID = s.uniqueID()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		if e.UpdatedAt.Before(e.CreatedAt) {
			e.UpdatedAt = e.CreatedAt
		}
		s.entries = append(s.entries, e)
	}
	return s
}

// Entries returns a copy of every entry in insertion order.
func (s *Store) Entries() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entry returns a copy of the entry with the given id.
func (s *Store) Entry(id string) (entry.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return entry.Entry{}, errors.Wrapf(ErrNotFound, "id %q", id)
	}
	return s.entries[i], nil
}

// SelectedDate returns the day the selection is focused on.
func (s *Store) SelectedDate() entry.Date {
	return s.selectedDate
}

// SelectedLevel returns the granularity of the selection.
func (s *Store) SelectedLevel() Level {
	return s.selectedLevel
}

// Snapshot copies the full state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Entries:       s.Entries(),
		SelectedDate:  s.selectedDate,
		SelectedLevel: s.selectedLevel,
	}
}

// SetSelectedDate moves the selection to d. The level is unchanged.
func (s *Store) SetSelectedDate(d entry.Date) {
	s.selectedDate = d
}

// SetSelectedLevel changes the granularity of the selection.
func (s *Store) SetSelectedLevel(l Level) error {
	if !l.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "%q", string(l))
	}
	s.selectedLevel = l
	return nil
}

// EditContent replaces the content of the entry with the given id.
func (s *Store) EditContent(id, text string) (entry.Entry, error) {
	return s.edit(id, func(e *entry.Entry) { e.Content = text })
}

// EditTitle replaces the title of the entry with the given id.
func (s *Store) EditTitle(id, text string) (entry.Entry, error) {
	return s.edit(id, func(e *entry.Entry) { e.Title = text })
}

func (s *Store) edit(id string, apply func(*entry.Entry)) (entry.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return entry.Entry{}, errors.Wrapf(ErrNotFound, "id %q", id)
	}
	e := &s.entries[i]
	apply(e)
	// UpdatedAt never moves backwards, even if the clock does.
	if now := s.now(); now.After(e.UpdatedAt) {
		e.UpdatedAt = now
	}
	return *e, nil
}

// NextTarget computes the day AddEntryAtNextGranularity would create an
// entry on, and whether that day is free. It does not modify the store.
func (s *Store) NextTarget() (entry.Date, error) {
	from := s.selectedDate
	switch s.selectedLevel {
	case LevelYear:
		return from.StartOfNextYear(), nil
	case LevelMonth:
		target := from.StartOfNextMonth()
		if s.anyEntry(func(e entry.Entry) bool { return e.Date.SameMonth(target) }) {
			return target, errors.Wrapf(ErrDuplicatePeriod, "month %04d-%02d", target.Year, int(target.Month))
		}
		return target, nil
	default:
		target := from.AddDays(1)
		if s.anyEntry(func(e entry.Entry) bool { return e.Date.Equal(target) }) {
			return target, errors.Wrapf(ErrDuplicatePeriod, "date %s", target)
		}
		return target, nil
	}
}

// AddEntryAtNextGranularity appends an empty entry on the period following
// the selection and moves the selection there. On ErrDuplicatePeriod
// nothing changes.
func (s *Store) AddEntryAtNextGranularity() (entry.Entry, error) {
	target, err := s.NextTarget()
	if err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(s.uniqueID(), target, s.now())
	s.entries = append(s.entries, e)
	s.selectedDate = target
	return e, nil
}

// AddBoxForSelectedDate appends another empty entry on the selected day.
// The selection is unchanged.
func (s *Store) AddBoxForSelectedDate() entry.Entry {
	e := entry.New(s.uniqueID(), s.selectedDate, s.now())
	s.entries = append(s.entries, e)
	return e
}

// DeleteEntry removes the entry with the given id from date. It refuses to
// remove the only entry of a day.
func (s *Store) DeleteEntry(date entry.Date, id string) error {
	count := 0
	for _, e := range s.entries {
		if e.Date.Equal(date) {
			count++
		}
	}
	if count <= 1 {
		return errors.Wrapf(ErrLastEntryForPeriod, "date %s", date)
	}
	i := s.indexOf(id)
	if i < 0 || !s.entries[i].Date.Equal(date) {
		return errors.Wrapf(ErrNotFound, "id %q on %s", id, date)
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return nil
}

// EntriesOn returns the entries dated d, most recently created first.
func (s *Store) EntriesOn(d entry.Date) []entry.Entry {
	type indexed struct {
		pos int
		e   entry.Entry
	}
	var matched []indexed
	for i, e := range s.entries {
		if e.Date.Equal(d) {
			matched = append(matched, indexed{pos: i, e: e})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.e.CreatedAt.Equal(b.e.CreatedAt) {
			return a.e.CreatedAt.After(b.e.CreatedAt)
		}
		return a.pos > b.pos
	})
	out := make([]entry.Entry, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.e)
	}
	return out
}

// EntriesForSelectedDate returns the entries on the selected day, most
// recently created first.
func (s *Store) EntriesForSelectedDate() []entry.Entry {
	return s.EntriesOn(s.selectedDate)
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) has(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *Store) anyEntry(match func(entry.Entry) bool) bool {
	for _, e := range s.entries {
		if match(e) {
			return true
		}
	}
	return false
}

// uniqueID asks the generator until it yields an unused identifier.
func (s *Store) uniqueID() string {
	id := s.newID()
	for s.has(id) {
		id = s.newID()
	}
	return id
}
