// Package app is the single entry point the views use to reach the diary.
package app

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/viewmodel"
)

// Service wraps a journal Store so the terminal UI and the MCP server share
// one in-memory session. Every call runs to completion under a mutex.
type Service struct {
	mu    sync.Mutex
	store *journal.Store
	log   *zap.Logger

	watchers watchers
}

// New returns a Service around store. A nil logger disables logging.
func New(store *journal.Store, log *zap.Logger) *Service {
	if store == nil {
		store = journal.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log.Named("app")}
}

// NoticeKind distinguishes successful feedback from failures.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is transient feedback for the user. The zero value means there is
// nothing to show.
type Notice struct {
	Kind    NoticeKind `json:"kind,omitempty"`
	Message string     `json:"message,omitempty"`
}

// IsZero reports whether the notice carries no message.
func (n Notice) IsZero() bool {
	return n.Message == ""
}

func success(msg string) Notice { return Notice{Kind: NoticeSuccess, Message: msg} }
func failure(msg string) Notice { return Notice{Kind: NoticeError, Message: msg} }

// Snapshot copies the entries and the selection.
func (s *Service) Snapshot(_ context.Context) journal.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Entries lists every entry in insertion order.
func (s *Service) Entries(_ context.Context) []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Entries()
}

// Tree groups the entries by year and month.
func (s *Service) Tree(_ context.Context) viewmodel.Grouping {
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewmodel.Group(s.store.Entries())
}

// Entry returns the entry with the given id.
func (s *Service) Entry(_ context.Context, id string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Entry(id)
}

// EntriesForSelectedDate lists the entries of the selected day, newest first.
func (s *Service) EntriesForSelectedDate(_ context.Context) []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.EntriesForSelectedDate()
}

// EditTitle replaces the title of an entry.
func (s *Service) EditTitle(_ context.Context, id, text string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.store.EditTitle(id, text)
	if err != nil {
		s.logResult("edit_title", err, zap.String("id", id))
	} else {
		s.log.Debug("edit_title", zap.String("id", id))
		s.watchers.publish(Event{Type: EventEntryChanged, EntryID: id})
	}
	return e, err
}

// EditContent replaces the content of an entry.
func (s *Service) EditContent(_ context.Context, id, text string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.store.EditContent(id, text)
	if err != nil {
		s.logResult("edit_content", err, zap.String("id", id))
	} else {
		s.log.Debug("edit_content", zap.String("id", id))
		s.watchers.publish(Event{Type: EventEntryChanged, EntryID: id})
	}
	return e, err
}

// AddNext creates an entry on the period after the selection.
func (s *Service) AddNext(_ context.Context) (entry.Entry, Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	level := s.store.SelectedLevel()
	e, err := s.store.AddEntryAtNextGranularity()
	s.logResult("add_next", err,
		zap.String("level", level.String()),
		zap.Stringer("date", s.store.SelectedDate()),
		zap.String("id", e.ID),
	)
	if err != nil {
		return e, s.noticeFor(err, level), err
	}
	s.watchers.publish(Event{Type: EventEntriesChanged, EntryID: e.ID})
	return e, success("Created a new diary entry"), nil
}

// AddBox creates another entry on the selected day.
func (s *Service) AddBox(_ context.Context) (entry.Entry, Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.store.AddBoxForSelectedDate()
	s.logResult("add_box", nil, zap.Stringer("date", e.Date), zap.String("id", e.ID))
	s.watchers.publish(Event{Type: EventEntriesChanged, EntryID: e.ID})
	return e, success("Added a new box")
}

// Delete removes the entry id from date.
func (s *Service) Delete(_ context.Context, date entry.Date, id string) (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.store.DeleteEntry(date, id)
	s.logResult("delete", err, zap.Stringer("date", date), zap.String("id", id))
	if err != nil {
		return s.noticeFor(err, s.store.SelectedLevel()), err
	}
	s.watchers.publish(Event{Type: EventEntriesChanged, EntryID: id})
	return success("Deleted the entry"), nil
}

// SelectDate moves the selection to d.
func (s *Service) SelectDate(_ context.Context, d entry.Date) journal.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetSelectedDate(d)
	s.log.Debug("select_date", zap.Stringer("date", d))
	s.watchers.publish(Event{Type: EventSelectionChanged})
	return s.store.Snapshot()
}

// SelectLevel changes the selection granularity.
func (s *Service) SelectLevel(_ context.Context, l journal.Level) (journal.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.store.SetSelectedLevel(l)
	s.logResult("select_level", err, zap.String("level", l.String()))
	if err == nil {
		s.watchers.publish(Event{Type: EventSelectionChanged})
	}
	return s.store.Snapshot(), err
}

// SelectEntry moves the selection to the day of entry id at date level.
func (s *Service) SelectEntry(_ context.Context, id string) (journal.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.store.Entry(id)
	if err != nil {
		s.logResult("select_entry", err, zap.String("id", id))
		return s.store.Snapshot(), err
	}
	s.store.SetSelectedDate(e.Date)
	_ = s.store.SetSelectedLevel(journal.LevelDate)
	s.log.Debug("select_entry", zap.String("id", id), zap.Stringer("date", e.Date))
	s.watchers.publish(Event{Type: EventSelectionChanged})
	return s.store.Snapshot(), nil
}

// FocusPeriod selects a year (month == 0) or a month at the matching
// level. When the selected day lies outside that period it moves to the
// most recent entry of the period.
func (s *Service) FocusPeriod(_ context.Context, year int, month int) (journal.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level := journal.LevelYear
	if month != 0 {
		level = journal.LevelMonth
	}
	if month < 0 || month > 12 {
		return s.store.Snapshot(), errors.Wrapf(journal.ErrInvalidLevel, "month %d", month)
	}

	sel := s.store.SelectedDate()
	inside := sel.Year == year && (month == 0 || int(sel.Month) == month)
	if !inside {
		g := viewmodel.Group(s.store.Entries())
		yg, ok := g.Year(year)
		if !ok {
			err := errors.Wrapf(journal.ErrNotFound, "year %d", year)
			s.logResult("focus_period", err, zap.Int("year", year), zap.Int("month", month))
			return s.store.Snapshot(), err
		}
		latest, ok := yg.Latest()
		if month != 0 {
			ok = false
			for _, mg := range yg.Months {
				if int(mg.Month) == month {
					latest, ok = mg.Latest()
					break
				}
			}
		}
		if !ok {
			err := errors.Wrapf(journal.ErrNotFound, "month %04d-%02d", year, month)
			s.logResult("focus_period", err, zap.Int("year", year), zap.Int("month", month))
			return s.store.Snapshot(), err
		}
		s.store.SetSelectedDate(latest.Date)
	}
	_ = s.store.SetSelectedLevel(level)
	s.log.Debug("focus_period", zap.Int("year", year), zap.Int("month", month), zap.Stringer("date", s.store.SelectedDate()))
	s.watchers.publish(Event{Type: EventSelectionChanged})
	return s.store.Snapshot(), nil
}

func (s *Service) noticeFor(err error, level journal.Level) Notice {
	switch {
	case errors.Is(err, journal.ErrDuplicatePeriod):
		if level == journal.LevelMonth {
			return failure("That month already exists")
		}
		return failure("That date already exists")
	case errors.Is(err, journal.ErrLastEntryForPeriod):
		return failure("The last entry of a day cannot be deleted")
	case errors.Is(err, journal.ErrInvalidLevel):
		return failure("Unknown selection level")
	default:
		// Not found and anything else stays quiet.
		return Notice{}
	}
}

func (s *Service) logResult(op string, err error, fields ...zap.Field) {
	if err == nil {
		s.log.Info(op, fields...)
		return
	}
	fields = append(fields, zap.String("reason", journal.Reason(err)), zap.Error(err))
	if errors.Is(err, journal.ErrNotFound) {
		s.log.Debug(op, fields...)
		return
	}
	s.log.Warn(op, fields...)
}
