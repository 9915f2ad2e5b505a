// Package mcp provides the Model Context Protocol server integration for the
// diary.
package mcp

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/viewmodel"
)

// Service adapts the diary service to transport-friendly values shared by
// the MCP tools and resources.
type Service struct {
	App *app.Service
}

// NewService wraps svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Label   string `json:"label"`
	Created string `json:"created"`
	Updated string `json:"updated"`
	Edited  bool   `json:"edited"`
}

// SelectionDTO describes the selection and the entries it shows.
type SelectionDTO struct {
	Date    string     `json:"date"`
	Level   string     `json:"level"`
	Entries []EntryDTO `json:"entries"`
}

// MonthDTO is one month of the tree.
type MonthDTO struct {
	Month   int        `json:"month"`
	Label   string     `json:"label"`
	Name    string     `json:"name"`
	Entries []EntryDTO `json:"entries"`
}

// YearDTO is one year of the tree.
type YearDTO struct {
	Year   int        `json:"year"`
	Label  string     `json:"label"`
	Count  int        `json:"count"`
	Months []MonthDTO `json:"months"`
}

// TreeDTO is the grouped diary, newest first.
type TreeDTO struct {
	Years []YearDTO `json:"years"`
	Count int       `json:"count"`
}

// MutationDTO reports the outcome of an add or delete.
type MutationDTO struct {
	Entry     *EntryDTO    `json:"entry,omitempty"`
	Notice    app.Notice   `json:"notice"`
	Selection SelectionDTO `json:"selection"`
}

// OperationError carries the machine-readable reason and the user notice of
// a rejected operation.
type OperationError struct {
	Reason string
	Notice app.Notice
	Err    error
}

func (e *OperationError) Error() string {
	msg := e.Notice.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return e.Reason + ": " + msg
}

func (e *OperationError) Unwrap() error { return e.Err }

func opError(err error, notice app.Notice) error {
	if err == nil {
		return nil
	}
	return &OperationError{Reason: journal.Reason(err), Notice: notice, Err: err}
}

// ListEntries returns every entry in insertion order.
func (s *Service) ListEntries(ctx context.Context) []EntryDTO {
	return toDTOs(s.App.Entries(ctx))
}

// Tree returns the grouped entries.
func (s *Service) Tree(ctx context.Context) TreeDTO {
	return toTree(s.App.Tree(ctx))
}

// Selection returns the selection with the entries of the selected day.
func (s *Service) Selection(ctx context.Context) SelectionDTO {
	snap := s.App.Snapshot(ctx)
	return SelectionDTO{
		Date:    snap.SelectedDate.String(),
		Level:   snap.SelectedLevel.String(),
		Entries: toDTOs(s.App.EntriesForSelectedDate(ctx)),
	}
}

// EntryByID fetches a single entry.
func (s *Service) EntryByID(ctx context.Context, id string) (EntryDTO, error) {
	e, err := s.App.Entry(ctx, strings.TrimSpace(id))
	if err != nil {
		return EntryDTO{}, opError(err, app.Notice{})
	}
	return toDTO(e), nil
}

// EditTitle replaces the title of an entry.
func (s *Service) EditTitle(ctx context.Context, id, title string) (EntryDTO, error) {
	e, err := s.App.EditTitle(ctx, strings.TrimSpace(id), title)
	if err != nil {
		return EntryDTO{}, opError(err, app.Notice{})
	}
	return toDTO(e), nil
}

// EditContent replaces the content of an entry.
func (s *Service) EditContent(ctx context.Context, id, content string) (EntryDTO, error) {
	e, err := s.App.EditContent(ctx, strings.TrimSpace(id), content)
	if err != nil {
		return EntryDTO{}, opError(err, app.Notice{})
	}
	return toDTO(e), nil
}

// AddNext creates an entry on the period after the selection.
func (s *Service) AddNext(ctx context.Context) (MutationDTO, error) {
	e, notice, err := s.App.AddNext(ctx)
	if err != nil {
		return MutationDTO{}, opError(err, notice)
	}
	dto := toDTO(e)
	return MutationDTO{Entry: &dto, Notice: notice, Selection: s.Selection(ctx)}, nil
}

// AddBox creates another entry on the selected day.
func (s *Service) AddBox(ctx context.Context) MutationDTO {
	e, notice := s.App.AddBox(ctx)
	dto := toDTO(e)
	return MutationDTO{Entry: &dto, Notice: notice, Selection: s.Selection(ctx)}
}

// Delete removes an entry. An empty date means the entry's own day.
func (s *Service) Delete(ctx context.Context, rawDate, id string) (MutationDTO, error) {
	id = strings.TrimSpace(id)
	var date entry.Date
	if strings.TrimSpace(rawDate) == "" {
		e, err := s.App.Entry(ctx, id)
		if err != nil {
			return MutationDTO{}, opError(err, app.Notice{})
		}
		date = e.Date
	} else {
		d, err := entry.ParseDate(strings.TrimSpace(rawDate))
		if err != nil {
			return MutationDTO{}, errors.Wrap(err, "invalid date, want YYYY-MM-DD")
		}
		date = d
	}
	notice, err := s.App.Delete(ctx, date, id)
	if err != nil {
		return MutationDTO{}, opError(err, notice)
	}
	return MutationDTO{Notice: notice, Selection: s.Selection(ctx)}, nil
}

// SelectDate moves the selection to the given day.
func (s *Service) SelectDate(ctx context.Context, raw string) (SelectionDTO, error) {
	d, err := entry.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return SelectionDTO{}, errors.Wrap(err, "invalid date, want YYYY-MM-DD")
	}
	s.App.SelectDate(ctx, d)
	return s.Selection(ctx), nil
}

// SelectLevel changes the selection granularity.
func (s *Service) SelectLevel(ctx context.Context, raw string) (SelectionDTO, error) {
	l, err := journal.ParseLevel(raw)
	if err != nil {
		return SelectionDTO{}, opError(err, app.Notice{})
	}
	if _, err := s.App.SelectLevel(ctx, l); err != nil {
		return SelectionDTO{}, opError(err, app.Notice{})
	}
	return s.Selection(ctx), nil
}

func toDTO(e entry.Entry) EntryDTO {
	return EntryDTO{
		ID:      e.ID,
		Date:    e.Date.String(),
		Weekday: e.Date.Weekday().String(),
		Title:   e.Title,
		Content: e.Content,
		Label:   e.Label(),
		Created: entry.FormatTime(e.CreatedAt),
		Updated: entry.FormatTime(e.UpdatedAt),
		Edited:  e.Edited(),
	}
}

func toDTOs(entries []entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toTree(g viewmodel.Grouping) TreeDTO {
	tree := TreeDTO{Years: make([]YearDTO, 0, len(g))}
	for _, yg := range g {
		y := YearDTO{Year: yg.Year, Label: yg.Label, Count: yg.Count()}
		for _, mg := range yg.Months {
			y.Months = append(y.Months, MonthDTO{
				Month:   int(mg.Month),
				Label:   mg.Label,
				Name:    mg.Month.String(),
				Entries: toDTOs(mg.Entries),
			})
		}
		tree.Count += y.Count
		tree.Years = append(tree.Years, y)
	}
	return tree
}
