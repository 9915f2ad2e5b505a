// Package sidebar renders the year / month / entry tree and the month
// calendar for the current selection.
package sidebar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/tui/components/calendar"
	"tableflip.dev/diary/pkg/tui/events"
	"tableflip.dev/diary/pkg/tui/theme"
	"tableflip.dev/diary/pkg/viewmodel"
)

const (
	openMarker   = "▾"
	closedMarker = "▸"
	cursorMarker = "›"
)

// Model holds the sidebar tree state.
type Model struct {
	id    events.ComponentID
	theme theme.SidebarTheme
	cal   calendar.Options

	grouping viewmodel.Grouping
	fold     *viewmodel.Fold
	sel      viewmodel.Selection
	rows     []viewmodel.Row
	dates    []entry.Date
	today    entry.Date

	cursor  int
	offset  int
	width   int
	height  int
	focused bool

	showCalendar bool
}

// NewModel builds a sidebar with today's year and month expanded.
func NewModel(today entry.Date, th theme.SidebarTheme) *Model {
	return &Model{
		id:           events.ComponentID("sidebar"),
		theme:        th,
		cal:          calendar.DefaultOptions(),
		fold:         viewmodel.NewFold(today),
		today:        today,
		showCalendar: true,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// SetSize updates the available area, including the frame.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// SetFocused toggles keyboard handling and the cursor marker.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Focused reports whether the sidebar owns the keyboard.
func (m *Model) Focused() bool { return m.focused }

// SetShowCalendar toggles the month grid below the tree.
func (m *Model) SetShowCalendar(show bool) { m.showCalendar = show }

// SetData replaces the tree contents. The cursor stays on the same row key
// when that row still exists.
func (m *Model) SetData(g viewmodel.Grouping, sel viewmodel.Selection) {
	key := ""
	if cur, ok := m.Current(); ok {
		key = cur.Key
	}
	m.grouping = g
	m.sel = sel
	m.dates = m.dates[:0]
	for _, e := range g.Flatten() {
		m.dates = append(m.dates, e.Date)
	}
	m.rebuild(key)
}

// Reveal expands the period containing d and moves the cursor to the first
// entry of that day.
func (m *Model) Reveal(d entry.Date) {
	m.fold.Reveal(d)
	m.rebuild("")
	for i, r := range m.rows {
		if r.Kind == viewmodel.RowEntry && r.Entry.Date.Equal(d) {
			m.cursor = i
			break
		}
	}
	m.clampOffset()
}

// Rows exposes the visible rows.
func (m *Model) Rows() []viewmodel.Row { return m.rows }

// Cursor returns the index of the row under the cursor.
func (m *Model) Cursor() int { return m.cursor }

// Current returns the row under the cursor.
func (m *Model) Current() (viewmodel.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return viewmodel.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) rebuild(key string) {
	m.rows = viewmodel.Rows(m.grouping, m.fold, m.sel)
	if key != "" {
		if i := viewmodel.IndexOfKey(m.rows, key); i >= 0 {
			m.cursor = i
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation keys while focused.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.move(-len(m.rows))
	case "end", "G":
		m.move(len(m.rows))
	case "left", "h":
		return m, m.collapse()
	case "enter", "space", " ", "right", "l":
		return m, m.activate()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.clampOffset()
}

// activate toggles folders and reports the intent for the row.
func (m *Model) activate() tea.Cmd {
	row, ok := m.Current()
	if !ok {
		return nil
	}
	switch row.Kind {
	case viewmodel.RowYear:
		m.fold.Toggle(row.Key)
		m.rebuild(row.Key)
		return events.Emit(events.YearActivateMsg{Component: m.id, Year: row.Year})
	case viewmodel.RowMonth:
		m.fold.Toggle(row.Key)
		m.rebuild(row.Key)
		return events.Emit(events.MonthActivateMsg{Component: m.id, Year: row.Year, Month: int(row.Month)})
	default:
		return events.Emit(events.EntrySelectMsg{Component: m.id, EntryID: row.Entry.ID})
	}
}

// collapse closes the row under the cursor, or its parent for entry rows.
func (m *Model) collapse() tea.Cmd {
	row, ok := m.Current()
	if !ok {
		return nil
	}
	key := row.Key
	switch row.Kind {
	case viewmodel.RowEntry:
		key = viewmodel.MonthKey(row.Year, row.Month)
	case viewmodel.RowMonth:
		if !row.Open {
			key = viewmodel.YearKey(row.Year)
		}
	}
	if m.fold.IsOpen(key) {
		m.fold.Toggle(key)
	}
	m.rebuild(key)
	return nil
}

func (m *Model) innerSize() (int, int) {
	w := m.width - m.theme.Frame.GetHorizontalFrameSize()
	h := m.height - m.theme.Frame.GetVerticalFrameSize()
	return max(w, 1), max(h, 1)
}

// treeHeight is the number of tree lines that fit below the header and
// above the calendar.
func (m *Model) treeHeight() int {
	_, h := m.innerSize()
	h -= 2 // header and rule
	if m.showCalendar {
		if ch := m.calendarHeight(); h-ch-1 >= 3 {
			h -= ch + 1
		}
	}
	return max(h, 1)
}

func (m *Model) calendarHeight() int {
	if m.sel.Date.IsZero() {
		return 0
	}
	return strings.Count(m.renderCalendar(), "\n") + 1
}

func (m *Model) clampOffset() {
	visible := m.treeHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the sidebar.
func (m *Model) View() string {
	w, h := m.innerSize()
	lines := make([]string, 0, h)
	lines = append(lines, m.header(w))
	lines = append(lines, m.theme.Muted.Render(strings.Repeat("─", w)))

	tree := m.treeHeight()
	if len(m.rows) == 0 {
		lines = append(lines, m.theme.Muted.Render("No entries"))
	}
	end := min(len(m.rows), m.offset+tree)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i, w))
	}

	if m.showCalendar && !m.sel.Date.IsZero() && h-2-tree >= m.calendarHeight()+1 {
		for len(lines) < 2+tree {
			lines = append(lines, "")
		}
		lines = append(lines, "")
		lines = append(lines, strings.Split(m.renderCalendar(), "\n")...)
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	body := strings.Join(lines, "\n")
	frame := m.theme.Frame
	return frame.Width(max(m.width-frame.GetHorizontalBorderSize(), 1)).Height(max(m.height-frame.GetVerticalBorderSize(), 1)).Render(body)
}

func (m *Model) header(width int) string {
	title := m.theme.Header.Render("Diary")
	hint := m.theme.Hint.Render("a new · b box")
	gap := width - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + hint
}

func (m *Model) renderRow(i, width int) string {
	row := m.rows[i]
	prefix := "  "
	if m.focused && i == m.cursor {
		prefix = m.theme.Cursor.Render(cursorMarker) + " "
	} else if i == m.cursor {
		prefix = m.theme.Muted.Render(cursorMarker) + " "
	}

	var text string
	style := m.theme.Entry
	switch row.Kind {
	case viewmodel.RowYear:
		text = fmt.Sprintf("%s %d", marker(row.Open), row.Year)
		style = m.theme.Year
	case viewmodel.RowMonth:
		text = fmt.Sprintf("  %s %s", marker(row.Open), row.Month.String())
		style = m.theme.Month
	default:
		text = "      " + EntryLabel(row.Entry)
	}
	text = truncate.StringWithTail(text, uint(max(width-2, 1)), "…")
	if row.Highlighted {
		style = m.theme.Highlighted
	}
	return prefix + style.Render(text)
}

func (m *Model) renderCalendar() string {
	days := calendar.Days(m.sel.Date, m.dates, m.today, m.sel.Date)
	return calendar.Render(m.sel.Date, days, m.cal)
}

// EntryLabel is the sidebar text of an entry: day of month, weekday and
// title when set.
func EntryLabel(e entry.Entry) string {
	label := fmt.Sprintf("%2d %s", e.Date.Day, e.Date.Weekday().String()[:3])
	if t := strings.TrimSpace(e.Title); t != "" {
		label += "  " + t
	}
	return label
}

func marker(open bool) string {
	if open {
		return openMarker
	}
	return closedMarker
}
