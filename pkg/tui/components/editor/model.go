// Package editor shows the entries of the selected day as editable cards.
package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/tui/events"
	"tableflip.dev/diary/pkg/tui/theme"
)

const (
	// DateHeaderLayout is the long form used above the cards.
	DateHeaderLayout = "Monday, January 2, 2006"
	timeLayout       = "2006-01-02 15:04"
	contentHeight    = 5

	titlePlaceholder   = "Title"
	contentPlaceholder = "How was your day?"
)

type card struct {
	entry   entry.Entry
	title   textinput.Model
	content textarea.Model
}

// Model holds one card per entry of the selected day.
type Model struct {
	id    events.ComponentID
	theme theme.EditorTheme

	date   entry.Date
	cards  []*card
	active int
	field  events.Field

	width   int
	height  int
	focused bool
	loc     *time.Location
}

// NewModel returns an empty editor.
func NewModel(th theme.EditorTheme) *Model {
	return &Model{
		id:    events.ComponentID("editor"),
		theme: th,
		field: events.FieldContent,
		loc:   time.Local,
	}
}

// ID returns the component identifier used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// SetLocation changes the zone timestamps are shown in.
func (m *Model) SetLocation(loc *time.Location) {
	if loc != nil {
		m.loc = loc
	}
}

// SetSize updates the available area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for _, c := range m.cards {
		m.sizeCard(c)
	}
}

func (m *Model) innerWidth() int {
	w := m.width - m.theme.Frame.GetHorizontalFrameSize() - m.theme.Card.GetHorizontalFrameSize()
	return max(w, 8)
}

func (m *Model) sizeCard(c *card) {
	w := m.innerWidth()
	c.title.SetWidth(w)
	c.content.SetWidth(w)
	c.content.SetHeight(contentHeight)
}

// SetEntries shows entries for date. Cards are reused by entry id so the
// card being typed in keeps its cursor and text.
func (m *Model) SetEntries(date entry.Date, entries []entry.Entry) tea.Cmd {
	activeID := m.ActiveID()
	if !date.Equal(m.date) {
		activeID = ""
	}
	m.date = date

	existing := make(map[string]*card, len(m.cards))
	for _, c := range m.cards {
		existing[c.entry.ID] = c
	}

	cards := make([]*card, 0, len(entries))
	for _, e := range entries {
		c, ok := existing[e.ID]
		if !ok {
			c = m.newCard(e)
		} else {
			// The field being typed in is the source of truth for its card.
			editing := m.focused && e.ID == activeID
			if !(editing && m.field == events.FieldTitle) {
				syncValue(&c.title, e.Title)
			}
			if !(editing && m.field == events.FieldContent) && c.content.Value() != e.Content {
				c.content.SetValue(e.Content)
			}
			c.entry = e
		}
		cards = append(cards, c)
	}
	m.cards = cards

	m.active = 0
	for i, c := range m.cards {
		if c.entry.ID == activeID {
			m.active = i
			break
		}
	}
	return m.refocus()
}

func syncValue(in *textinput.Model, v string) {
	if in.Value() != v {
		in.SetValue(v)
	}
}

func (m *Model) newCard(e entry.Entry) *card {
	title := textinput.New()
	title.Placeholder = titlePlaceholder
	title.Prompt = ""
	title.SetValue(e.Title)

	content := textarea.New()
	content.Placeholder = contentPlaceholder
	content.ShowLineNumbers = false
	content.Prompt = ""
	content.SetValue(e.Content)

	c := &card{entry: e, title: title, content: content}
	m.sizeCard(c)
	return c
}

// Date is the day currently shown.
func (m *Model) Date() entry.Date { return m.date }

// Len returns the number of cards.
func (m *Model) Len() int { return len(m.cards) }

// ActiveID returns the id of the entry under the cursor.
func (m *Model) ActiveID() string {
	if m.active < 0 || m.active >= len(m.cards) {
		return ""
	}
	return m.cards[m.active].entry.ID
}

// Field returns the field that receives keystrokes.
func (m *Model) Field() events.Field { return m.field }

// Focus gives the editor the keyboard.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return tea.Batch(events.FocusCmd(m.id), m.refocus())
}

// Blur releases the keyboard.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.refocus()
	return events.BlurCmd(m.id)
}

// Focused reports whether the editor owns the keyboard.
func (m *Model) Focused() bool { return m.focused }

func (m *Model) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i, c := range m.cards {
		active := m.focused && i == m.active
		switch {
		case active && m.field == events.FieldTitle:
			c.content.Blur()
			cmd = c.title.Focus()
		case active:
			c.title.Blur()
			cmd = c.content.Focus()
		default:
			c.title.Blur()
			c.content.Blur()
		}
	}
	return cmd
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes keys to the focused input and reports edits.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.focused || len(m.cards) == 0 {
		return m, nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "pgdown", "ctrl+n":
			m.step(1)
			return m, m.refocus()
		case "pgup", "ctrl+p":
			m.step(-1)
			return m, m.refocus()
		case "ctrl+up":
			m.field = events.FieldTitle
			return m, m.refocus()
		case "ctrl+down":
			m.field = events.FieldContent
			return m, m.refocus()
		case "enter", "down":
			if m.field == events.FieldTitle {
				m.field = events.FieldContent
				return m, m.refocus()
			}
		}
	}

	c := m.cards[m.active]
	var cmd tea.Cmd
	var edit tea.Cmd
	if m.field == events.FieldTitle {
		before := c.title.Value()
		c.title, cmd = c.title.Update(msg)
		if v := c.title.Value(); v != before {
			edit = events.Emit(events.EntryEditMsg{Component: m.id, EntryID: c.entry.ID, Field: events.FieldTitle, Value: v})
		}
	} else {
		before := c.content.Value()
		c.content, cmd = c.content.Update(msg)
		if v := c.content.Value(); v != before {
			edit = events.Emit(events.EntryEditMsg{Component: m.id, EntryID: c.entry.ID, Field: events.FieldContent, Value: v})
		}
	}
	return m, tea.Batch(cmd, edit)
}

func (m *Model) step(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.cards)) % len(m.cards)
}

// View renders the date header and the cards that fit.
func (m *Model) View() string {
	width := max(m.width-m.theme.Frame.GetHorizontalFrameSize(), 1)
	var blocks []string
	if !m.date.IsZero() {
		header := m.date.Time(time.UTC).Format(DateHeaderLayout)
		blocks = append(blocks, m.theme.DateHeader.Render(truncate.StringWithTail(header, uint(width), "…")))
	}
	if len(m.cards) == 0 {
		blocks = append(blocks, m.theme.Placeholder.Render("No entries for this day. Press b to add one."))
	}

	rendered := make([]string, len(m.cards))
	for i, c := range m.cards {
		rendered[i] = m.renderCard(i, c)
	}
	blocks = append(blocks, m.visibleCards(rendered)...)

	body := strings.Join(blocks, "\n")
	lines := strings.Split(body, "\n")
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return m.theme.Frame.Render(strings.Join(lines, "\n"))
}

// visibleCards starts from the earliest card that still lets the active
// card fit on screen.
func (m *Model) visibleCards(rendered []string) []string {
	if m.height <= 0 || len(rendered) == 0 {
		return rendered
	}
	budget := m.height - 1
	start := m.active
	used := lineCount(rendered[m.active])
	for start > 0 && used+lineCount(rendered[start-1]) <= budget {
		start--
		used += lineCount(rendered[start])
	}
	return rendered[start:]
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func (m *Model) renderCard(i int, c *card) string {
	style := m.theme.Card
	if i == m.active {
		style = m.theme.ActiveCard
	}
	meta := "Created " + c.entry.CreatedAt.In(m.loc).Format(timeLayout)
	if c.entry.Edited() {
		meta += " · Updated " + c.entry.UpdatedAt.In(m.loc).Format(timeLayout)
	}
	meta = truncate.StringWithTail(meta, uint(m.innerWidth()), "…")
	parts := []string{
		m.theme.Timestamp.Render(meta),
		c.title.View(),
		c.content.View(),
	}
	return style.Width(m.innerWidth() + style.GetHorizontalPadding()).Render(strings.Join(parts, "\n"))
}
